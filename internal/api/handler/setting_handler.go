package handler

import (
	"Wildsalt/internal/api/dto"
	"Wildsalt/internal/pkg/response"
	"Wildsalt/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingHandler struct {
	settingSvc service.SettingService
}

func NewSettingHandler(settingSvc service.SettingService) *SettingHandler {
	return &SettingHandler{
		settingSvc: settingSvc,
	}
}

func (s *SettingHandler) GetAll(c *gin.Context) {
	settings, err := s.settingSvc.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"settings": settings})
}

func (s *SettingHandler) Update(c *gin.Context) {
	var req dto.UpdateSettingsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	settings, err := s.settingSvc.Update(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"settings": settings})
}

package handler

import (
	"Wildsalt/internal/api/dto"
	"Wildsalt/internal/pkg/response"
	"Wildsalt/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ViewHandler struct {
	viewSvc service.ViewService
}

func NewViewHandler(viewSvc service.ViewService) *ViewHandler {
	return &ViewHandler{
		viewSvc: viewSvc,
	}
}

// RecordView 记录一次文章浏览
func (s *ViewHandler) RecordView(c *gin.Context) {
	var req dto.RecordViewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.viewSvc.RecordView(
		c.Request.Context(),
		req.ArticleID,
		c.ClientIP(),
		c.Request.UserAgent(),
		c.GetHeader("Referer"),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetStats 查询文章浏览统计
func (s *ViewHandler) GetStats(c *gin.Context) {
	articleID := c.Query("articleId")
	if articleID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	result, err := s.viewSvc.GetStats(c.Request.Context(), articleID, c.DefaultQuery("period", "all"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

package handler

import (
	"Wildsalt/internal/api/dto"
	"Wildsalt/internal/pkg/response"
	"Wildsalt/internal/pkg/util"
	"Wildsalt/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{
		authSvc: authSvc,
	}
}

// Login 管理员登录
func (s *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "登录成功",
		"data":    result,
	})
}

// Verify 校验当前令牌并返回用户信息
func (s *AuthHandler) Verify(c *gin.Context) {
	user, err := s.authSvc.Verify(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "验证成功",
		"data":    gin.H{"user": user},
	})
}

// Logout 注销当前令牌
func (s *AuthHandler) Logout(c *gin.Context) {
	if err := s.authSvc.Logout(c.Request.Context(), c.GetString("token")); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "退出成功"})
}

// UpdateCredentials 管理员自助修改用户名、邮箱或密码
func (s *AuthHandler) UpdateCredentials(c *gin.Context) {
	var req dto.UpdateAdminDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	user, err := s.authSvc.UpdateCredentials(c.Request.Context(), c.GetString("user_id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "更新成功",
		"data":    gin.H{"user": user},
	})
}

package handler

import (
	"Wildsalt/internal/api/dto"
	"Wildsalt/internal/pkg/response"
	"Wildsalt/internal/pkg/util"
	"Wildsalt/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
	}
}

// List 前台某篇文章的已通过评论
func (s *CommentHandler) List(c *gin.Context) {
	articleID := c.Query("articleId")
	if articleID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	comments, err := s.commentSvc.ListByArticle(c.Request.Context(), articleID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"comments": comments})
}

// Create 提交评论
func (s *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.commentSvc.Create(c.Request.Context(), &req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "评论成功",
		"data":    comment,
	})
}

// ListAdmin 后台评论列表
func (s *CommentHandler) ListAdmin(c *gin.Context) {
	var query dto.ListCommentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.commentSvc.ListAdmin(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// UpdateStatus 审核评论
func (s *CommentHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateCommentStatusDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.commentSvc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *CommentHandler) Delete(c *gin.Context) {
	if err := s.commentSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

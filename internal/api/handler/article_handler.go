package handler

import (
	"Wildsalt/internal/api/dto"
	"Wildsalt/internal/pkg/response"
	"Wildsalt/internal/pkg/util"
	"Wildsalt/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleSvc service.ArticleService
}

func NewArticleHandler(articleSvc service.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		articleSvc: articleSvc,
	}
}

// List 前台文章列表，只返回已发布
func (s *ArticleHandler) List(c *gin.Context) {
	var query dto.ListArticlesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.articleSvc.ListPublished(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetBySlug 前台文章详情，附带相关文章
func (s *ArticleHandler) GetBySlug(c *gin.Context) {
	result, err := s.articleSvc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListAdmin 后台文章列表，可按状态筛选
func (s *ArticleHandler) ListAdmin(c *gin.Context) {
	var query dto.ListArticlesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.articleSvc.ListAdmin(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *ArticleHandler) GetByID(c *gin.Context) {
	article, err := s.articleSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, article)
}

func (s *ArticleHandler) Create(c *gin.Context) {
	var req dto.CreateArticleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	article, err := s.articleSvc.Create(c.Request.Context(), &req, c.GetString("user_id"), c.GetString("username"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "创建成功",
		"data":    article,
	})
}

func (s *ArticleHandler) Update(c *gin.Context) {
	var req dto.UpdateArticleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	article, err := s.articleSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, article)
}

func (s *ArticleHandler) Delete(c *gin.Context) {
	if err := s.articleSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

package handler

import (
	"Wildsalt/internal/api/dto"
	"Wildsalt/internal/pkg/response"
	"Wildsalt/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReactionHandler struct {
	reactionSvc service.ReactionService
}

func NewReactionHandler(reactionSvc service.ReactionService) *ReactionHandler {
	return &ReactionHandler{
		reactionSvc: reactionSvc,
	}
}

// AddReaction 追加一条反应
func (s *ReactionHandler) AddReaction(c *gin.Context) {
	var req dto.AddReactionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.reactionSvc.AddReaction(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetReactions 查询文章的反应统计
func (s *ReactionHandler) GetReactions(c *gin.Context) {
	articleID := c.Query("articleId")
	if articleID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	result, err := s.reactionSvc.GetReactions(c.Request.Context(), articleID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

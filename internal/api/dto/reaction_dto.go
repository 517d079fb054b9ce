package dto

import "Wildsalt/internal/model"

type AddReactionDTO struct {
	ArticleID string `json:"articleId" binding:"required"`
	Reaction  string `json:"reaction" binding:"required"`
	UserID    string `json:"userId"`
}

// ReactionAction 本次提交产生的动作
type ReactionAction struct {
	Added bool `json:"added"`
}

type ReactionResult struct {
	Success        bool                  `json:"success"`
	TotalCount     int64                 `json:"totalCount"`
	ReactionCounts []model.ReactionCount `json:"reactionCounts"`
	Action         *ReactionAction       `json:"action,omitempty"`
}

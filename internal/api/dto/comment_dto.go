package dto

import "Wildsalt/internal/model"

type CreateCommentDTO struct {
	// ArticleID 兼容 ObjectID 和 slug 两种写法
	ArticleID string `json:"articleId" binding:"required"`
	Content   string `json:"content" binding:"required"`
	ParentID  string `json:"parentId"`
	Author    struct {
		Name    string `json:"name"`
		Email   string `json:"email" validate:"omitempty,email"`
		Website string `json:"website" validate:"omitempty,url"`
	} `json:"author"`
}

type UpdateCommentStatusDTO struct {
	Status string `json:"status" binding:"required" validate:"oneof=pending approved rejected"`
}

type ListCommentsQuery struct {
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=20"`
	Status    string `form:"status"`
	ArticleID string `form:"articleId"`
}

type CommentListResult struct {
	Comments   []*model.Comment `json:"comments"`
	Pagination *Pagination      `json:"pagination"`
}

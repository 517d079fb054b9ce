package dto

import "Wildsalt/internal/model"

type CreateArticleDTO struct {
	Title        string   `json:"title" binding:"required" validate:"min=1,max=255"`
	Content      string   `json:"content" binding:"required"`
	Summary      string   `json:"summary"`
	Slug         string   `json:"slug"`
	CoverImage   string   `json:"coverImage"`
	CoverType    string   `json:"coverType" validate:"omitempty,oneof=image gallery video"`
	CoverGallery []string `json:"coverGallery"`
	CoverVideo   string   `json:"coverVideo"`
	Categories   []string `json:"categories"`
	Tags         []string `json:"tags"`
	Status       string   `json:"status" validate:"omitempty,oneof=draft published"`
	IsFeatured   bool     `json:"isFeatured"`
	IsSlider     bool     `json:"isSlider"`
}

// UpdateArticleDTO 指针字段区分「未传」与「清空」
type UpdateArticleDTO struct {
	Title        *string   `json:"title" validate:"omitempty,min=1,max=255"`
	Content      *string   `json:"content"`
	Summary      *string   `json:"summary"`
	Slug         *string   `json:"slug"`
	CoverImage   *string   `json:"coverImage"`
	CoverType    *string   `json:"coverType" validate:"omitempty,oneof=image gallery video"`
	CoverGallery *[]string `json:"coverGallery"`
	CoverVideo   *string   `json:"coverVideo"`
	Categories   *[]string `json:"categories"`
	Tags         *[]string `json:"tags"`
	Status       *string   `json:"status" validate:"omitempty,oneof=draft published"`
	IsFeatured   *bool     `json:"isFeatured"`
	IsSlider     *bool     `json:"isSlider"`
}

// ListArticlesQuery 文章列表查询参数
type ListArticlesQuery struct {
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
	Category string `form:"category"`
	Tag      string `form:"tag"`
	Search   string `form:"search"`
	Featured bool   `form:"featured"`
	Slider   bool   `form:"slider"`
	// Status 仅后台接口生效
	Status string `form:"status"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

type ArticleListResult struct {
	Articles   []*model.Article `json:"articles"`
	Pagination *Pagination      `json:"pagination"`
}

type ArticleDetailResult struct {
	Article *model.Article   `json:"article"`
	Related []*model.Article `json:"relatedArticles"`
}

func NewPagination(page, limit int, total int64) *Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}
	return &Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

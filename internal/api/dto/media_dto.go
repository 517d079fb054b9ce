package dto

import "Wildsalt/internal/model"

type ListMediaQuery struct {
	Page  int    `form:"page,default=1"`
	Limit int    `form:"limit,default=20"`
	Type  string `form:"type"`
}

type MediaListResult struct {
	Media      []*model.Media `json:"media"`
	Pagination *Pagination    `json:"pagination"`
}

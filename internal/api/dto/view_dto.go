package dto

import (
	"Wildsalt/internal/model"
	"Wildsalt/internal/repository"
)

type RecordViewDTO struct {
	ArticleID string `json:"articleId" binding:"required"`
}

// RecordViewResult 记录浏览的响应
type RecordViewResult struct {
	Success   bool   `json:"success"`
	ViewCount int64  `json:"viewCount"`
	Message   string `json:"message"`
}

// ViewStatsDTO 某篇文章在指定统计周期内的浏览统计
type ViewStatsDTO struct {
	Success   bool       `json:"success"`
	ArticleID string     `json:"articleId"`
	Period    string     `json:"period"`
	ViewStats *ViewStats `json:"viewStats"`
}

type ViewStats struct {
	TotalViews     int64                   `json:"totalViews"`
	UniqueVisitors int64                   `json:"uniqueVisitors"`
	DeviceStats    []repository.DeviceStat `json:"deviceStats"`
	LatestView     *model.PageView         `json:"latestView"`
}

package service

import (
	"Wildsalt/internal/api/dto"
	"Wildsalt/internal/model"
	"Wildsalt/internal/pkg/consts"
	"Wildsalt/internal/pkg/util"
	"Wildsalt/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ViewService interface {
	RecordView(ctx context.Context, articleID, ip, userAgent, referer string) (*dto.RecordViewResult, error)
	GetStats(ctx context.Context, articleID, period string) (*dto.ViewStatsDTO, error)
}

type viewServiceImpl struct {
	viewRepo    repository.ViewRepo
	articleRepo repository.ArticleRepo
}

func NewViewService(viewRepo repository.ViewRepo, articleRepo repository.ArticleRepo) ViewService {
	return &viewServiceImpl{
		viewRepo:    viewRepo,
		articleRepo: articleRepo,
	}
}

// RecordView 记录一次浏览。同一 IP 在去重窗口内重复访问不落库也不加计数，
// 只返回当前浏览量。
func (s *viewServiceImpl) RecordView(ctx context.Context, articleID, ip, userAgent, referer string) (*dto.RecordViewResult, error) {
	oid, err := primitive.ObjectIDFromHex(articleID)
	if err != nil {
		return nil, ErrArticleIDInvalid
	}

	exists, err := s.articleRepo.Exists(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("查询文章失败: %w", err)
	}
	if !exists {
		return nil, ErrArticleNotFound
	}

	since := time.Now().Add(-time.Duration(consts.ViewDedupWindowMinutes) * time.Minute)
	seen, err := s.viewRepo.HasRecent(ctx, oid, ip, since)
	if err != nil {
		return nil, fmt.Errorf("查询访问记录失败: %w", err)
	}
	if seen {
		views, err := s.articleRepo.GetViews(ctx, oid)
		if err != nil {
			return nil, fmt.Errorf("查询浏览量失败: %w", err)
		}
		return &dto.RecordViewResult{
			Success:   true,
			ViewCount: views,
			Message:   "重复访问不计数",
		}, nil
	}

	view := &model.PageView{
		ArticleID:  oid,
		IP:         ip,
		UserAgent:  userAgent,
		Referer:    referer,
		DeviceType: util.DetectDevice(userAgent),
		SessionID:  util.NewViewSessionID(),
	}
	if err = s.viewRepo.Create(ctx, view); err != nil {
		return nil, fmt.Errorf("保存访问记录失败: %w", err)
	}

	views, err := s.articleRepo.IncViews(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("更新浏览量失败: %w", err)
	}

	log.DebugContext(ctx, "记录文章浏览", "articleId", articleID, "device", view.DeviceType)

	return &dto.RecordViewResult{
		Success:   true,
		ViewCount: views,
		Message:   "浏览记录成功",
	}, nil
}

// periodStart 返回统计周期的起始时间，all 返回 nil 表示不限
func periodStart(period string, now time.Time) *time.Time {
	var start time.Time
	switch period {
	case "today":
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "week":
		// 从本周日零点开始
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		start = midnight.AddDate(0, 0, -int(now.Weekday()))
	case "month":
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default:
		return nil
	}
	return &start
}

func (s *viewServiceImpl) GetStats(ctx context.Context, articleID, period string) (*dto.ViewStatsDTO, error) {
	oid, err := primitive.ObjectIDFromHex(articleID)
	if err != nil {
		return nil, ErrArticleIDInvalid
	}

	exists, err := s.articleRepo.Exists(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("查询文章失败: %w", err)
	}
	if !exists {
		return nil, ErrArticleNotFound
	}

	if period == "" {
		period = "all"
	}
	since := periodStart(period, time.Now())

	total, err := s.viewRepo.Count(ctx, oid, since)
	if err != nil {
		return nil, fmt.Errorf("统计浏览量失败: %w", err)
	}
	unique, err := s.viewRepo.UniqueVisitors(ctx, oid, since)
	if err != nil {
		return nil, fmt.Errorf("统计独立访客失败: %w", err)
	}
	devices, err := s.viewRepo.DeviceStats(ctx, oid, since)
	if err != nil {
		return nil, fmt.Errorf("统计设备分布失败: %w", err)
	}
	latest, err := s.viewRepo.Latest(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("查询最近访问失败: %w", err)
	}

	return &dto.ViewStatsDTO{
		Success:   true,
		ArticleID: articleID,
		Period:    period,
		ViewStats: &dto.ViewStats{
			TotalViews:     total,
			UniqueVisitors: unique,
			DeviceStats:    devices,
			LatestView:     latest,
		},
	}, nil
}

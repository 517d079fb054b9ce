package service

import (
	"Wildsalt/internal/model"
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRecordViewFirstVisit(t *testing.T) {
	articleRepo := newFakeArticleRepo()
	article := articleRepo.add(&model.Article{Title: "测试文章", Views: 5})
	viewRepo := &fakeViewRepo{}
	svc := NewViewService(viewRepo, articleRepo)

	result, err := svc.RecordView(context.Background(), article.ID.Hex(), "1.2.3.4", "Mozilla/5.0 (Windows NT 10.0)", "")
	if err != nil {
		t.Fatalf("RecordView: %v", err)
	}
	if !result.Success {
		t.Error("expected success")
	}
	if result.ViewCount != 6 {
		t.Errorf("view count = %d, want 6", result.ViewCount)
	}
	if len(viewRepo.created) != 1 {
		t.Fatalf("created %d page views, want 1", len(viewRepo.created))
	}
	if viewRepo.created[0].DeviceType != model.DeviceDesktop {
		t.Errorf("device = %q, want desktop", viewRepo.created[0].DeviceType)
	}
	if viewRepo.created[0].SessionID == "" {
		t.Error("session id should be populated")
	}
}

func TestRecordViewDuplicateWithinWindow(t *testing.T) {
	articleRepo := newFakeArticleRepo()
	article := articleRepo.add(&model.Article{Title: "测试文章", Views: 10})
	viewRepo := &fakeViewRepo{recent: true}
	svc := NewViewService(viewRepo, articleRepo)

	result, err := svc.RecordView(context.Background(), article.ID.Hex(), "1.2.3.4", "ua", "")
	if err != nil {
		t.Fatalf("RecordView: %v", err)
	}
	if len(viewRepo.created) != 0 {
		t.Errorf("duplicate visit should not insert, got %d inserts", len(viewRepo.created))
	}
	if result.ViewCount != 10 {
		t.Errorf("view count = %d, want unchanged 10", result.ViewCount)
	}
	if result.Message != "重复访问不计数" {
		t.Errorf("message = %q", result.Message)
	}
}

func TestRecordViewInvalidID(t *testing.T) {
	svc := NewViewService(&fakeViewRepo{}, newFakeArticleRepo())

	_, err := svc.RecordView(context.Background(), "not-an-id", "1.2.3.4", "ua", "")
	if !errors.Is(err, ErrArticleIDInvalid) {
		t.Errorf("err = %v, want ErrArticleIDInvalid", err)
	}
}

func TestRecordViewMissingArticle(t *testing.T) {
	svc := NewViewService(&fakeViewRepo{}, newFakeArticleRepo())

	_, err := svc.RecordView(context.Background(), primitive.NewObjectID().Hex(), "1.2.3.4", "ua", "")
	if !errors.Is(err, ErrArticleNotFound) {
		t.Errorf("err = %v, want ErrArticleNotFound", err)
	}
}

func TestGetStatsDefaultsPeriod(t *testing.T) {
	articleRepo := newFakeArticleRepo()
	article := articleRepo.add(&model.Article{Title: "测试文章"})
	viewRepo := &fakeViewRepo{}
	svc := NewViewService(viewRepo, articleRepo)

	for _, ip := range []string{"1.1.1.1", "1.1.1.1", "2.2.2.2"} {
		_ = viewRepo.Create(context.Background(), &model.PageView{ArticleID: article.ID, IP: ip})
	}

	stats, err := svc.GetStats(context.Background(), article.ID.Hex(), "")
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.Period != "all" {
		t.Errorf("period = %q, want all", stats.Period)
	}
	if stats.ViewStats.TotalViews != 3 {
		t.Errorf("total views = %d, want 3", stats.ViewStats.TotalViews)
	}
	if stats.ViewStats.UniqueVisitors != 2 {
		t.Errorf("unique visitors = %d, want 2", stats.ViewStats.UniqueVisitors)
	}
	if stats.ViewStats.LatestView == nil {
		t.Error("latest view should be set")
	}
}

func TestGetStatsMissingArticle(t *testing.T) {
	svc := NewViewService(&fakeViewRepo{}, newFakeArticleRepo())

	_, err := svc.GetStats(context.Background(), primitive.NewObjectID().Hex(), "all")
	if !errors.Is(err, ErrArticleNotFound) {
		t.Errorf("err = %v, want ErrArticleNotFound", err)
	}
}

func TestPeriodStart(t *testing.T) {
	// 2026-08-26 是周三
	now := time.Date(2026, 8, 26, 15, 30, 0, 0, time.Local)

	if got := periodStart("all", now); got != nil {
		t.Errorf("all period should be nil, got %v", got)
	}

	today := periodStart("today", now)
	if today == nil || !today.Equal(time.Date(2026, 8, 26, 0, 0, 0, 0, time.Local)) {
		t.Errorf("today start = %v", today)
	}

	// 周窗口从本周日零点开始
	week := periodStart("week", now)
	if week == nil || !week.Equal(time.Date(2026, 8, 23, 0, 0, 0, 0, time.Local)) {
		t.Errorf("week start = %v", week)
	}

	month := periodStart("month", now)
	if month == nil || !month.Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)) {
		t.Errorf("month start = %v", month)
	}
}

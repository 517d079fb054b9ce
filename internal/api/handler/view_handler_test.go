package handler

import (
	"Wildsalt/internal/api/dto"
	"Wildsalt/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeViewService struct {
	record func(articleID string) (*dto.RecordViewResult, error)
	stats  func(articleID, period string) (*dto.ViewStatsDTO, error)
}

func (f *fakeViewService) RecordView(_ context.Context, articleID, _, _, _ string) (*dto.RecordViewResult, error) {
	return f.record(articleID)
}

func (f *fakeViewService) GetStats(_ context.Context, articleID, period string) (*dto.ViewStatsDTO, error) {
	return f.stats(articleID, period)
}

func newViewRouter(svc service.ViewService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewViewHandler(svc)
	r.POST("/api/views", h.RecordView)
	r.GET("/api/views", h.GetStats)
	return r
}

func TestRecordViewEndpoint(t *testing.T) {
	articleID := primitive.NewObjectID().Hex()
	router := newViewRouter(&fakeViewService{
		record: func(id string) (*dto.RecordViewResult, error) {
			if id != articleID {
				t.Errorf("article id = %q", id)
			}
			return &dto.RecordViewResult{Success: true, ViewCount: 42, Message: "浏览记录成功"}, nil
		},
	})

	body, _ := json.Marshal(gin.H{"articleId": articleID})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/views", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp dto.RecordViewResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Success || resp.ViewCount != 42 {
		t.Errorf("resp = %+v", resp)
	}
}

func TestRecordViewInvalidIDReturns400(t *testing.T) {
	router := newViewRouter(&fakeViewService{
		record: func(string) (*dto.RecordViewResult, error) {
			return nil, service.ErrArticleIDInvalid
		},
	})

	body, _ := json.Marshal(gin.H{"articleId": "nope"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/views", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRecordViewMissingArticleReturns404(t *testing.T) {
	router := newViewRouter(&fakeViewService{
		record: func(string) (*dto.RecordViewResult, error) {
			return nil, service.ErrArticleNotFound
		},
	})

	body, _ := json.Marshal(gin.H{"articleId": primitive.NewObjectID().Hex()})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/views", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestGetStatsRequiresArticleID(t *testing.T) {
	router := newViewRouter(&fakeViewService{
		stats: func(string, string) (*dto.ViewStatsDTO, error) {
			t.Fatal("service should not be called without articleId")
			return nil, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/views", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetStatsPassesPeriod(t *testing.T) {
	articleID := primitive.NewObjectID().Hex()
	router := newViewRouter(&fakeViewService{
		stats: func(id, period string) (*dto.ViewStatsDTO, error) {
			if period != "week" {
				t.Errorf("period = %q, want week", period)
			}
			return &dto.ViewStatsDTO{
				Success:   true,
				ArticleID: id,
				Period:    period,
				ViewStats: &dto.ViewStats{TotalViews: 7},
			}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/views?articleId="+articleID+"&period=week", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp dto.ViewStatsDTO
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ViewStats == nil || resp.ViewStats.TotalViews != 7 {
		t.Errorf("resp = %+v", resp)
	}
}

package handler

import (
	"Wildsalt/internal/api/dto"
	"Wildsalt/internal/model"
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

type fakeReactionService struct {
	add func(d *dto.AddReactionDTO) (*dto.ReactionResult, error)
	get func(articleID string) (*dto.ReactionResult, error)
}

func (f *fakeReactionService) AddReaction(_ context.Context, d *dto.AddReactionDTO, _ string) (*dto.ReactionResult, error) {
	return f.add(d)
}

func (f *fakeReactionService) GetReactions(_ context.Context, articleID string) (*dto.ReactionResult, error) {
	return f.get(articleID)
}

func newReactionRouter(svc service.ReactionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewReactionHandler(svc)
	r.POST("/api/reactions", h.AddReaction)
	r.GET("/api/reactions", h.GetReactions)
	return r
}

func TestAddReactionEndpoint(t *testing.T) {
	articleID := primitive.NewObjectID().Hex()
	router := newReactionRouter(&fakeReactionService{
		add: func(d *dto.AddReactionDTO) (*dto.ReactionResult, error) {
			if d.Reaction != "like" {
				t.Errorf("reaction = %q", d.Reaction)
			}
			return &dto.ReactionResult{
				Success:        true,
				TotalCount:     5,
				ReactionCounts: []model.ReactionCount{{Emoji: "like", Count: 5}},
				Action:         &dto.ReactionAction{Added: true},
			}, nil
		},
	})

	body, _ := json.Marshal(gin.H{"articleId": articleID, "reaction": "like"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp dto.ReactionResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.TotalCount != 5 || resp.Action == nil || !resp.Action.Added {
		t.Errorf("resp = %+v", resp)
	}
}

func TestAddReactionInvalidKindReturns400(t *testing.T) {
	router := newReactionRouter(&fakeReactionService{
		add: func(*dto.AddReactionDTO) (*dto.ReactionResult, error) {
			return nil, service.ErrReactionInvalid
		},
	})

	body, _ := json.Marshal(gin.H{"articleId": primitive.NewObjectID().Hex(), "reaction": "wow"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestAddReactionMissingBodyReturns400(t *testing.T) {
	router := newReactionRouter(&fakeReactionService{
		add: func(*dto.AddReactionDTO) (*dto.ReactionResult, error) {
			t.Fatal("service should not be called with invalid body")
			return nil, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reactions", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetReactionsEndpoint(t *testing.T) {
	articleID := primitive.NewObjectID().Hex()
	router := newReactionRouter(&fakeReactionService{
		get: func(id string) (*dto.ReactionResult, error) {
			return &dto.ReactionResult{
				Success:    true,
				TotalCount: 2,
				ReactionCounts: []model.ReactionCount{
					{Emoji: "love", Count: 2},
				},
			}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reactions?articleId="+articleID, nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp dto.ReactionResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.TotalCount != 2 || resp.Action != nil {
		t.Errorf("resp = %+v", resp)
	}
}

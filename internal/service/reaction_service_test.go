package service

import (
	"Wildsalt/internal/api/dto"
	"Wildsalt/internal/model"
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func duplicateKeyErr() error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 11000, Message: "E11000 duplicate key error"},
		},
	}
}

func TestAddReactionAppendsEvent(t *testing.T) {
	articleRepo := newFakeArticleRepo()
	article := articleRepo.add(&model.Article{Title: "测试文章"})
	reactionRepo := &fakeReactionRepo{}
	svc := NewReactionService(reactionRepo, articleRepo)

	for i := 0; i < 3; i++ {
		result, err := svc.AddReaction(context.Background(), &dto.AddReactionDTO{
			ArticleID: article.ID.Hex(),
			Reaction:  "like",
		}, "1.2.3.4")
		if err != nil {
			t.Fatalf("AddReaction #%d: %v", i, err)
		}
		if result.Action == nil || !result.Action.Added {
			t.Error("action.added should be true")
		}
	}

	// 同一用户重复提交也各算一次
	if len(reactionRepo.inserted) != 3 {
		t.Fatalf("inserted %d reactions, want 3", len(reactionRepo.inserted))
	}
	if articleRepo.likes[article.ID] != 3 {
		t.Errorf("article likes = %d, want 3", articleRepo.likes[article.ID])
	}
}

func TestAddReactionInvalidKind(t *testing.T) {
	articleRepo := newFakeArticleRepo()
	article := articleRepo.add(&model.Article{Title: "测试文章"})
	reactionRepo := &fakeReactionRepo{}
	svc := NewReactionService(reactionRepo, articleRepo)

	_, err := svc.AddReaction(context.Background(), &dto.AddReactionDTO{
		ArticleID: article.ID.Hex(),
		Reaction:  "wow",
	}, "1.2.3.4")
	if !errors.Is(err, ErrReactionInvalid) {
		t.Errorf("err = %v, want ErrReactionInvalid", err)
	}
	if len(reactionRepo.inserted) != 0 {
		t.Error("invalid reaction must not be persisted")
	}
}

func TestAddReactionRetriesOnDuplicateKey(t *testing.T) {
	articleRepo := newFakeArticleRepo()
	article := articleRepo.add(&model.Article{Title: "测试文章"})
	reactionRepo := &fakeReactionRepo{insertErrs: []error{duplicateKeyErr()}}
	svc := NewReactionService(reactionRepo, articleRepo)

	result, err := svc.AddReaction(context.Background(), &dto.AddReactionDTO{
		ArticleID: article.ID.Hex(),
		Reaction:  "love",
	}, "1.2.3.4")
	if err != nil {
		t.Fatalf("AddReaction: %v", err)
	}
	if len(reactionRepo.inserted) != 1 {
		t.Fatalf("inserted %d reactions, want 1 after retry", len(reactionRepo.inserted))
	}
	if result.TotalCount != 1 {
		t.Errorf("total = %d, want 1", result.TotalCount)
	}
}

func TestAddReactionRetryExhausted(t *testing.T) {
	articleRepo := newFakeArticleRepo()
	article := articleRepo.add(&model.Article{Title: "测试文章"})
	reactionRepo := &fakeReactionRepo{insertErrs: []error{duplicateKeyErr(), duplicateKeyErr()}}
	svc := NewReactionService(reactionRepo, articleRepo)

	_, err := svc.AddReaction(context.Background(), &dto.AddReactionDTO{
		ArticleID: article.ID.Hex(),
		Reaction:  "love",
	}, "1.2.3.4")
	if !errors.Is(err, ErrReactionSave) {
		t.Errorf("err = %v, want ErrReactionSave", err)
	}
}

func TestAddReactionLikesWritebackBestEffort(t *testing.T) {
	articleRepo := newFakeArticleRepo()
	articleRepo.setLikesErr = errors.New("mongo down")
	article := articleRepo.add(&model.Article{Title: "测试文章"})
	svc := NewReactionService(&fakeReactionRepo{}, articleRepo)

	result, err := svc.AddReaction(context.Background(), &dto.AddReactionDTO{
		ArticleID: article.ID.Hex(),
		Reaction:  "haha",
	}, "1.2.3.4")
	if err != nil {
		t.Fatalf("AddReaction should tolerate likes writeback failure: %v", err)
	}
	if result.TotalCount != 1 {
		t.Errorf("total = %d, want 1", result.TotalCount)
	}
}

func TestGetReactionsMissingArticle(t *testing.T) {
	svc := NewReactionService(&fakeReactionRepo{}, newFakeArticleRepo())

	_, err := svc.GetReactions(context.Background(), primitive.NewObjectID().Hex())
	if !errors.Is(err, ErrArticleNotFound) {
		t.Errorf("err = %v, want ErrArticleNotFound", err)
	}
}

func TestGetReactionsAggregates(t *testing.T) {
	articleRepo := newFakeArticleRepo()
	article := articleRepo.add(&model.Article{Title: "测试文章"})
	reactionRepo := &fakeReactionRepo{}
	svc := NewReactionService(reactionRepo, articleRepo)

	for _, emoji := range []string{"like", "like", "sad"} {
		_, err := svc.AddReaction(context.Background(), &dto.AddReactionDTO{
			ArticleID: article.ID.Hex(),
			Reaction:  emoji,
		}, "1.2.3.4")
		if err != nil {
			t.Fatalf("AddReaction: %v", err)
		}
	}

	result, err := svc.GetReactions(context.Background(), article.ID.Hex())
	if err != nil {
		t.Fatalf("GetReactions: %v", err)
	}
	if result.TotalCount != 3 {
		t.Errorf("total = %d, want 3", result.TotalCount)
	}
	counts := make(map[string]int64)
	for _, c := range result.ReactionCounts {
		counts[c.Emoji] = c.Count
	}
	if counts["like"] != 2 || counts["sad"] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

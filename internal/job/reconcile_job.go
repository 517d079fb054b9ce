package job

import (
	"Wildsalt/internal/repository"
	"context"
	log "log/slog"
	"time"
)

// ReconcileJob 对账任务：按明细重算每篇文章的冗余计数。
// 浏览量以去重后的访问明细为准，反应数和评论数同理。
type ReconcileJob struct {
	articleRepo  repository.ArticleRepo
	viewRepo     repository.ViewRepo
	reactionRepo repository.ReactionRepo
	commentRepo  repository.CommentRepo
}

func NewReconcileJob(
	articleRepo repository.ArticleRepo,
	viewRepo repository.ViewRepo,
	reactionRepo repository.ReactionRepo,
	commentRepo repository.CommentRepo,
) *ReconcileJob {
	return &ReconcileJob{
		articleRepo:  articleRepo,
		viewRepo:     viewRepo,
		reactionRepo: reactionRepo,
		commentRepo:  commentRepo,
	}
}

func (s *ReconcileJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	log.Info("start counter reconcile job")
	start := time.Now()

	ids, err := s.articleRepo.ListIDs(ctx)
	if err != nil {
		log.Error("failed to list article ids", "err", err)
		return
	}

	fixed := 0
	for _, id := range ids {
		views, err := s.viewRepo.Count(ctx, id, nil)
		if err != nil {
			log.Error("failed to count views", "articleId", id.Hex(), "err", err)
			continue
		}
		likes, err := s.reactionRepo.CountByArticle(ctx, id)
		if err != nil {
			log.Error("failed to count reactions", "articleId", id.Hex(), "err", err)
			continue
		}
		comments, err := s.commentRepo.CountApprovedByArticle(ctx, id)
		if err != nil {
			log.Error("failed to count comments", "articleId", id.Hex(), "err", err)
			continue
		}

		if err = s.articleRepo.SetCounters(ctx, id, views, likes, comments); err != nil {
			log.Error("failed to update counters", "articleId", id.Hex(), "err", err)
			continue
		}
		fixed++
	}

	log.Info("counter reconcile job finished", "articles", fixed, "elapsed", time.Since(start).String())
}

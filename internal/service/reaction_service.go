package service

import (
	"Wildsalt/internal/api/dto"
	"Wildsalt/internal/model"
	"Wildsalt/internal/pkg/util"
	"Wildsalt/internal/repository"
	"context"
	"fmt"
	log "log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReactionService interface {
	AddReaction(ctx context.Context, d *dto.AddReactionDTO, ip string) (*dto.ReactionResult, error)
	GetReactions(ctx context.Context, articleID string) (*dto.ReactionResult, error)
}

type reactionServiceImpl struct {
	reactionRepo repository.ReactionRepo
	articleRepo  repository.ArticleRepo
}

func NewReactionService(reactionRepo repository.ReactionRepo, articleRepo repository.ArticleRepo) ReactionService {
	return &reactionServiceImpl{
		reactionRepo: reactionRepo,
		articleRepo:  articleRepo,
	}
}

// AddReaction 追加一条反应事件。每次提交都是独立事件，不做撤销或切换。
// 历史库可能残留 sessionId 唯一索引，撞索引时换新标识重试一次。
func (s *reactionServiceImpl) AddReaction(ctx context.Context, d *dto.AddReactionDTO, ip string) (*dto.ReactionResult, error) {
	if !model.IsValidReaction(d.Reaction) {
		return nil, ErrReactionInvalid
	}

	oid, err := primitive.ObjectIDFromHex(d.ArticleID)
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

	userID := d.UserID
	if userID == "" {
		userID = util.NewAnonUserID()
	}

	reaction := &model.Reaction{
		ArticleID: oid,
		Emoji:     d.Reaction,
		UserID:    userID,
		UserIP:    ip,
		SessionID: util.NewReactionSessionID(ip),
	}

	if err = s.reactionRepo.Insert(ctx, reaction); err != nil {
		if !mongo.IsDuplicateKeyError(err) {
			return nil, ErrReactionSave
		}
		log.WarnContext(ctx, "反应标识撞唯一索引，重试一次", "articleId", d.ArticleID)
		retry := &model.Reaction{
			ArticleID: oid,
			Emoji:     d.Reaction,
			UserID:    util.NewAnonUserID(),
			UserIP:    ip,
			SessionID: util.NewAltReactionSessionID(),
		}
		if err = s.reactionRepo.Insert(ctx, retry); err != nil {
			return nil, ErrReactionSave
		}
	}

	result, err := s.aggregate(ctx, oid)
	if err != nil {
		return nil, err
	}

	// 冗余计数尽力同步，失败不影响响应
	if err = s.articleRepo.SetLikes(ctx, oid, result.TotalCount); err != nil {
		log.WarnContext(ctx, "同步文章反应计数失败", "articleId", d.ArticleID, "error", err)
	}

	result.Action = &dto.ReactionAction{Added: true}
	return result, nil
}

func (s *reactionServiceImpl) GetReactions(ctx context.Context, articleID string) (*dto.ReactionResult, error) {
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

	return s.aggregate(ctx, oid)
}

func (s *reactionServiceImpl) aggregate(ctx context.Context, oid primitive.ObjectID) (*dto.ReactionResult, error) {
	counts, err := s.reactionRepo.CountsByEmoji(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("统计反应失败: %w", err)
	}

	var total int64
	for _, c := range counts {
		total += c.Count
	}

	return &dto.ReactionResult{
		Success:        true,
		TotalCount:     total,
		ReactionCounts: counts,
	}, nil
}

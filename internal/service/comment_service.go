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
	"strings"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CommentService interface {
	Create(ctx context.Context, d *dto.CreateCommentDTO, ip, userAgent string) (*model.Comment, error)
	ListByArticle(ctx context.Context, articleID string) ([]*model.Comment, error)

	ListAdmin(ctx context.Context, query *dto.ListCommentsQuery) (*dto.CommentListResult, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.Comment, error)
	Delete(ctx context.Context, id string) error
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepo
	articleRepo repository.ArticleRepo
}

func NewCommentService(commentRepo repository.CommentRepo, articleRepo repository.ArticleRepo) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
	}
}

// resolveArticle articleId 兼容 ObjectID 和 slug
func (s *commentServiceImpl) resolveArticle(ctx context.Context, articleID string) (*model.Article, error) {
	if oid, err := primitive.ObjectIDFromHex(articleID); err == nil {
		article, err := s.articleRepo.GetByID(ctx, oid)
		if err != nil {
			return nil, fmt.Errorf("查询文章失败: %w", err)
		}
		if article == nil {
			return nil, ErrArticleNotFound
		}
		return article, nil
	}

	article, err := s.articleRepo.GetBySlug(ctx, articleID, false)
	if err != nil {
		return nil, fmt.Errorf("查询文章失败: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

func (s *commentServiceImpl) Create(ctx context.Context, d *dto.CreateCommentDTO, ip, userAgent string) (*model.Comment, error) {
	content := strings.TrimSpace(d.Content)
	if content == "" {
		return nil, ErrParamInvalid
	}
	if utf8.RuneCountInString(content) > consts.CommentMaxLength {
		return nil, ErrCommentTooLong
	}
	if util.ContainsSensitiveContent(content) {
		return nil, ErrCommentSensitive
	}

	article, err := s.resolveArticle(ctx, d.ArticleID)
	if err != nil {
		return nil, err
	}

	var parentID *primitive.ObjectID
	if d.ParentID != "" {
		pid, err := primitive.ObjectIDFromHex(d.ParentID)
		if err != nil {
			return nil, ErrParamInvalid
		}
		parent, err := s.commentRepo.GetByID(ctx, pid)
		if err != nil {
			return nil, fmt.Errorf("查询父评论失败: %w", err)
		}
		if parent == nil || parent.ArticleID != article.ID {
			return nil, ErrCommentNotFound
		}
		parentID = &pid
	}

	name := strings.TrimSpace(d.Author.Name)
	if name == "" {
		name = consts.DefaultAuthorName
	}
	email := strings.TrimSpace(d.Author.Email)
	if email == "" {
		email = consts.DefaultAuthorEmail
	}

	comment := &model.Comment{
		ArticleID: article.ID,
		Content:   content,
		ParentID:  parentID,
		Author: model.CommentAuthor{
			Name:    name,
			Email:   email,
			Website: strings.TrimSpace(d.Author.Website),
		},
		Status:    model.CommentStatusApproved,
		IP:        ip,
		UserAgent: userAgent,
	}
	if err = s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("保存评论失败: %w", err)
	}

	if err = s.articleRepo.IncComments(ctx, article.ID, 1); err != nil {
		log.WarnContext(ctx, "更新文章评论数失败", "articleId", article.ID.Hex(), "error", err)
	}

	return comment, nil
}

func (s *commentServiceImpl) ListByArticle(ctx context.Context, articleID string) ([]*model.Comment, error) {
	article, err := s.resolveArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListApproved(ctx, article.ID)
	if err != nil {
		return nil, fmt.Errorf("查询评论失败: %w", err)
	}
	if comments == nil {
		comments = make([]*model.Comment, 0)
	}
	return comments, nil
}

func (s *commentServiceImpl) ListAdmin(ctx context.Context, query *dto.ListCommentsQuery) (*dto.CommentListResult, error) {
	filter := &repository.CommentFilter{
		Status: query.Status,
		Page:   query.Page,
		Limit:  query.Limit,
	}
	if query.ArticleID != "" {
		oid, err := primitive.ObjectIDFromHex(query.ArticleID)
		if err != nil {
			return nil, ErrArticleIDInvalid
		}
		filter.ArticleID = &oid
	}

	comments, total, err := s.commentRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("查询评论列表失败: %w", err)
	}
	if comments == nil {
		comments = make([]*model.Comment, 0)
	}

	return &dto.CommentListResult{
		Comments:   comments,
		Pagination: dto.NewPagination(query.Page, query.Limit, total),
	}, nil
}

// UpdateStatus 审核状态变更时同步文章评论数：
// 进入 approved 加一，离开 approved 减一。
func (s *commentServiceImpl) UpdateStatus(ctx context.Context, id, status string) (*model.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrParamInvalid
	}
	comment, err := s.commentRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("查询评论失败: %w", err)
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}

	if comment.Status == status {
		return comment, nil
	}
	// 仓储层可能返回活引用，变更前先留住原状态
	prevStatus := comment.Status

	if err = s.commentRepo.UpdateStatus(ctx, oid, status); err != nil {
		return nil, fmt.Errorf("更新评论状态失败: %w", err)
	}

	delta := 0
	if status == model.CommentStatusApproved {
		delta = 1
	} else if prevStatus == model.CommentStatusApproved {
		delta = -1
	}
	if delta != 0 {
		if err = s.articleRepo.IncComments(ctx, comment.ArticleID, delta); err != nil {
			log.WarnContext(ctx, "更新文章评论数失败", "articleId", comment.ArticleID.Hex(), "error", err)
		}
	}

	comment.Status = status
	return comment, nil
}

func (s *commentServiceImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrParamInvalid
	}
	comment, err := s.commentRepo.GetByID(ctx, oid)
	if err != nil {
		return fmt.Errorf("查询评论失败: %w", err)
	}
	if comment == nil {
		return ErrCommentNotFound
	}

	if err = s.commentRepo.Delete(ctx, oid); err != nil {
		return fmt.Errorf("删除评论失败: %w", err)
	}

	if comment.Status == model.CommentStatusApproved {
		if err = s.articleRepo.IncComments(ctx, comment.ArticleID, -1); err != nil {
			log.WarnContext(ctx, "更新文章评论数失败", "articleId", comment.ArticleID.Hex(), "error", err)
		}
	}
	return nil
}

package service

import (
	"Wildsalt/internal/api/dto"
	"Wildsalt/internal/model"
	"Wildsalt/internal/pkg/util"
	"Wildsalt/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const relatedArticleLimit = 3

type ArticleService interface {
	ListPublished(ctx context.Context, query *dto.ListArticlesQuery) (*dto.ArticleListResult, error)
	GetBySlug(ctx context.Context, slug string) (*dto.ArticleDetailResult, error)

	ListAdmin(ctx context.Context, query *dto.ListArticlesQuery) (*dto.ArticleListResult, error)
	GetByID(ctx context.Context, id string) (*model.Article, error)
	Create(ctx context.Context, d *dto.CreateArticleDTO, authorID, authorName string) (*model.Article, error)
	Update(ctx context.Context, id string, d *dto.UpdateArticleDTO) (*model.Article, error)
	Delete(ctx context.Context, id string) error
}

type articleServiceImpl struct {
	articleRepo  repository.ArticleRepo
	categoryRepo repository.CategoryRepo
	viewRepo     repository.ViewRepo
	reactionRepo repository.ReactionRepo
	commentRepo  repository.CommentRepo
}

func NewArticleService(
	articleRepo repository.ArticleRepo,
	categoryRepo repository.CategoryRepo,
	viewRepo repository.ViewRepo,
	reactionRepo repository.ReactionRepo,
	commentRepo repository.CommentRepo,
) ArticleService {
	return &articleServiceImpl{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		viewRepo:     viewRepo,
		reactionRepo: reactionRepo,
		commentRepo:  commentRepo,
	}
}

// resolveCategory category 参数兼容 ObjectID 和 slug
func (s *articleServiceImpl) resolveCategory(ctx context.Context, category string) (*primitive.ObjectID, error) {
	if category == "" {
		return nil, nil
	}
	if oid, err := primitive.ObjectIDFromHex(category); err == nil {
		return &oid, nil
	}
	cat, err := s.categoryRepo.GetBySlug(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("查询分类失败: %w", err)
	}
	if cat == nil {
		return nil, ErrCategoryNotFound
	}
	return &cat.ID, nil
}

func (s *articleServiceImpl) list(ctx context.Context, query *dto.ListArticlesQuery, status string, sortByPublished bool) (*dto.ArticleListResult, error) {
	categoryID, err := s.resolveCategory(ctx, query.Category)
	if err != nil {
		return nil, err
	}

	articles, total, err := s.articleRepo.List(ctx, &repository.ArticleFilter{
		Status:          status,
		Category:        categoryID,
		Tag:             query.Tag,
		Featured:        query.Featured,
		Slider:          query.Slider,
		Search:          query.Search,
		Page:            query.Page,
		Limit:           query.Limit,
		SortByPublished: sortByPublished,
	})
	if err != nil {
		return nil, fmt.Errorf("查询文章列表失败: %w", err)
	}
	if articles == nil {
		articles = make([]*model.Article, 0)
	}

	return &dto.ArticleListResult{
		Articles:   articles,
		Pagination: dto.NewPagination(query.Page, query.Limit, total),
	}, nil
}

func (s *articleServiceImpl) ListPublished(ctx context.Context, query *dto.ListArticlesQuery) (*dto.ArticleListResult, error) {
	return s.list(ctx, query, model.ArticleStatusPublished, true)
}

func (s *articleServiceImpl) ListAdmin(ctx context.Context, query *dto.ListArticlesQuery) (*dto.ArticleListResult, error) {
	return s.list(ctx, query, query.Status, false)
}

func (s *articleServiceImpl) GetBySlug(ctx context.Context, slug string) (*dto.ArticleDetailResult, error) {
	if slug == "" {
		return nil, ErrSlugEmpty
	}
	article, err := s.articleRepo.GetBySlug(ctx, slug, true)
	if err != nil {
		return nil, fmt.Errorf("查询文章失败: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	related := make([]*model.Article, 0)
	if len(article.Categories) > 0 {
		related, err = s.articleRepo.ListRelated(ctx, article.Categories, article.ID, relatedArticleLimit)
		if err != nil {
			log.WarnContext(ctx, "查询相关文章失败", "slug", slug, "error", err)
			related = make([]*model.Article, 0)
		}
	}

	return &dto.ArticleDetailResult{
		Article: article,
		Related: related,
	}, nil
}

func (s *articleServiceImpl) GetByID(ctx context.Context, id string) (*model.Article, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrArticleIDInvalid
	}
	article, err := s.articleRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("查询文章失败: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// uniqueSlug 生成唯一 slug，冲突时追加 -1、-2 直到可用
func (s *articleServiceImpl) uniqueSlug(ctx context.Context, base string) (string, error) {
	slug := base
	for i := 1; ; i++ {
		exists, err := s.articleRepo.SlugExists(ctx, slug)
		if err != nil {
			return "", fmt.Errorf("查询slug失败: %w", err)
		}
		if !exists {
			return slug, nil
		}
		slug = base + "-" + strconv.Itoa(i)
	}
}

func parseObjectIDs(ids []string) ([]primitive.ObjectID, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, ErrParamInvalid
		}
		oids = append(oids, oid)
	}
	return oids, nil
}

func (s *articleServiceImpl) Create(ctx context.Context, d *dto.CreateArticleDTO, authorID, authorName string) (*model.Article, error) {
	base := d.Slug
	if base == "" {
		base = util.Slugify(d.Title)
	}
	if base == "" {
		return nil, ErrSlugEmpty
	}
	slug, err := s.uniqueSlug(ctx, base)
	if err != nil {
		return nil, err
	}

	categories, err := parseObjectIDs(d.Categories)
	if err != nil {
		return nil, err
	}

	status := d.Status
	if status == "" {
		status = model.ArticleStatusDraft
	}
	coverType := d.CoverType
	if coverType == "" {
		coverType = model.CoverTypeImage
	}

	// user_id 来自已校验的 token claims，解析失败时落空 ID
	author, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		author = primitive.NilObjectID
	}

	article := &model.Article{
		Title:        d.Title,
		Content:      d.Content,
		Summary:      d.Summary,
		Slug:         slug,
		CoverImage:   d.CoverImage,
		CoverType:    coverType,
		CoverGallery: d.CoverGallery,
		CoverVideo:   d.CoverVideo,
		Categories:   categories,
		Tags:         d.Tags,
		Author:       author,
		AuthorName:   authorName,
		Status:       status,
		IsFeatured:   d.IsFeatured,
		IsSlider:     d.IsSlider,
	}
	if status == model.ArticleStatusPublished {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err = s.articleRepo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("创建文章失败: %w", err)
	}

	s.refreshCategoryCounts(ctx, categories)
	return article, nil
}

func (s *articleServiceImpl) Update(ctx context.Context, id string, d *dto.UpdateArticleDTO) (*model.Article, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrArticleIDInvalid
	}
	article, err := s.articleRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("查询文章失败: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	update := bson.M{}
	if d.Title != nil {
		update["title"] = *d.Title
	}
	if d.Content != nil {
		update["content"] = *d.Content
	}
	if d.Summary != nil {
		update["summary"] = *d.Summary
	}
	if d.Slug != nil && *d.Slug != article.Slug {
		slug, err := s.uniqueSlug(ctx, *d.Slug)
		if err != nil {
			return nil, err
		}
		update["slug"] = slug
	}
	if d.CoverImage != nil {
		update["coverImage"] = *d.CoverImage
	}
	if d.CoverType != nil {
		update["coverType"] = *d.CoverType
	}
	if d.CoverGallery != nil {
		update["coverGallery"] = *d.CoverGallery
	}
	if d.CoverVideo != nil {
		update["coverVideo"] = *d.CoverVideo
	}

	touched := article.Categories
	if d.Categories != nil {
		categories, err := parseObjectIDs(*d.Categories)
		if err != nil {
			return nil, err
		}
		update["categories"] = categories
		touched = append(touched, categories...)
	}
	if d.Tags != nil {
		update["tags"] = *d.Tags
	}
	if d.IsFeatured != nil {
		update["isFeatured"] = *d.IsFeatured
	}
	if d.IsSlider != nil {
		update["isSlider"] = *d.IsSlider
	}
	if d.Status != nil && *d.Status != article.Status {
		update["status"] = *d.Status
		// 首次发布时落发布时间
		if *d.Status == model.ArticleStatusPublished && article.PublishedAt == nil {
			update["publishedAt"] = time.Now()
		}
	}

	if len(update) > 0 {
		if err = s.articleRepo.Update(ctx, oid, update); err != nil {
			return nil, fmt.Errorf("更新文章失败: %w", err)
		}
	}

	s.refreshCategoryCounts(ctx, touched)

	updated, err := s.articleRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("查询文章失败: %w", err)
	}
	return updated, nil
}

// Delete 删除文章并清理其访问记录、反应和评论
func (s *articleServiceImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrArticleIDInvalid
	}
	article, err := s.articleRepo.GetByID(ctx, oid)
	if err != nil {
		return fmt.Errorf("查询文章失败: %w", err)
	}
	if article == nil {
		return ErrArticleNotFound
	}

	if err = s.articleRepo.Delete(ctx, oid); err != nil {
		return fmt.Errorf("删除文章失败: %w", err)
	}

	// 附属数据清理失败只记日志，对账任务会兜底
	if err = s.viewRepo.DeleteByArticle(ctx, oid); err != nil {
		log.WarnContext(ctx, "清理访问记录失败", "articleId", id, "error", err)
	}
	if err = s.reactionRepo.DeleteByArticle(ctx, oid); err != nil {
		log.WarnContext(ctx, "清理反应记录失败", "articleId", id, "error", err)
	}
	if err = s.commentRepo.DeleteByArticle(ctx, oid); err != nil {
		log.WarnContext(ctx, "清理评论失败", "articleId", id, "error", err)
	}

	s.refreshCategoryCounts(ctx, article.Categories)
	return nil
}

// refreshCategoryCounts 重算分类下的已发布文章数，失败只记日志
func (s *articleServiceImpl) refreshCategoryCounts(ctx context.Context, categoryIDs []primitive.ObjectID) {
	seen := make(map[primitive.ObjectID]struct{}, len(categoryIDs))
	for _, cid := range categoryIDs {
		if _, ok := seen[cid]; ok {
			continue
		}
		seen[cid] = struct{}{}

		count, err := s.articleRepo.CountPublishedByCategory(ctx, cid)
		if err != nil {
			log.WarnContext(ctx, "统计分类文章数失败", "categoryId", cid.Hex(), "error", err)
			continue
		}
		if err = s.categoryRepo.SetCount(ctx, cid, count); err != nil {
			log.WarnContext(ctx, "更新分类文章数失败", "categoryId", cid.Hex(), "error", err)
		}
	}
}

package repository

import (
	"Wildsalt/internal/model"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ArticleFilter 文章列表查询条件
type ArticleFilter struct {
	Status   string
	Category *primitive.ObjectID
	Tag      string
	Featured bool
	Slider   bool
	Search   string
	Page     int
	Limit    int
	// SortByPublished 为 true 时按 publishedAt 降序（前台），否则按 createdAt 降序（后台）
	SortByPublished bool
}

type ArticleRepo interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Article, error)
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.Article, error)
	List(ctx context.Context, filter *ArticleFilter) ([]*model.Article, int64, error)
	ListRelated(ctx context.Context, categoryIDs []primitive.ObjectID, exclude primitive.ObjectID, limit int) ([]*model.Article, error)
	ListPublished(ctx context.Context, limit int) ([]*model.Article, error)
	ListIDs(ctx context.Context) ([]primitive.ObjectID, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, article *model.Article) error
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// IncViews 原子自增浏览量并返回新值，避免读改写丢失更新
	IncViews(ctx context.Context, id primitive.ObjectID) (int64, error)
	GetViews(ctx context.Context, id primitive.ObjectID) (int64, error)
	IncComments(ctx context.Context, id primitive.ObjectID, delta int) error
	SetLikes(ctx context.Context, id primitive.ObjectID, total int64) error
	SetCounters(ctx context.Context, id primitive.ObjectID, views, likes, comments int64) error
	CountPublishedByCategory(ctx context.Context, categoryID primitive.ObjectID) (int64, error)
}

type articleRepoImpl struct {
	col *mongo.Collection
}

func NewArticleRepo(db *mongo.Database) ArticleRepo {
	return &articleRepoImpl{
		col: db.Collection("articles"),
	}
}

func (s *articleRepoImpl) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	return count > 0, err
}

func (s *articleRepoImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Article, error) {
	var article model.Article
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&article)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (s *articleRepoImpl) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.Article, error) {
	filter := bson.M{"slug": slug}
	if publishedOnly {
		filter["status"] = model.ArticleStatusPublished
	}

	var article model.Article
	err := s.col.FindOne(ctx, filter).Decode(&article)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (s *articleRepoImpl) List(ctx context.Context, filter *ArticleFilter) ([]*model.Article, int64, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Category != nil {
		query["categories"] = *filter.Category
	}
	if filter.Tag != "" {
		query["tags"] = filter.Tag
	}
	if filter.Featured {
		query["isFeatured"] = true
	}
	if filter.Slider {
		query["isSlider"] = true
	}
	if filter.Search != "" {
		// 正则搜索，对中文和部分匹配更友好
		regex := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": regex},
			bson.M{"content": regex},
			bson.M{"summary": regex},
			bson.M{"tags": regex},
		}
	}

	total, err := s.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	sort := bson.D{{Key: "createdAt", Value: -1}}
	if filter.SortByPublished {
		sort = bson.D{{Key: "publishedAt", Value: -1}, {Key: "createdAt", Value: -1}}
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	findOptions := options.Find().
		SetSort(sort).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := s.col.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var articles []*model.Article
	if err = cursor.All(ctx, &articles); err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

func (s *articleRepoImpl) ListRelated(ctx context.Context, categoryIDs []primitive.ObjectID, exclude primitive.ObjectID, limit int) ([]*model.Article, error) {
	filter := bson.M{
		"categories": bson.M{"$in": categoryIDs},
		"_id":        bson.M{"$ne": exclude},
		"status":     model.ArticleStatusPublished,
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "publishedAt", Value: -1}, {Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var articles []*model.Article
	if err = cursor.All(ctx, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *articleRepoImpl) ListPublished(ctx context.Context, limit int) ([]*model.Article, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "publishedAt", Value: -1}, {Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.col.Find(ctx, bson.M{"status": model.ArticleStatusPublished}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var articles []*model.Article
	if err = cursor.All(ctx, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *articleRepoImpl) ListIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	cursor, err := s.col.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

func (s *articleRepoImpl) SlugExists(ctx context.Context, slug string) (bool, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{"slug": slug}, options.Count().SetLimit(1))
	return count > 0, err
}

func (s *articleRepoImpl) Create(ctx context.Context, article *model.Article) error {
	now := time.Now()
	article.CreatedAt = now
	article.UpdatedAt = now
	result, err := s.col.InsertOne(ctx, article)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		article.ID = oid
	}
	return nil
}

func (s *articleRepoImpl) Update(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	update["updatedAt"] = time.Now()
	_, err := s.col.UpdateByID(ctx, id, bson.M{"$set": update})
	return err
}

func (s *articleRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *articleRepoImpl) IncViews(ctx context.Context, id primitive.ObjectID) (int64, error) {
	var updated model.Article
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return 0, err
	}
	return updated.Views, nil
}

func (s *articleRepoImpl) GetViews(ctx context.Context, id primitive.ObjectID) (int64, error) {
	var doc struct {
		Views int64 `bson:"views"`
	}
	err := s.col.FindOne(ctx, bson.M{"_id": id},
		options.FindOne().SetProjection(bson.M{"views": 1}),
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Views, nil
}

func (s *articleRepoImpl) IncComments(ctx context.Context, id primitive.ObjectID, delta int) error {
	_, err := s.col.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"comments": delta}})
	return err
}

func (s *articleRepoImpl) SetLikes(ctx context.Context, id primitive.ObjectID, total int64) error {
	_, err := s.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"likes": total}})
	return err
}

func (s *articleRepoImpl) SetCounters(ctx context.Context, id primitive.ObjectID, views, likes, comments int64) error {
	_, err := s.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"views":    views,
		"likes":    likes,
		"comments": comments,
	}})
	return err
}

func (s *articleRepoImpl) CountPublishedByCategory(ctx context.Context, categoryID primitive.ObjectID) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{
		"categories": categoryID,
		"status":     model.ArticleStatusPublished,
	})
}

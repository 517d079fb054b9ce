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

// CommentFilter 评论列表查询条件（后台）
type CommentFilter struct {
	Status    string
	ArticleID *primitive.ObjectID
	Page      int
	Limit     int
}

type CommentRepo interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Comment, error)
	// ListApproved 前台按文章查已通过的评论，时间升序便于构建楼层
	ListApproved(ctx context.Context, articleID primitive.ObjectID) ([]*model.Comment, error)
	List(ctx context.Context, filter *CommentFilter) ([]*model.Comment, int64, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByArticle(ctx context.Context, articleID primitive.ObjectID) error
	CountApprovedByArticle(ctx context.Context, articleID primitive.ObjectID) (int64, error)
}

type commentRepoImpl struct {
	col *mongo.Collection
}

func NewCommentRepo(db *mongo.Database) CommentRepo {
	return &commentRepoImpl{
		col: db.Collection("comments"),
	}
}

func (s *commentRepoImpl) Create(ctx context.Context, comment *model.Comment) error {
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	result, err := s.col.InsertOne(ctx, comment)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		comment.ID = oid
	}
	return nil
}

func (s *commentRepoImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Comment, error) {
	var comment model.Comment
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (s *commentRepoImpl) ListApproved(ctx context.Context, articleID primitive.ObjectID) ([]*model.Comment, error) {
	cursor, err := s.col.Find(ctx,
		bson.M{
			"articleId": articleID,
			"status":    model.CommentStatusApproved,
		},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var comments []*model.Comment
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *commentRepoImpl) List(ctx context.Context, filter *CommentFilter) ([]*model.Comment, int64, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.ArticleID != nil {
		query["articleId"] = *filter.ArticleID
	}

	total, err := s.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	cursor, err := s.col.Find(ctx, query, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page-1)*limit)).
		SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var comments []*model.Comment
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (s *commentRepoImpl) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	_, err := s.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}})
	return err
}

func (s *commentRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *commentRepoImpl) DeleteByArticle(ctx context.Context, articleID primitive.ObjectID) error {
	_, err := s.col.DeleteMany(ctx, bson.M{"articleId": articleID})
	return err
}

func (s *commentRepoImpl) CountApprovedByArticle(ctx context.Context, articleID primitive.ObjectID) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{
		"articleId": articleID,
		"status":    model.CommentStatusApproved,
	})
}

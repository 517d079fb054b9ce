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

type MediaRepo interface {
	Create(ctx context.Context, media *model.Media) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Media, error)
	List(ctx context.Context, mediaType string, page, limit int) ([]*model.Media, int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type mediaRepoImpl struct {
	col *mongo.Collection
}

func NewMediaRepo(db *mongo.Database) MediaRepo {
	return &mediaRepoImpl{
		col: db.Collection("media"),
	}
}

func (s *mediaRepoImpl) Create(ctx context.Context, media *model.Media) error {
	now := time.Now()
	media.CreatedAt = now
	media.UpdatedAt = now
	result, err := s.col.InsertOne(ctx, media)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		media.ID = oid
	}
	return nil
}

func (s *mediaRepoImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Media, error) {
	var media model.Media
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&media)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &media, nil
}

func (s *mediaRepoImpl) List(ctx context.Context, mediaType string, page, limit int) ([]*model.Media, int64, error) {
	query := bson.M{}
	if mediaType != "" {
		query["type"] = mediaType
	}

	total, err := s.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
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

	var items []*model.Media
	if err = cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *mediaRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

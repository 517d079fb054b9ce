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

type CategoryRepo interface {
	ListAll(ctx context.Context) ([]*model.Category, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Category, error)
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)
	SlugExists(ctx context.Context, slug string, exclude *primitive.ObjectID) (bool, error)
	Create(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, id primitive.ObjectID, update bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	SetCount(ctx context.Context, id primitive.ObjectID, count int64) error
}

type categoryRepoImpl struct {
	col *mongo.Collection
}

func NewCategoryRepo(db *mongo.Database) CategoryRepo {
	return &categoryRepoImpl{
		col: db.Collection("categories"),
	}
}

func (s *categoryRepoImpl) ListAll(ctx context.Context) ([]*model.Category, error) {
	cursor, err := s.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var categories []*model.Category
	if err = cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *categoryRepoImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Category, error) {
	var category model.Category
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (s *categoryRepoImpl) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	var category model.Category
	err := s.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (s *categoryRepoImpl) SlugExists(ctx context.Context, slug string, exclude *primitive.ObjectID) (bool, error) {
	filter := bson.M{"slug": slug}
	if exclude != nil {
		filter["_id"] = bson.M{"$ne": *exclude}
	}
	count, err := s.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	return count > 0, err
}

func (s *categoryRepoImpl) Create(ctx context.Context, category *model.Category) error {
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now
	result, err := s.col.InsertOne(ctx, category)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		category.ID = oid
	}
	return nil
}

func (s *categoryRepoImpl) Update(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	update["updatedAt"] = time.Now()
	_, err := s.col.UpdateByID(ctx, id, bson.M{"$set": update})
	return err
}

func (s *categoryRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *categoryRepoImpl) SetCount(ctx context.Context, id primitive.ObjectID, count int64) error {
	_, err := s.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"count": count}})
	return err
}

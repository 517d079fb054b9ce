package repository

import (
	"Wildsalt/internal/model"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReactionRepo interface {
	Insert(ctx context.Context, reaction *model.Reaction) error
	// CountsByEmoji 按表情聚合该文章的反应数
	CountsByEmoji(ctx context.Context, articleID primitive.ObjectID) ([]model.ReactionCount, error)
	CountByArticle(ctx context.Context, articleID primitive.ObjectID) (int64, error)
	DeleteByArticle(ctx context.Context, articleID primitive.ObjectID) error
}

type reactionRepoImpl struct {
	col *mongo.Collection
}

func NewReactionRepo(db *mongo.Database) ReactionRepo {
	return &reactionRepoImpl{
		col: db.Collection("reactions"),
	}
}

func (s *reactionRepoImpl) Insert(ctx context.Context, reaction *model.Reaction) error {
	now := time.Now()
	reaction.CreatedAt = now
	reaction.UpdatedAt = now
	result, err := s.col.InsertOne(ctx, reaction)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		reaction.ID = oid
	}
	return nil
}

func (s *reactionRepoImpl) CountsByEmoji(ctx context.Context, articleID primitive.ObjectID) ([]model.ReactionCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"articleId": articleID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$emoji",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	counts := make([]model.ReactionCount, 0)
	if err = cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (s *reactionRepoImpl) CountByArticle(ctx context.Context, articleID primitive.ObjectID) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"articleId": articleID})
}

func (s *reactionRepoImpl) DeleteByArticle(ctx context.Context, articleID primitive.ObjectID) error {
	_, err := s.col.DeleteMany(ctx, bson.M{"articleId": articleID})
	return err
}

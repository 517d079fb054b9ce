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

// DeviceStat 按设备类型聚合的访问计数
type DeviceStat struct {
	DeviceType string `bson:"_id" json:"deviceType"`
	Count      int64  `bson:"count" json:"count"`
}

type ViewRepo interface {
	Create(ctx context.Context, view *model.PageView) error
	// HasRecent 判断同一 IP 在 since 之后是否已访问过该文章
	HasRecent(ctx context.Context, articleID primitive.ObjectID, ip string, since time.Time) (bool, error)
	Count(ctx context.Context, articleID primitive.ObjectID, since *time.Time) (int64, error)
	UniqueVisitors(ctx context.Context, articleID primitive.ObjectID, since *time.Time) (int64, error)
	DeviceStats(ctx context.Context, articleID primitive.ObjectID, since *time.Time) ([]DeviceStat, error)
	Latest(ctx context.Context, articleID primitive.ObjectID) (*model.PageView, error)
	DeleteByArticle(ctx context.Context, articleID primitive.ObjectID) error
}

type viewRepoImpl struct {
	col *mongo.Collection
}

func NewViewRepo(db *mongo.Database) ViewRepo {
	return &viewRepoImpl{
		col: db.Collection("page_views"),
	}
}

func (s *viewRepoImpl) Create(ctx context.Context, view *model.PageView) error {
	view.CreatedAt = time.Now()
	result, err := s.col.InsertOne(ctx, view)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		view.ID = oid
	}
	return nil
}

func (s *viewRepoImpl) HasRecent(ctx context.Context, articleID primitive.ObjectID, ip string, since time.Time) (bool, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{
		"articleId": articleID,
		"ip":        ip,
		"createdAt": bson.M{"$gte": since},
	}, options.Count().SetLimit(1))
	return count > 0, err
}

func timeFilter(articleID primitive.ObjectID, since *time.Time) bson.M {
	filter := bson.M{"articleId": articleID}
	if since != nil {
		filter["createdAt"] = bson.M{"$gte": *since}
	}
	return filter
}

func (s *viewRepoImpl) Count(ctx context.Context, articleID primitive.ObjectID, since *time.Time) (int64, error) {
	return s.col.CountDocuments(ctx, timeFilter(articleID, since))
}

func (s *viewRepoImpl) UniqueVisitors(ctx context.Context, articleID primitive.ObjectID, since *time.Time) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: timeFilter(articleID, since)}},
		{{Key: "$group", Value: bson.M{"_id": "$ip"}}},
		{{Key: "$count", Value: "total"}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

func (s *viewRepoImpl) DeviceStats(ctx context.Context, articleID primitive.ObjectID, since *time.Time) ([]DeviceStat, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: timeFilter(articleID, since)}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$deviceType",
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

	stats := make([]DeviceStat, 0)
	if err = cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *viewRepoImpl) Latest(ctx context.Context, articleID primitive.ObjectID) (*model.PageView, error) {
	var view model.PageView
	err := s.col.FindOne(ctx,
		bson.M{"articleId": articleID},
		options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	).Decode(&view)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &view, nil
}

func (s *viewRepoImpl) DeleteByArticle(ctx context.Context, articleID primitive.ObjectID) error {
	_, err := s.col.DeleteMany(ctx, bson.M{"articleId": articleID})
	return err
}

package repository

import (
	"Wildsalt/internal/model"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SettingRepo interface {
	ListAll(ctx context.Context) ([]*model.Setting, error)
	ListByGroup(ctx context.Context, group string) ([]*model.Setting, error)
	// Upsert 按 key 写入，不存在则创建
	Upsert(ctx context.Context, key, value, group string) error
}

type settingRepoImpl struct {
	col *mongo.Collection
}

func NewSettingRepo(db *mongo.Database) SettingRepo {
	return &settingRepoImpl{
		col: db.Collection("settings"),
	}
}

func (s *settingRepoImpl) list(ctx context.Context, filter bson.M) ([]*model.Setting, error) {
	cursor, err := s.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "key", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var settings []*model.Setting
	if err = cursor.All(ctx, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *settingRepoImpl) ListAll(ctx context.Context) ([]*model.Setting, error) {
	return s.list(ctx, bson.M{})
}

func (s *settingRepoImpl) ListByGroup(ctx context.Context, group string) ([]*model.Setting, error) {
	return s.list(ctx, bson.M{"group": group})
}

func (s *settingRepoImpl) Upsert(ctx context.Context, key, value, group string) error {
	now := time.Now()
	_, err := s.col.UpdateOne(ctx,
		bson.M{"key": key},
		bson.M{
			"$set": bson.M{
				"value":     value,
				"group":     group,
				"updatedAt": now,
			},
			"$setOnInsert": bson.M{"createdAt": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

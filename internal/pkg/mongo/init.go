package mongo

import (
	"Wildsalt/internal/api/config"
	"Wildsalt/internal/pkg/logger"
	"context"
	log "log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InitMongo 建立连接并返回 Database 引用，同时初始化索引
func InitMongo(cfg config.MongoConfig) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// 建立连接
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URL).
		SetMonitor(logger.NewMongoMonitor()),
	)
	if err != nil {
		return nil, err
	}

	// 检查连通性
	if err = client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(cfg.Database)

	if err = ensureIndexes(ctx, db); err != nil {
		return nil, err
	}

	log.Info("MongoDB initialized successfully", "db", cfg.Database)
	return db, nil
}

// ensureIndexes 保证各集合的查询索引存在
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	articleIdx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "publishedAt", Value: -1}}},
		{Keys: bson.D{{Key: "categories", Value: 1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}
	if _, err := db.Collection("articles").Indexes().CreateMany(ctx, articleIdx); err != nil {
		return err
	}

	viewIdx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "articleId", Value: 1}, {Key: "createdAt", Value: -1}}},
		// 防重复计数查询: (articleId, ip, createdAt)
		{Keys: bson.D{{Key: "ip", Value: 1}, {Key: "articleId", Value: 1}, {Key: "createdAt", Value: 1}}},
	}
	if _, err := db.Collection("page_views").Indexes().CreateMany(ctx, viewIdx); err != nil {
		return err
	}

	// reactions 不对 sessionId 建唯一索引：重复提交是刻意允许的。
	// 历史部署可能遗留 (articleId, userId) 唯一索引，插入层做了一次性重试兜底。
	reactionIdx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "articleId", Value: 1}}},
		{Keys: bson.D{{Key: "emoji", Value: 1}}},
	}
	if _, err := db.Collection("reactions").Indexes().CreateMany(ctx, reactionIdx); err != nil {
		return err
	}

	commentIdx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "articleId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	if _, err := db.Collection("comments").Indexes().CreateMany(ctx, commentIdx); err != nil {
		return err
	}

	userIdx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "role", Value: 1}}},
	}
	if _, err := db.Collection("users").Indexes().CreateMany(ctx, userIdx); err != nil {
		return err
	}

	categoryIdx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "order", Value: 1}}},
	}
	if _, err := db.Collection("categories").Indexes().CreateMany(ctx, categoryIdx); err != nil {
		return err
	}

	settingIdx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "key", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := db.Collection("settings").Indexes().CreateMany(ctx, settingIdx); err != nil {
		return err
	}

	return nil
}

package repository

import (
	"Wildsalt/internal/model"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepo interface {
	// FindAdminByUsername 仅命中 admin 角色的账号，登录接口不暴露其它角色
	FindAdminByUsername(ctx context.Context, username string) (*model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	UpdateLastLogin(ctx context.Context, id primitive.ObjectID) error
	UpdateCredentials(ctx context.Context, id primitive.ObjectID, update bson.M) error
}

type userRepoImpl struct {
	col *mongo.Collection
}

func NewUserRepo(db *mongo.Database) UserRepo {
	return &userRepoImpl{
		col: db.Collection("users"),
	}
}

func (s *userRepoImpl) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var user model.User
	err := s.col.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *userRepoImpl) FindAdminByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.findOne(ctx, bson.M{
		"username": username,
		"role":     model.RoleAdmin,
	})
}

func (s *userRepoImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *userRepoImpl) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.findOne(ctx, bson.M{"username": username})
}

func (s *userRepoImpl) UpdateLastLogin(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"lastLogin": time.Now()}})
	return err
}

func (s *userRepoImpl) UpdateCredentials(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	update["updatedAt"] = time.Now()
	_, err := s.col.UpdateByID(ctx, id, bson.M{"$set": update})
	return err
}

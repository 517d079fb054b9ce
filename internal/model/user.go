package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin      = "admin"
	RoleEditor     = "editor"
	RoleAuthor     = "author"
	RoleSubscriber = "subscriber"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Salt         string             `bson:"salt" json:"-"`
	Nickname     string             `bson:"nickname,omitempty" json:"nickname"`
	Avatar       string             `bson:"avatar,omitempty" json:"avatar"`
	Bio          string             `bson:"bio,omitempty" json:"bio"`
	Role         string             `bson:"role" json:"role"`
	Status       string             `bson:"status" json:"status"`
	LastLogin    *time.Time         `bson:"lastLogin,omitempty" json:"lastLogin"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

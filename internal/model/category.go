package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Name        string              `bson:"name" json:"name"`
	Slug        string              `bson:"slug" json:"slug"`
	Description string              `bson:"description,omitempty" json:"description"`
	ParentID    *primitive.ObjectID `bson:"parentId,omitempty" json:"parentId"`
	Order       int                 `bson:"order" json:"order"`
	Count       int64               `bson:"count" json:"count"` // 文章数量
	Image       string              `bson:"image,omitempty" json:"image"`
	IsFeatured  bool                `bson:"isFeatured" json:"isFeatured"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}

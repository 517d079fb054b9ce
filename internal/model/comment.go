package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CommentStatusPending  = "pending"
	CommentStatusApproved = "approved"
	CommentStatusRejected = "rejected"
)

// CommentAuthor 评论作者（匿名访客信息，非注册用户）
type CommentAuthor struct {
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Website string `bson:"website,omitempty" json:"website"`
	Avatar  string `bson:"avatar,omitempty" json:"avatar"`
}

type Comment struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Content   string              `bson:"content" json:"content"`
	ArticleID primitive.ObjectID  `bson:"articleId" json:"articleId"`
	Author    CommentAuthor       `bson:"author" json:"author"`
	ParentID  *primitive.ObjectID `bson:"parentId,omitempty" json:"parentId"`
	Status    string              `bson:"status" json:"status"`
	IP        string              `bson:"ip,omitempty" json:"-"`
	UserAgent string              `bson:"userAgent,omitempty" json:"-"`
	Likes     int64               `bson:"likes" json:"likes"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt" json:"updatedAt"`
}

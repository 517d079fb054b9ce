package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ArticleStatusDraft     = "draft"
	ArticleStatusPublished = "published"
)

const (
	CoverTypeImage   = "image"
	CoverTypeGallery = "gallery"
	CoverTypeVideo   = "video"
)

// Article 文章主体，views/likes/comments 为冗余计数，
// 以事件集合为准，允许短暂偏差，由对账任务收敛
type Article struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Title        string               `bson:"title" json:"title"`
	Content      string               `bson:"content" json:"content"`
	Summary      string               `bson:"summary" json:"summary"`
	Slug         string               `bson:"slug" json:"slug"`
	CoverImage   string               `bson:"coverImage,omitempty" json:"coverImage"`
	CoverType    string               `bson:"coverType,omitempty" json:"coverType"`
	CoverGallery []string             `bson:"coverGallery,omitempty" json:"coverGallery"`
	CoverVideo   string               `bson:"coverVideo,omitempty" json:"coverVideo"`
	Categories   []primitive.ObjectID `bson:"categories" json:"categories"`
	Tags         []string             `bson:"tags" json:"tags"`
	Author       primitive.ObjectID   `bson:"author,omitempty" json:"author"`
	AuthorName   string               `bson:"authorName,omitempty" json:"authorName"`
	Status       string               `bson:"status" json:"status"`
	Views        int64                `bson:"views" json:"views"`
	Likes        int64                `bson:"likes" json:"likes"`
	Comments     int64                `bson:"comments" json:"comments"`
	IsFeatured   bool                 `bson:"isFeatured" json:"isFeatured"`
	IsSlider     bool                 `bson:"isSlider" json:"isSlider"`
	PublishedAt  *time.Time           `bson:"publishedAt,omitempty" json:"publishedAt"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MediaTypeImage    = "image"
	MediaTypeVideo    = "video"
	MediaTypeDocument = "document"
)

type Media struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Type         string             `bson:"type" json:"type"`
	Name         string             `bson:"name" json:"name"`
	URL          string             `bson:"url" json:"url"`
	ThumbnailURL string             `bson:"thumbnailUrl,omitempty" json:"thumbnailUrl"`
	ObjectName   string             `bson:"objectName" json:"-"`
	Size         int64              `bson:"size" json:"size"`
	Width        int                `bson:"width" json:"width"`
	Height       int                `bson:"height" json:"height"`
	MimeType     string             `bson:"mimeType" json:"mimeType"`
	Usage        string             `bson:"usage,omitempty" json:"usage"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

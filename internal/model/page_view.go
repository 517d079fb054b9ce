package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceUnknown = "unknown"
)

// PageView 访问事件，只追加不修改
type PageView struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ArticleID  primitive.ObjectID `bson:"articleId" json:"articleId"`
	IP         string             `bson:"ip" json:"ip"`
	UserAgent  string             `bson:"userAgent,omitempty" json:"userAgent"`
	Referer    string             `bson:"referer,omitempty" json:"referer"`
	DeviceType string             `bson:"deviceType" json:"deviceType"`
	SessionID  string             `bson:"sessionId,omitempty" json:"sessionId"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

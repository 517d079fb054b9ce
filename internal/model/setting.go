package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 标准设置键名
const (
	SettingSiteName        = "siteName"
	SettingSiteDescription = "siteDescription"
	SettingSiteKeywords    = "siteKeywords"
	SettingLogo            = "logo"
	SettingFavicon         = "favicon"
	SettingCopyright       = "copyright"
	SettingSocials         = "socials"
	SettingAnalyticsType   = "analyticsType"
	SettingAnalyticsCode   = "analyticsCode"
)

type Setting struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Key       string             `bson:"key" json:"key"`
	Value     string             `bson:"value" json:"value"`
	Group     string             `bson:"group,omitempty" json:"group"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValidReactions 反应类型的封闭集合
var ValidReactions = []string{"like", "haha", "love", "sad", "angry"}

// IsValidReaction 校验反应类型是否在集合内
func IsValidReaction(emoji string) bool {
	for _, r := range ValidReactions {
		if r == emoji {
			return true
		}
	}
	return false
}

// Reaction 反应事件，只追加不修改
// 同一访客允许重复反应：每次提交都生成新的 sessionId（刻意设计，非幂等）
type Reaction struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ArticleID primitive.ObjectID `bson:"articleId" json:"articleId"`
	Emoji     string             `bson:"emoji" json:"emoji"`
	UserID    string             `bson:"userId" json:"userId"`
	UserIP    string             `bson:"userIp,omitempty" json:"userIp"`
	SessionID string             `bson:"sessionId" json:"sessionId"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ReactionCount 按表情聚合出的计数
type ReactionCount struct {
	Emoji string `bson:"_id" json:"emoji"`
	Count int64  `bson:"count" json:"count"`
}

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SearchLog 搜索日志（search_logs 集合，只追加）
type SearchLog struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID int64              `bson:"user_id" json:"-"`
	Q      string             `bson:"q" json:"q"`
	TS     time.Time          `bson:"ts" json:"ts"`
}

// TrendingQuery 热搜关键词
type TrendingQuery struct {
	Q     string `bson:"_id" json:"q"`
	Count int    `bson:"count" json:"count"`
}

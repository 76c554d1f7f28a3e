package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review 用户影评（reviews 集合，按 tconst + user_id 唯一）
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TConst    string             `bson:"tconst" json:"tconst"`
	UserID    int64              `bson:"user_id" json:"user_id"`
	Username  string             `bson:"username" json:"username"`
	Stars     int                `bson:"stars" json:"stars"`
	Text      string             `bson:"text" json:"text"`
	Spoiler   bool               `bson:"spoiler" json:"spoiler"`
	Tags      []string           `bson:"tags" json:"tags"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// ReviewStat 按影片聚合的用户评分
type ReviewStat struct {
	TConst      string  `bson:"_id"`
	AvgStars    float64 `bson:"avgStars"`
	ReviewCount int     `bson:"reviewCount"`
}

// UserRatedTitle 用户评分榜条目，系统评分与用户评分分开展示
type UserRatedTitle struct {
	TConst       string   `json:"tconst"`
	Title        string   `json:"title"`
	Year         *int     `json:"year"`
	Genres       []string `json:"genres"`
	SystemRating *float64 `json:"systemRating"`
	NumVotes     *int     `json:"numVotes"`
	UserRating   float64  `json:"userRating"`
	ReviewCount  int      `json:"reviewCount"`
}

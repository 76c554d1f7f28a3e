package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Watchlist 每个用户一个片单文档
type Watchlist struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    int64              `bson:"user_id"`
	CreatedAt time.Time          `bson:"created_at"`
	Items     []WatchlistItem    `bson:"items"`
}

// WatchlistItem 片单条目
type WatchlistItem struct {
	TConst  string    `bson:"tconst"`
	AddedAt time.Time `bson:"added_at"`
	Note    *string   `bson:"note"`
}

// WatchlistEntry 与目录关联后的片单条目
type WatchlistEntry struct {
	TConst  string    `json:"tconst"`
	Title   string    `json:"title"`
	Year    *int      `json:"year"`
	Genres  []string  `json:"genres"`
	Rating  *float64  `json:"rating"`
	Note    *string   `json:"note"`
	AddedAt time.Time `json:"added_at"`
}

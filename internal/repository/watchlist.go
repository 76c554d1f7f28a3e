package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Forfeit-15/INF2003/internal/model"
)

type WatchlistRepository struct {
	coll *mongo.Collection
}

func NewWatchlistRepository(db *mongo.Database) *WatchlistRepository {
	return &WatchlistRepository{coll: db.Collection(watchlistsCollection)}
}

// Get 获取用户片单，没有文档时返回 nil
func (r *WatchlistRepository) Get(ctx context.Context, userID int64) (*model.Watchlist, error) {
	var wl model.Watchlist
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&wl)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wl, nil
}

// Add 添加条目；片单不存在时先创建，同一 tconst 只保留第一次添加
func (r *WatchlistRepository) Add(ctx context.Context, userID int64, item model.WatchlistItem) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$setOnInsert": bson.M{
			"user_id":    userID,
			"created_at": time.Now().UTC(),
			"items":      bson.A{},
		}},
		options.Update().SetUpsert(true),
	)
	// 并发首次添加时唯一索引会拒绝其中一个插入，此时文档已存在
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return err
	}

	_, err = r.coll.UpdateOne(ctx,
		bson.M{"user_id": userID, "items.tconst": bson.M{"$ne": item.TConst}},
		bson.M{"$push": bson.M{"items": item}},
	)
	return err
}

// Remove 移除条目，不存在时不报错
func (r *WatchlistRepository) Remove(ctx context.Context, userID int64, tconst string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$pull": bson.M{"items": bson.M{"tconst": tconst}}},
	)
	return err
}

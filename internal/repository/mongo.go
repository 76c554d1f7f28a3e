package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Forfeit-15/INF2003/internal/config"
)

const (
	reviewsCollection    = "reviews"
	watchlistsCollection = "watchlists"
	searchLogsCollection = "search_logs"
)

// InitMongo 连接文档数据库并确认可用
func InitMongo(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerSelectionTimeout(10*time.Second))
	if err != nil {
		return nil, fmt.Errorf("无法连接 MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("MongoDB ping 失败: %w", err)
	}

	return client, nil
}

// EnsureIndexes 创建集合索引；ttlDays > 0 时搜索日志按 ts 自动过期，否则移除过期索引
func EnsureIndexes(ctx context.Context, db *mongo.Database, ttlDays int) error {
	specs := map[string][]mongo.IndexModel{
		reviewsCollection: {
			{
				Keys:    bson.D{{Key: "tconst", Value: 1}, {Key: "user_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		watchlistsCollection: {
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		searchLogsCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "ts", Value: -1}}},
		},
	}

	for name, models := range specs {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}

	if err := syncSearchLogTTL(ctx, db, ttlDays); err != nil {
		return fmt.Errorf("sync ttl index on %s: %w", searchLogsCollection, err)
	}
	return nil
}

// indexInfo listIndexes 返回的索引描述
type indexInfo struct {
	Name               string `bson:"name"`
	Key                bson.D `bson:"key"`
	ExpireAfterSeconds *int64 `bson:"expireAfterSeconds"`
}

// findTSIndex 查找单字段 {ts: 1} 索引，不存在返回 nil
func findTSIndex(ctx context.Context, coll *mongo.Collection) (*indexInfo, error) {
	cursor, err := coll.Indexes().List(ctx)
	if err != nil {
		return nil, err
	}

	var indexes []indexInfo
	if err := cursor.All(ctx, &indexes); err != nil {
		return nil, err
	}
	for i := range indexes {
		if key := indexes[i].Key; len(key) == 1 && key[0].Key == "ts" {
			return &indexes[i], nil
		}
	}
	return nil, nil
}

// syncSearchLogTTL 让 ts 上的过期索引与配置一致：
// 关闭时删除，过期时间变化时用 collMod 原地修改，非过期索引先删后建
func syncSearchLogTTL(ctx context.Context, db *mongo.Database, ttlDays int) error {
	coll := db.Collection(searchLogsCollection)
	existing, err := findTSIndex(ctx, coll)
	if err != nil {
		return err
	}

	if ttlDays <= 0 {
		if existing == nil {
			return nil
		}
		_, err := coll.Indexes().DropOne(ctx, existing.Name)
		return err
	}

	seconds := int64(ttlDays) * 24 * 60 * 60
	if existing != nil {
		if existing.ExpireAfterSeconds != nil {
			if *existing.ExpireAfterSeconds == seconds {
				return nil
			}
			return db.RunCommand(ctx, bson.D{
				{Key: "collMod", Value: searchLogsCollection},
				{Key: "index", Value: bson.D{
					{Key: "name", Value: existing.Name},
					{Key: "expireAfterSeconds", Value: seconds},
				}},
			}).Err()
		}
		if _, err := coll.Indexes().DropOne(ctx, existing.Name); err != nil {
			return err
		}
	}

	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "ts", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(seconds)),
	})
	return err
}

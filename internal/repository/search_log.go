package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Forfeit-15/INF2003/internal/model"
)

type SearchLogRepository struct {
	coll *mongo.Collection
}

func NewSearchLogRepository(db *mongo.Database) *SearchLogRepository {
	return &SearchLogRepository{coll: db.Collection(searchLogsCollection)}
}

// Log 记录搜索日志
func (r *SearchLogRepository) Log(ctx context.Context, userID int64, q string, ts time.Time) error {
	_, err := r.coll.InsertOne(ctx, &model.SearchLog{
		UserID: userID,
		Q:      q,
		TS:     ts,
	})
	return err
}

// ListByUser 用户最近的搜索记录，按时间倒序
func (r *SearchLogRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]*model.SearchLog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "ts", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}

	logs := []*model.SearchLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// Trending 热搜关键词：按原文分组计数，次数相同按关键词排序
func (r *SearchLogRepository) Trending(ctx context.Context, minCount, limit int) ([]*model.TrendingQuery, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$q"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$match", Value: bson.D{{Key: "count", Value: bson.D{{Key: "$gte", Value: minCount}}}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	queries := []*model.TrendingQuery{}
	if err := cursor.All(ctx, &queries); err != nil {
		return nil, err
	}
	return queries, nil
}

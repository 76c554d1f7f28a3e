package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Forfeit-15/INF2003/internal/model"
)

type ReviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{coll: db.Collection(reviewsCollection)}
}

// Upsert 按 (tconst, user_id) 插入或覆盖影评，created_at 只在首次写入
func (r *ReviewRepository) Upsert(ctx context.Context, review *model.Review) (*model.Review, error) {
	now := time.Now().UTC()
	tags := review.Tags
	if tags == nil {
		tags = []string{}
	}

	filter := bson.M{"tconst": review.TConst, "user_id": review.UserID}
	update := bson.M{
		"$set": bson.M{
			"username":   review.Username,
			"stars":      review.Stars,
			"text":       review.Text,
			"spoiler":    review.Spoiler,
			"tags":       tags,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stored model.Review
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// Delete 删除某用户对某影片的影评，不存在时不报错
func (r *ReviewRepository) Delete(ctx context.Context, tconst string, userID int64) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"tconst": tconst, "user_id": userID})
	return err
}

// ListByTitle 某影片的全部影评（自然顺序）
func (r *ReviewRepository) ListByTitle(ctx context.Context, tconst string) ([]*model.Review, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"tconst": tconst})
	if err != nil {
		return nil, err
	}

	reviews := []*model.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// TopRated 按影片聚合平均星级，评论数不足 minReviews 的不参与排名
func (r *ReviewRepository) TopRated(ctx context.Context, minReviews, limit int) ([]*model.ReviewStat, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$tconst"},
			{Key: "avgStars", Value: bson.D{{Key: "$avg", Value: "$stars"}}},
			{Key: "reviewCount", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$match", Value: bson.D{{Key: "reviewCount", Value: bson.D{{Key: "$gte", Value: minReviews}}}}}},
		{{Key: "$sort", Value: bson.D{{Key: "avgStars", Value: -1}, {Key: "reviewCount", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	stats := []*model.ReviewStat{}
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

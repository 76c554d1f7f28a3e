//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Forfeit-15/INF2003/internal/model"
	"github.com/Forfeit-15/INF2003/internal/testutil"
)

func TestReviewRepositoryIntegration(t *testing.T) {
	mdb := testutil.NewMongoDatabase(t)
	ctx := context.Background()
	require.NoError(t, EnsureIndexes(ctx, mdb, 30))
	repo := NewReviewRepository(mdb)

	first, err := repo.Upsert(ctx, &model.Review{TConst: "tt0000001", UserID: 1, Username: "alice", Stars: 4, Text: "good"})
	require.NoError(t, err)
	assert.Equal(t, []string{}, first.Tags)

	time.Sleep(10 * time.Millisecond)
	second, err := repo.Upsert(ctx, &model.Review{TConst: "tt0000001", UserID: 1, Username: "alice", Stars: 5, Text: "great", Tags: []string{"rewatch"}})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Stars)
	assert.True(t, first.CreatedAt.Equal(second.CreatedAt))
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))

	_, err = repo.Upsert(ctx, &model.Review{TConst: "tt0000001", UserID: 2, Username: "bob", Stars: 3})
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, &model.Review{TConst: "tt0000002", UserID: 1, Username: "alice", Stars: 2})
	require.NoError(t, err)

	reviews, err := repo.ListByTitle(ctx, "tt0000001")
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	stats, err := repo.TopRated(ctx, 2, 10)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "tt0000001", stats[0].TConst)
	assert.InDelta(t, 4.0, stats[0].AvgStars, 1e-9)
	assert.Equal(t, 2, stats[0].ReviewCount)

	require.NoError(t, repo.Delete(ctx, "tt0000001", 2))
	require.NoError(t, repo.Delete(ctx, "tt0000001", 2))
	reviews, err = repo.ListByTitle(ctx, "tt0000001")
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}

func TestWatchlistRepositoryIntegration(t *testing.T) {
	mdb := testutil.NewMongoDatabase(t)
	ctx := context.Background()
	require.NoError(t, EnsureIndexes(ctx, mdb, 0))
	repo := NewWatchlistRepository(mdb)

	none, err := repo.Get(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, none)

	note := "weekend"
	require.NoError(t, repo.Add(ctx, 7, model.WatchlistItem{TConst: "tt0000002", AddedAt: time.Now().UTC(), Note: &note}))
	require.NoError(t, repo.Add(ctx, 7, model.WatchlistItem{TConst: "tt0000001", AddedAt: time.Now().UTC()}))
	require.NoError(t, repo.Add(ctx, 7, model.WatchlistItem{TConst: "tt0000002", AddedAt: time.Now().UTC()}))

	wl, err := repo.Get(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, wl)
	require.Len(t, wl.Items, 2)
	assert.Equal(t, "tt0000002", wl.Items[0].TConst)
	assert.Equal(t, "weekend", *wl.Items[0].Note)
	assert.Nil(t, wl.Items[1].Note)
	assert.False(t, wl.CreatedAt.IsZero())

	require.NoError(t, repo.Remove(ctx, 7, "tt0000002"))
	require.NoError(t, repo.Remove(ctx, 7, "tt0000002"))
	require.NoError(t, repo.Remove(ctx, 8, "tt0000002"))

	wl, err = repo.Get(ctx, 7)
	require.NoError(t, err)
	require.Len(t, wl.Items, 1)
	assert.Equal(t, "tt0000001", wl.Items[0].TConst)
}

func TestSearchLogRepositoryIntegration(t *testing.T) {
	mdb := testutil.NewMongoDatabase(t)
	ctx := context.Background()
	require.NoError(t, EnsureIndexes(ctx, mdb, 30))
	repo := NewSearchLogRepository(mdb)

	base := time.Now().UTC().Truncate(time.Millisecond)
	for i, q := range []string{"alpha", "beta", "alpha", "Alpha", "beta", "alpha"} {
		require.NoError(t, repo.Log(ctx, 1, q, base.Add(time.Duration(i)*time.Second)))
	}
	require.NoError(t, repo.Log(ctx, 2, "gamma", base))

	logs, err := repo.ListByUser(ctx, 1, 200)
	require.NoError(t, err)
	require.Len(t, logs, 6)
	assert.Equal(t, "alpha", logs[0].Q)
	assert.True(t, logs[0].TS.After(logs[1].TS))

	trending, err := repo.Trending(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, trending, 4)
	assert.Equal(t, model.TrendingQuery{Q: "alpha", Count: 3}, *trending[0])
	assert.Equal(t, model.TrendingQuery{Q: "beta", Count: 2}, *trending[1])
	assert.Equal(t, "Alpha", trending[2].Q)
	assert.Equal(t, "gamma", trending[3].Q)

	trending, err = repo.Trending(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, trending, 1)
	assert.Equal(t, "alpha", trending[0].Q)
}

func TestEnsureIndexesFollowsTTLChanges(t *testing.T) {
	mdb := testutil.NewMongoDatabase(t)
	ctx := context.Background()
	coll := mdb.Collection(searchLogsCollection)

	require.NoError(t, EnsureIndexes(ctx, mdb, 30))
	idx, err := findTSIndex(ctx, coll)
	require.NoError(t, err)
	require.NotNil(t, idx)
	require.NotNil(t, idx.ExpireAfterSeconds)
	assert.EqualValues(t, 30*24*60*60, *idx.ExpireAfterSeconds)

	// 重启时缩短保留期
	require.NoError(t, EnsureIndexes(ctx, mdb, 7))
	idx, err = findTSIndex(ctx, coll)
	require.NoError(t, err)
	require.NotNil(t, idx)
	require.NotNil(t, idx.ExpireAfterSeconds)
	assert.EqualValues(t, 7*24*60*60, *idx.ExpireAfterSeconds)

	// 重复执行不报错
	require.NoError(t, EnsureIndexes(ctx, mdb, 7))

	// 关闭保留期后过期索引被移除
	require.NoError(t, EnsureIndexes(ctx, mdb, 0))
	idx, err = findTSIndex(ctx, coll)
	require.NoError(t, err)
	assert.Nil(t, idx)
	require.NoError(t, EnsureIndexes(ctx, mdb, 0))

	// 已有非过期的 {ts: 1} 索引时先删后建
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "ts", Value: 1}}})
	require.NoError(t, err)
	require.NoError(t, EnsureIndexes(ctx, mdb, 1))
	idx, err = findTSIndex(ctx, coll)
	require.NoError(t, err)
	require.NotNil(t, idx)
	require.NotNil(t, idx.ExpireAfterSeconds)
	assert.EqualValues(t, 24*60*60, *idx.ExpireAfterSeconds)
}

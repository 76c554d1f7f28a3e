package service

import (
	"context"
	"fmt"

	"github.com/Forfeit-15/INF2003/internal/model"
)

// 排行榜参数默认值与上限
const (
	DefaultTrendingLimit   = 10
	DefaultTrendingMin     = 1
	DefaultTopRatedLimit   = 10
	DefaultTopRatedMinRevs = 2
	MaxRankingLimit        = 100
)

// RankingService 跨数据源的聚合榜单
type RankingService struct {
	reviews ReviewStore
	logs    SearchLogStore
	titles  TitleStore
}

// NewRankingService 创建榜单服务
func NewRankingService(reviews ReviewStore, logs SearchLogStore, titles TitleStore) *RankingService {
	return &RankingService{reviews: reviews, logs: logs, titles: titles}
}

// Trending 热搜关键词
func (s *RankingService) Trending(ctx context.Context, limit, minCount int) ([]*model.TrendingQuery, error) {
	queries, err := s.logs.Trending(ctx, minCount, clampLimit(limit, DefaultTrendingLimit))
	if err != nil {
		return nil, fmt.Errorf("ranking: trending: %w", err)
	}
	return queries, nil
}

// TopUserRated 用户评分榜：先在文档库聚合排名，再到目录库取展示信息
func (s *RankingService) TopUserRated(ctx context.Context, limit, minReviews int) ([]*model.UserRatedTitle, error) {
	stats, err := s.reviews.TopRated(ctx, minReviews, clampLimit(limit, DefaultTopRatedLimit))
	if err != nil {
		return nil, fmt.Errorf("ranking: aggregate reviews: %w", err)
	}

	out := []*model.UserRatedTitle{}
	if len(stats) == 0 {
		return out, nil
	}

	ids := make([]string, 0, len(stats))
	for _, st := range stats {
		ids = append(ids, st.TConst)
	}
	summaries, err := s.titles.SummariesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("ranking: resolve titles: %w", err)
	}

	for _, st := range stats {
		sum, ok := summaries[st.TConst]
		if !ok {
			continue
		}
		out = append(out, &model.UserRatedTitle{
			TConst:       sum.TConst,
			Title:        sum.Title,
			Year:         sum.Year,
			Genres:       sum.Genres,
			SystemRating: sum.RatingAvg,
			NumVotes:     sum.NumVotes,
			UserRating:   st.AvgStars,
			ReviewCount:  st.ReviewCount,
		})
	}
	return out, nil
}

// clampLimit 非正数取默认值，超过 MaxRankingLimit 时截断
func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	return min(limit, MaxRankingLimit)
}

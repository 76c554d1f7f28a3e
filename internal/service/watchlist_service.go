package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Forfeit-15/INF2003/internal/apperr"
	"github.com/Forfeit-15/INF2003/internal/model"
)

// WatchlistService 用户片单
type WatchlistService struct {
	watchlists WatchlistStore
	titles     TitleStore
}

// NewWatchlistService 创建片单服务
func NewWatchlistService(watchlists WatchlistStore, titles TitleStore) *WatchlistService {
	return &WatchlistService{watchlists: watchlists, titles: titles}
}

// List 片单条目与目录信息关联，保持片单顺序，目录中不存在的条目跳过
func (s *WatchlistService) List(ctx context.Context, userID int64) ([]*model.WatchlistEntry, error) {
	entries := []*model.WatchlistEntry{}

	wl, err := s.watchlists.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("watchlist: get %d: %w", userID, err)
	}
	if wl == nil || len(wl.Items) == 0 {
		return entries, nil
	}

	ids := make([]string, 0, len(wl.Items))
	for _, it := range wl.Items {
		ids = append(ids, it.TConst)
	}

	summaries, err := s.titles.SummariesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("watchlist: resolve titles: %w", err)
	}

	for _, it := range wl.Items {
		sum, ok := summaries[it.TConst]
		if !ok {
			continue
		}
		entries = append(entries, &model.WatchlistEntry{
			TConst:  sum.TConst,
			Title:   sum.Title,
			Year:    sum.Year,
			Genres:  sum.Genres,
			Rating:  sum.RatingAvg,
			Note:    it.Note,
			AddedAt: it.AddedAt,
		})
	}
	return entries, nil
}

// Add 添加条目，重复添加同一影片不产生新条目；空白备注记为 null
func (s *WatchlistService) Add(ctx context.Context, userID int64, tconst string, note *string) error {
	tconst = strings.TrimSpace(tconst)
	if tconst == "" {
		return apperr.Validation("tconst is required")
	}

	item := model.WatchlistItem{TConst: tconst, AddedAt: time.Now().UTC()}
	if note != nil {
		if n := strings.TrimSpace(*note); n != "" {
			item.Note = &n
		}
	}

	if err := s.watchlists.Add(ctx, userID, item); err != nil {
		return fmt.Errorf("watchlist: add %s for %d: %w", tconst, userID, err)
	}
	return nil
}

// Remove 移除条目
func (s *WatchlistService) Remove(ctx context.Context, userID int64, tconst string) error {
	tconst = strings.TrimSpace(tconst)
	if tconst == "" {
		return apperr.Validation("tconst is required")
	}

	if err := s.watchlists.Remove(ctx, userID, tconst); err != nil {
		return fmt.Errorf("watchlist: remove %s for %d: %w", tconst, userID, err)
	}
	return nil
}

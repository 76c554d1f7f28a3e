package testutil

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Forfeit-15/INF2003/internal/model"
)

// ReviewStore 内存版影评存储
type ReviewStore struct {
	mu   sync.Mutex
	docs []*model.Review
	Err  error
}

func (s *ReviewStore) Upsert(_ context.Context, review *model.Review) (*model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	now := time.Now().UTC()
	for _, doc := range s.docs {
		if doc.TConst == review.TConst && doc.UserID == review.UserID {
			doc.Username = review.Username
			doc.Stars = review.Stars
			doc.Text = review.Text
			doc.Spoiler = review.Spoiler
			doc.Tags = review.Tags
			doc.UpdatedAt = now
			out := *doc
			return &out, nil
		}
	}

	doc := *review
	doc.ID = primitive.NewObjectID()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	s.docs = append(s.docs, &doc)
	out := doc
	return &out, nil
}

func (s *ReviewStore) Delete(_ context.Context, tconst string, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	s.docs = slices.DeleteFunc(s.docs, func(d *model.Review) bool {
		return d.TConst == tconst && d.UserID == userID
	})
	return nil
}

func (s *ReviewStore) ListByTitle(_ context.Context, tconst string) ([]*model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	out := []*model.Review{}
	for _, d := range s.docs {
		if d.TConst == tconst {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *ReviewStore) TopRated(_ context.Context, minReviews, limit int) ([]*model.ReviewStat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	byTitle := map[string]*model.ReviewStat{}
	sums := map[string]int{}
	for _, d := range s.docs {
		st, ok := byTitle[d.TConst]
		if !ok {
			st = &model.ReviewStat{TConst: d.TConst}
			byTitle[d.TConst] = st
		}
		st.ReviewCount++
		sums[d.TConst] += d.Stars
	}

	stats := []*model.ReviewStat{}
	for id, st := range byTitle {
		if st.ReviewCount < minReviews {
			continue
		}
		st.AvgStars = float64(sums[id]) / float64(st.ReviewCount)
		stats = append(stats, st)
	}
	slices.SortFunc(stats, func(a, b *model.ReviewStat) int {
		return cmp.Or(
			cmp.Compare(b.AvgStars, a.AvgStars),
			cmp.Compare(b.ReviewCount, a.ReviewCount),
			cmp.Compare(a.TConst, b.TConst),
		)
	})
	if len(stats) > limit {
		stats = stats[:limit]
	}
	return stats, nil
}

// WatchlistStore 内存版片单存储
type WatchlistStore struct {
	mu    sync.Mutex
	lists map[int64]*model.Watchlist
	Err   error
}

func (s *WatchlistStore) Get(_ context.Context, userID int64) (*model.Watchlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	wl, ok := s.lists[userID]
	if !ok {
		return nil, nil
	}
	cp := *wl
	cp.Items = slices.Clone(wl.Items)
	return &cp, nil
}

func (s *WatchlistStore) Add(_ context.Context, userID int64, item model.WatchlistItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	if s.lists == nil {
		s.lists = map[int64]*model.Watchlist{}
	}
	wl, ok := s.lists[userID]
	if !ok {
		wl = &model.Watchlist{ID: primitive.NewObjectID(), UserID: userID, CreatedAt: time.Now().UTC()}
		s.lists[userID] = wl
	}
	if slices.ContainsFunc(wl.Items, func(it model.WatchlistItem) bool { return it.TConst == item.TConst }) {
		return nil
	}
	wl.Items = append(wl.Items, item)
	return nil
}

func (s *WatchlistStore) Remove(_ context.Context, userID int64, tconst string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	if wl, ok := s.lists[userID]; ok {
		wl.Items = slices.DeleteFunc(wl.Items, func(it model.WatchlistItem) bool { return it.TConst == tconst })
	}
	return nil
}

// SearchLogStore 内存版搜索日志
type SearchLogStore struct {
	mu   sync.Mutex
	Logs []*model.SearchLog
	Err  error
}

func (s *SearchLogStore) Log(_ context.Context, userID int64, q string, ts time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	s.Logs = append(s.Logs, &model.SearchLog{ID: primitive.NewObjectID(), UserID: userID, Q: q, TS: ts})
	return nil
}

func (s *SearchLogStore) ListByUser(_ context.Context, userID int64, limit int) ([]*model.SearchLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	out := []*model.SearchLog{}
	for _, l := range s.Logs {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	slices.SortStableFunc(out, func(a, b *model.SearchLog) int { return b.TS.Compare(a.TS) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *SearchLogStore) Trending(_ context.Context, minCount, limit int) ([]*model.TrendingQuery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	counts := map[string]int{}
	for _, l := range s.Logs {
		counts[l.Q]++
	}

	out := []*model.TrendingQuery{}
	for q, n := range counts {
		if n >= minCount {
			out = append(out, &model.TrendingQuery{Q: q, Count: n})
		}
	}
	slices.SortFunc(out, func(a, b *model.TrendingQuery) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), cmp.Compare(a.Q, b.Q))
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Forfeit-15/INF2003/internal/repository"
	"github.com/Forfeit-15/INF2003/internal/service"
	"github.com/Forfeit-15/INF2003/internal/testutil"
)

func newWatchlists(t *testing.T) *service.WatchlistService {
	t.Helper()
	titles := repository.NewTitleRepository(testutil.NewCatalogDB(t))
	return service.NewWatchlistService(&testutil.WatchlistStore{}, titles)
}

func TestWatchlistKeepsOrderAndDropsUnknownTitles(t *testing.T) {
	svc := newWatchlists(t)
	ctx := context.Background()

	empty, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	require.NoError(t, svc.Add(ctx, 1, "tt0000005", ptr("friday")))
	require.NoError(t, svc.Add(ctx, 1, "tt9999999", nil))
	require.NoError(t, svc.Add(ctx, 1, " tt0000001 ", ptr("   ")))
	require.NoError(t, svc.Add(ctx, 1, "tt0000005", ptr("again")))

	entries, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "tt0000005", entries[0].TConst)
	assert.Equal(t, "Epsilon", entries[0].Title)
	assert.Equal(t, "friday", *entries[0].Note)
	assert.InDelta(t, 9.0, *entries[0].Rating, 1e-9)
	assert.False(t, entries[0].AddedAt.IsZero())

	assert.Equal(t, "tt0000001", entries[1].TConst)
	assert.Equal(t, []string{"Action", "Drama"}, entries[1].Genres)
	assert.Nil(t, entries[1].Note)
}

func TestWatchlistRemove(t *testing.T) {
	svc := newWatchlists(t)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, 1, "tt0000001", nil))
	require.NoError(t, svc.Remove(ctx, 1, "tt0000001"))
	require.NoError(t, svc.Remove(ctx, 1, "tt0000001"))
	require.NoError(t, svc.Remove(ctx, 2, "tt0000001"))

	entries, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, entries)

	requireAppError(t, svc.Add(ctx, 1, " ", nil), http.StatusBadRequest, "tconst is required")
	requireAppError(t, svc.Remove(ctx, 1, ""), http.StatusBadRequest, "tconst is required")
}

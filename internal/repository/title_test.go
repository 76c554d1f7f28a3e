package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Forfeit-15/INF2003/internal/model"
	"github.com/Forfeit-15/INF2003/internal/testutil"
)

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

func tconsts(items []*model.TitleSummary) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.TConst)
	}
	return out
}

func TestTitleSearch(t *testing.T) {
	repo := NewTitleRepository(testutil.NewCatalogDB(t))

	tests := []struct {
		name   string
		filter TitleFilter
		want   []string
	}{
		{"no filter", TitleFilter{}, []string{"tt0000003", "tt0000004", "tt0000005", "tt0000001", "tt0000002"}},
		{"query matches primary title", TitleFilter{Query: "ALPHA"}, []string{"tt0000001"}},
		{"query matches original title", TitleFilter{Query: "original"}, []string{"tt0000001"}},
		{"query wildcard is literal", TitleFilter{Query: "%"}, []string{}},
		{"underscore is literal", TitleFilter{Query: "a_r"}, []string{"tt0000003"}},
		{"genre case insensitive", TitleFilter{Genre: "DRAMA"}, []string{"tt0000003", "tt0000001", "tt0000002"}},
		{"year range", TitleFilter{YearStart: intPtr(2001), YearEnd: intPtr(2005)}, []string{"tt0000004", "tt0000005", "tt0000001"}},
		{"year start only", TitleFilter{YearStart: intPtr(2005)}, []string{"tt0000003", "tt0000004"}},
		{"year end only", TitleFilter{YearEnd: intPtr(2000)}, []string{"tt0000002"}},
		{"min rating skips unrated", TitleFilter{MinRating: floatPtr(8)}, []string{"tt0000005", "tt0000001"}},
		{"filters combine", TitleFilter{Genre: "comedy", MinRating: floatPtr(7)}, []string{"tt0000003", "tt0000005"}},
		{"unknown genre", TitleFilter{Genre: "western"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Search(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tconsts(got))
		})
	}
}

func TestTitleSearchGenreFilterKeepsAllGenres(t *testing.T) {
	repo := NewTitleRepository(testutil.NewCatalogDB(t))

	got, err := repo.Search(context.Background(), TitleFilter{Genre: "action", YearEnd: intPtr(2001)})
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "The Alpha", got[0].Title)
	assert.Equal(t, []string{"Action", "Drama"}, got[0].Genres)
	assert.Equal(t, 2001, *got[0].Year)
	assert.InDelta(t, 8.0, *got[0].RatingAvg, 1e-9)
	assert.Equal(t, 100, *got[0].NumVotes)
}

func TestGenreAverage(t *testing.T) {
	repo := NewTitleRepository(testutil.NewCatalogDB(t))
	ctx := context.Background()

	t.Run("vote threshold narrows cohort", func(t *testing.T) {
		avg, err := repo.GenreAverage(ctx, "Drama", 50)
		require.NoError(t, err)
		require.NotNil(t, avg)
		assert.InDelta(t, 7.0, *avg, 1e-9)

		movies, err := repo.AboveAverage(ctx, "Drama", 50, *avg)
		require.NoError(t, err)
		assert.Equal(t, []string{"tt0000001"}, tconsts(movies))
	})

	t.Run("mean is inclusive", func(t *testing.T) {
		avg, err := repo.GenreAverage(ctx, "drama", 0)
		require.NoError(t, err)
		require.NotNil(t, avg)
		assert.InDelta(t, 7.0, *avg, 1e-9)

		movies, err := repo.AboveAverage(ctx, "drama", 0, *avg)
		require.NoError(t, err)
		assert.Equal(t, []string{"tt0000001", "tt0000003"}, tconsts(movies))
	})

	t.Run("no qualifying titles", func(t *testing.T) {
		avg, err := repo.GenreAverage(ctx, "Action", 1000)
		require.NoError(t, err)
		assert.Nil(t, avg)
	})
}

func TestTitleDetail(t *testing.T) {
	repo := NewTitleRepository(testutil.NewCatalogDB(t))
	ctx := context.Background()

	detail, err := repo.FindByID(ctx, "tt0000001")
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, "Alpha Original", detail.OriginalTitle)
	assert.Equal(t, "movie", *detail.TitleType)
	assert.Nil(t, detail.EndYear)
	assert.Equal(t, 120, *detail.RuntimeMinutes)
	assert.False(t, detail.IsAdult)
	assert.Equal(t, []string{"Action", "Drama"}, detail.Genres)

	principals, err := repo.Principals(ctx, "tt0000001")
	require.NoError(t, err)
	require.Len(t, principals, 2)
	assert.Equal(t, 1, principals[0].Ordering)
	assert.Equal(t, "Alice Actor", *principals[0].PrimaryName)
	assert.Equal(t, "Hero", *principals[0].CharacterName)
	assert.Equal(t, "nm0000099", principals[1].NConst)
	assert.Nil(t, principals[1].PrimaryName)

	akas, err := repo.Akas(ctx, "tt0000001")
	require.NoError(t, err)
	require.Len(t, akas, 2)
	assert.Equal(t, "The Alpha", akas[0].Title)
	assert.Equal(t, "DE", *akas[1].Region)

	missing, err := repo.FindByID(ctx, "tt9999999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSummariesByIDsDropsUnknown(t *testing.T) {
	repo := NewTitleRepository(testutil.NewCatalogDB(t))

	got, err := repo.SummariesByIDs(context.Background(), []string{"tt0000005", "tt9999999", "tt0000001"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "Epsilon", got["tt0000005"].Title)
	assert.NotContains(t, got, "tt9999999")

	empty, err := repo.SummariesByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

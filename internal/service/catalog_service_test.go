package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Forfeit-15/INF2003/internal/apperr"
	"github.com/Forfeit-15/INF2003/internal/repository"
	"github.com/Forfeit-15/INF2003/internal/service"
	"github.com/Forfeit-15/INF2003/internal/testutil"
)

func newCatalog(t *testing.T) *service.CatalogService {
	t.Helper()
	db := testutil.NewCatalogDB(t)
	return service.NewCatalogService(
		repository.NewTitleRepository(db),
		repository.NewPersonRepository(db),
		repository.NewGenreRepository(db),
	)
}

func requireAppError(t *testing.T, err error, status int, msg string) {
	t.Helper()
	ae := apperr.As(err)
	require.NotNil(t, ae, "expected *apperr.AppError, got %v", err)
	assert.Equal(t, status, ae.HTTPStatus)
	assert.Equal(t, msg, ae.Message)
}

func TestListTitlesTrimsQuery(t *testing.T) {
	svc := newCatalog(t)

	titles, err := svc.ListTitles(context.Background(), repository.TitleFilter{Query: "  beta  "})
	require.NoError(t, err)
	require.Len(t, titles, 1)
	assert.Equal(t, "tt0000002", titles[0].TConst)
}

func TestAboveGenreAverage(t *testing.T) {
	svc := newCatalog(t)
	ctx := context.Background()

	t.Run("genre required", func(t *testing.T) {
		_, err := svc.AboveGenreAverage(ctx, "   ", service.DefaultMinVotes)
		requireAppError(t, err, http.StatusBadRequest, "genre is required")
	})

	t.Run("default vote threshold", func(t *testing.T) {
		res, err := svc.AboveGenreAverage(ctx, "Drama", service.DefaultMinVotes)
		require.NoError(t, err)
		assert.Equal(t, "Drama", res.Genre)
		require.NotNil(t, res.GenreAvg)
		assert.InDelta(t, 7.0, *res.GenreAvg, 1e-9)
		assert.Equal(t, 1, res.Count)
		require.Len(t, res.Movies, 1)
		assert.GreaterOrEqual(t, *res.Movies[0].RatingAvg, *res.GenreAvg)
	})

	t.Run("no qualifying titles", func(t *testing.T) {
		res, err := svc.AboveGenreAverage(ctx, "Western", 0)
		require.NoError(t, err)
		assert.Nil(t, res.GenreAvg)
		assert.Zero(t, res.Count)
		assert.NotNil(t, res.Movies)
		assert.Empty(t, res.Movies)
	})
}

func TestTitleDetail(t *testing.T) {
	svc := newCatalog(t)
	ctx := context.Background()

	detail, err := svc.TitleDetail(ctx, "tt0000001")
	require.NoError(t, err)
	assert.Equal(t, "The Alpha", detail.PrimaryTitle)
	assert.Equal(t, []string{"Action", "Drama"}, detail.Genres)
	require.Len(t, detail.Principals, 2)
	assert.Equal(t, 1, detail.Principals[0].Ordering)
	assert.Len(t, detail.Akas, 2)

	bare, err := svc.TitleDetail(ctx, "tt0000005")
	require.NoError(t, err)
	assert.NotNil(t, bare.Principals)
	assert.Empty(t, bare.Principals)
	assert.True(t, bare.IsAdult)

	_, err = svc.TitleDetail(ctx, "tt9999999")
	requireAppError(t, err, http.StatusNotFound, "Title not found")
}

func TestPersonDetail(t *testing.T) {
	svc := newCatalog(t)
	ctx := context.Background()

	person, err := svc.PersonDetail(ctx, "nm0000001")
	require.NoError(t, err)
	assert.Equal(t, "Alice Actor", person.PrimaryName)
	require.Len(t, person.KnownFor, 2)
	assert.Equal(t, 2001, *person.KnownFor[0].StartYear)

	_, err = svc.PersonDetail(ctx, "nm9999999")
	requireAppError(t, err, http.StatusNotFound, "Person not found")

	persons, err := svc.ListPersons(ctx, " carol ")
	require.NoError(t, err)
	require.Len(t, persons, 1)
	assert.Equal(t, "nm0000003", persons[0].NConst)
}

func TestCatalogDriverErrorsAreNotAppErrors(t *testing.T) {
	db := testutil.NewCatalogDB(t)
	svc := service.NewCatalogService(
		repository.NewTitleRepository(db),
		repository.NewPersonRepository(db),
		repository.NewGenreRepository(db),
	)

	genres, err := svc.ListGenres(context.Background())
	require.NoError(t, err)
	assert.Len(t, genres, 3)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = svc.ListGenres(context.Background())
	require.Error(t, err)
	assert.Nil(t, apperr.As(err))
}

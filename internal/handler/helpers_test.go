package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Forfeit-15/INF2003/internal/handler"
	"github.com/Forfeit-15/INF2003/internal/middleware"
	"github.com/Forfeit-15/INF2003/internal/repository"
	"github.com/Forfeit-15/INF2003/internal/router"
	"github.com/Forfeit-15/INF2003/internal/service"
	"github.com/Forfeit-15/INF2003/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type testServer struct {
	engine  *gin.Engine
	reviews *testutil.ReviewStore
	logs    *testutil.SearchLogStore
}

func newServer(t *testing.T, pinger handler.Pinger) *testServer {
	t.Helper()

	db := testutil.NewCatalogDB(t)
	reviews := &testutil.ReviewStore{}
	watchlists := &testutil.WatchlistStore{}
	logs := &testutil.SearchLogStore{}
	titles := repository.NewTitleRepository(db)

	svcs := &service.Services{
		Catalog:   service.NewCatalogService(titles, repository.NewPersonRepository(db), repository.NewGenreRepository(db)),
		Account:   service.NewAccountService(repository.NewUserRepository(db)),
		Review:    service.NewReviewService(reviews),
		Watchlist: service.NewWatchlistService(watchlists, titles),
		SearchLog: service.NewSearchLogService(logs),
		Ranking:   service.NewRankingService(reviews, logs, titles),
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	r := gin.New()
	router.RegisterRoutes(r, handler.NewHandler(svcs, pinger), middleware.NewIPRateLimiter(ctx, 1000, 1000))
	return &testServer{engine: r, reviews: reviews, logs: logs}
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func assertError(t *testing.T, w *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	assert.Equal(t, status, w.Code, w.Body.String())
	body := decode[map[string]any](t, w)
	assert.Equal(t, msg, body["error"])
}

func assertMessage(t *testing.T, w *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	assert.Equal(t, status, w.Code, w.Body.String())
	assert.JSONEq(t, `{"message":"`+msg+`"}`, w.Body.String())
}

package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Forfeit-15/INF2003/internal/config"
	"github.com/Forfeit-15/INF2003/internal/handler"
	"github.com/Forfeit-15/INF2003/internal/repository"
	"github.com/Forfeit-15/INF2003/internal/router"
	"github.com/Forfeit-15/INF2003/internal/service"
	"github.com/Forfeit-15/INF2003/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()

	db := testutil.NewCatalogDB(t)
	reviews := &testutil.ReviewStore{}
	logs := &testutil.SearchLogStore{}
	titles := repository.NewTitleRepository(db)
	svcs := &service.Services{
		Catalog:   service.NewCatalogService(titles, repository.NewPersonRepository(db), repository.NewGenreRepository(db)),
		Account:   service.NewAccountService(repository.NewUserRepository(db)),
		Review:    service.NewReviewService(reviews),
		Watchlist: service.NewWatchlistService(&testutil.WatchlistStore{}, titles),
		SearchLog: service.NewSearchLogService(logs),
		Ranking:   service.NewRankingService(reviews, logs, titles),
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return router.New(ctx, cfg, zap.NewNop(), handler.NewHandler(svcs, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Env:                "test",
		CORSOrigins:        []string{"*"},
		AuthRateLimitRPS:   0.001,
		AuthRateLimitBurst: 2,
	}
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRoutesAreRateLimited(t *testing.T) {
	r := newEngine(t, testConfig())

	login := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"username":"x","password":"y"}`))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "10.0.0.1:1234"
		return serve(r, req).Code
	}

	assert.Equal(t, http.StatusUnauthorized, login())
	assert.Equal(t, http.StatusUnauthorized, login())
	assert.Equal(t, http.StatusTooManyRequests, login())

	// 非鉴权路由不受影响
	req := httptest.NewRequest(http.MethodGet, "/api/genres", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	assert.Equal(t, http.StatusOK, serve(r, req).Code)
}

func TestRequestIDAndCORS(t *testing.T) {
	r := newEngine(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/genres", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := serve(r, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestCORSRestrictedOrigins(t *testing.T) {
	cfg := testConfig()
	cfg.CORSOrigins = []string{"https://movies.example.com"}
	r := newEngine(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/genres", nil)
	req.Header.Set("Origin", "https://movies.example.com")
	w := serve(r, req)
	assert.Equal(t, "https://movies.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/genres", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = serve(r, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	r := newEngine(t, testConfig())

	serve(r, httptest.NewRequest(http.MethodGet, "/api/title/tt0000001", nil))
	w := serve(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `route="/api/title/:id"`)
}

func TestUnknownRoute(t *testing.T) {
	r := newEngine(t, testConfig())
	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

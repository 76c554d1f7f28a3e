package router

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Forfeit-15/INF2003/internal/config"
	"github.com/Forfeit-15/INF2003/internal/handler"
	"github.com/Forfeit-15/INF2003/internal/middleware"
)

// New 创建 gin 引擎并挂载全局中间件与路由；ctx 结束时停止限流器的后台清理
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger, h *handler.Handler) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery())
	r.Use(middleware.Metrics())

	// 启用 gzip，默认压缩级别
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	limiter := middleware.NewIPRateLimiter(ctx, cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst)
	RegisterRoutes(r, h, limiter)
	return r
}

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler, limiter *middleware.IPRateLimiter) {
	// 健康检查与监控
	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// ==================== 目录 ====================
	api.GET("/movies", h.ListMovies)
	api.GET("/movies/above_genre_avg", h.MoviesAboveGenreAvg)
	api.GET("/title/:id", h.TitleDetail)
	api.GET("/actors", h.ListActors)
	api.GET("/person/:id", h.PersonDetail)
	api.GET("/genres", h.ListGenres)

	// ==================== 账号 ====================
	auth := api.Group("")
	auth.Use(middleware.RateLimit(limiter))
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
	api.GET("/users/:id", h.GetUser)
	api.PUT("/users/:id", h.UpdateUser)

	// ==================== 管理 ====================
	admin := api.Group("/admin")
	{
		admin.GET("/users", h.AdminListUsers)
		admin.PUT("/users/:id", h.AdminUpdateUser)
		admin.DELETE("/users/:id", h.AdminDeleteUser)
	}

	// ==================== 影评 / 片单 / 搜索 ====================
	api.GET("/reviews/:tconst", h.ListReviews)
	api.POST("/reviews/:tconst", h.UpsertReview)
	api.DELETE("/reviews/:tconst/:user_id", h.DeleteReview)

	api.GET("/watchlist/:user_id", h.GetWatchlist)
	api.POST("/watchlist/:user_id", h.AddWatchlistItem)
	api.DELETE("/watchlist/:user_id", h.RemoveWatchlistItem)

	api.GET("/search_logs/:user_id", h.ListSearchLogs)
	api.POST("/search_logs/:user_id", h.LogSearch)

	// ==================== 榜单 ====================
	api.GET("/search_trending", h.SearchTrending)
	api.GET("/top_user_rated", h.TopUserRated)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Forfeit-15/INF2003/internal/service"
	"github.com/Forfeit-15/INF2003/internal/utils"
)

// Pinger 健康检查依赖的数据源
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler HTTP 处理器
type Handler struct {
	Catalog   *service.CatalogService
	Account   *service.AccountService
	Review    *service.ReviewService
	Watchlist *service.WatchlistService
	SearchLog *service.SearchLogService
	Ranking   *service.RankingService
	pinger    Pinger
}

// NewHandler 创建处理器
func NewHandler(svcs *service.Services, pinger Pinger) *Handler {
	return &Handler{
		Catalog:   svcs.Catalog,
		Account:   svcs.Account,
		Review:    svcs.Review,
		Watchlist: svcs.Watchlist,
		SearchLog: svcs.SearchLog,
		Ranking:   svcs.Ranking,
		pinger:    pinger,
	}
}

// Health 健康检查，同时探测关系库与文档库
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if h.pinger != nil {
		if err := h.pinger.Ping(ctx); err != nil {
			utils.Logger(c).Warn("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

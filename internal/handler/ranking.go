package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Forfeit-15/INF2003/internal/service"
	"github.com/Forfeit-15/INF2003/internal/utils"
)

// SearchTrending 热搜 GET /api/search_trending
// limit 缺省 10，最大 100，超出按 100 截断；min_count 缺省 1
func (h *Handler) SearchTrending(c *gin.Context) {
	limit := queryInt(c, "limit", service.DefaultTrendingLimit)
	minCount := queryInt(c, "min_count", service.DefaultTrendingMin)

	queries, err := h.Ranking.Trending(c.Request.Context(), limit, minCount)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, queries)
}

// TopUserRated 用户评分榜 GET /api/top_user_rated
// limit 缺省 10，最大 100，超出按 100 截断；min_reviews 缺省 2
func (h *Handler) TopUserRated(c *gin.Context) {
	limit := queryInt(c, "limit", service.DefaultTopRatedLimit)
	minReviews := queryInt(c, "min_reviews", service.DefaultTopRatedMinRevs)

	titles, err := h.Ranking.TopUserRated(c.Request.Context(), limit, minReviews)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, titles)
}

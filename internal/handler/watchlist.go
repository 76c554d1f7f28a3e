package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Forfeit-15/INF2003/internal/utils"
)

type watchlistRequest struct {
	TConst string  `json:"tconst" binding:"max=16"`
	Note   *string `json:"note" binding:"omitempty,max=500"`
}

// GetWatchlist 片单 GET /api/watchlist/:user_id
func (h *Handler) GetWatchlist(c *gin.Context) {
	userID, err := pathUserID(c, "user_id")
	if err != nil {
		utils.Fail(c, err)
		return
	}

	entries, err := h.Watchlist.List(c.Request.Context(), userID)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, entries)
}

// AddWatchlistItem 加入片单 POST /api/watchlist/:user_id
func (h *Handler) AddWatchlistItem(c *gin.Context) {
	userID, err := pathUserID(c, "user_id")
	if err != nil {
		utils.Fail(c, err)
		return
	}

	var req watchlistRequest
	if err := bindJSON(c, &req); err != nil {
		utils.Fail(c, err)
		return
	}

	if err := h.Watchlist.Add(c.Request.Context(), userID, req.TConst, req.Note); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Message(c, http.StatusCreated, "added")
}

// RemoveWatchlistItem 移出片单 DELETE /api/watchlist/:user_id，tconst 可放在请求体或查询参数
func (h *Handler) RemoveWatchlistItem(c *gin.Context) {
	userID, err := pathUserID(c, "user_id")
	if err != nil {
		utils.Fail(c, err)
		return
	}

	var req watchlistRequest
	if err := bindJSON(c, &req); err != nil {
		utils.Fail(c, err)
		return
	}
	tconst := req.TConst
	if tconst == "" {
		tconst = c.Query("tconst")
	}

	if err := h.Watchlist.Remove(c.Request.Context(), userID, tconst); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Message(c, http.StatusOK, "removed")
}

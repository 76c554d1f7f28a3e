package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Forfeit-15/INF2003/internal/utils"
)

type searchLogRequest struct {
	Q string `json:"q" binding:"max=500"`
}

// ListSearchLogs 搜索记录 GET /api/search_logs/:user_id
func (h *Handler) ListSearchLogs(c *gin.Context) {
	userID, err := pathUserID(c, "user_id")
	if err != nil {
		utils.Fail(c, err)
		return
	}

	logs, err := h.SearchLog.History(c.Request.Context(), userID)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, logs)
}

// LogSearch 记录搜索 POST /api/search_logs/:user_id
func (h *Handler) LogSearch(c *gin.Context) {
	userID, err := pathUserID(c, "user_id")
	if err != nil {
		utils.Fail(c, err)
		return
	}

	var req searchLogRequest
	if err := bindJSON(c, &req); err != nil {
		utils.Fail(c, err)
		return
	}

	logged, err := h.SearchLog.Log(c.Request.Context(), userID, req.Q)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	if !logged {
		utils.Message(c, http.StatusOK, "empty query, not logged")
		return
	}
	utils.Message(c, http.StatusCreated, "logged")
}

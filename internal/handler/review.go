package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Forfeit-15/INF2003/internal/service"
	"github.com/Forfeit-15/INF2003/internal/utils"
)

type reviewRequest struct {
	UserID   *int64   `json:"user_id"`
	Username string   `json:"username" binding:"max=64"`
	Stars    int      `json:"stars"`
	Text     string   `json:"text" binding:"max=10000"`
	Spoiler  bool     `json:"spoiler"`
	Tags     []string `json:"tags" binding:"max=20"`
}

// ListReviews 影片影评 GET /api/reviews/:tconst
func (h *Handler) ListReviews(c *gin.Context) {
	reviews, err := h.Review.ListByTitle(c.Request.Context(), c.Param("tconst"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, reviews)
}

// UpsertReview 写入影评 POST /api/reviews/:tconst
func (h *Handler) UpsertReview(c *gin.Context) {
	var req reviewRequest
	if err := bindJSON(c, &req); err != nil {
		utils.Fail(c, err)
		return
	}

	review, err := h.Review.Upsert(c.Request.Context(), service.ReviewInput{
		TConst:   c.Param("tconst"),
		UserID:   req.UserID,
		Username: req.Username,
		Stars:    req.Stars,
		Text:     req.Text,
		Spoiler:  req.Spoiler,
		Tags:     req.Tags,
	})
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, review)
}

// DeleteReview 删除影评 DELETE /api/reviews/:tconst/:user_id
func (h *Handler) DeleteReview(c *gin.Context) {
	userID, err := pathUserID(c, "user_id")
	if err != nil {
		utils.Fail(c, err)
		return
	}

	if err := h.Review.Delete(c.Request.Context(), c.Param("tconst"), userID); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Message(c, http.StatusOK, "deleted")
}

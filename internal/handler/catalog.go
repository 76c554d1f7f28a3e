package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Forfeit-15/INF2003/internal/repository"
	"github.com/Forfeit-15/INF2003/internal/service"
	"github.com/Forfeit-15/INF2003/internal/utils"
)

// ListMovies 影片搜索 GET /api/movies
func (h *Handler) ListMovies(c *gin.Context) {
	filter := repository.TitleFilter{
		Query:     c.Query("q"),
		Genre:     c.Query("genre"),
		YearStart: queryIntPtr(c, "year_start"),
		YearEnd:   queryIntPtr(c, "year_end"),
		MinRating: queryFloatPtr(c, "min_rating"),
	}

	movies, err := h.Catalog.ListTitles(c.Request.Context(), filter)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, movies)
}

// MoviesAboveGenreAvg 高于类型均分的影片 GET /api/movies/above_genre_avg
func (h *Handler) MoviesAboveGenreAvg(c *gin.Context) {
	minVotes := queryInt(c, "min_votes", service.DefaultMinVotes)

	result, err := h.Catalog.AboveGenreAverage(c.Request.Context(), c.Query("genre"), minVotes)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, result)
}

// TitleDetail 影片详情 GET /api/title/:id
func (h *Handler) TitleDetail(c *gin.Context) {
	detail, err := h.Catalog.TitleDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, detail)
}

// ListActors 人物列表 GET /api/actors
func (h *Handler) ListActors(c *gin.Context) {
	persons, err := h.Catalog.ListPersons(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, persons)
}

// PersonDetail 人物详情 GET /api/person/:id
func (h *Handler) PersonDetail(c *gin.Context) {
	person, err := h.Catalog.PersonDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, person)
}

// ListGenres 类型列表 GET /api/genres
func (h *Handler) ListGenres(c *gin.Context) {
	genres, err := h.Catalog.ListGenres(c.Request.Context())
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, genres)
}

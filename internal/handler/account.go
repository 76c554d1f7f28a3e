package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Forfeit-15/INF2003/internal/service"
	"github.com/Forfeit-15/INF2003/internal/utils"
)

type registerRequest struct {
	Username    string `json:"username" binding:"max=64"`
	Email       string `json:"email" binding:"max=255"`
	Password    string `json:"password" binding:"max=128"`
	DisplayName string `json:"display_name" binding:"max=128"`
}

// loginRequest username 与 email 任填其一
type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileRequest struct {
	DisplayName *string `json:"display_name" binding:"omitempty,max=128"`
	Bio         *string `json:"bio" binding:"omitempty,max=2000"`
	Password    *string `json:"password" binding:"omitempty,max=128"`
}

// Register 注册 POST /api/register
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := bindJSON(c, &req); err != nil {
		utils.Fail(c, err)
		return
	}

	user, err := h.Account.Register(c.Request.Context(), service.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.JSON(c, http.StatusCreated, user)
}

// Login 登录 POST /api/login
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := bindJSON(c, &req); err != nil {
		utils.Fail(c, err)
		return
	}

	identifier := req.Username
	if identifier == "" {
		identifier = req.Email
	}

	user, err := h.Account.Login(c.Request.Context(), identifier, req.Password)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, user)
}

// GetUser 用户资料 GET /api/users/:id
func (h *Handler) GetUser(c *gin.Context) {
	id, err := pathUserID(c, "id")
	if err != nil {
		utils.Fail(c, err)
		return
	}

	user, err := h.Account.Profile(c.Request.Context(), id)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, user)
}

// UpdateUser 修改资料 PUT /api/users/:id
func (h *Handler) UpdateUser(c *gin.Context) {
	id, err := pathUserID(c, "id")
	if err != nil {
		utils.Fail(c, err)
		return
	}

	var req profileRequest
	if err := bindJSON(c, &req); err != nil {
		utils.Fail(c, err)
		return
	}

	user, err := h.Account.UpdateProfile(c.Request.Context(), id, service.ProfileUpdate{
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		Password:    req.Password,
	})
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, user)
}

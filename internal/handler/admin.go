package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Forfeit-15/INF2003/internal/model"
	"github.com/Forfeit-15/INF2003/internal/utils"
)

type adminUpdateRequest struct {
	IsAdmin     *bool   `json:"is_admin"`
	IsActive    *bool   `json:"is_active"`
	DisplayName *string `json:"display_name" binding:"omitempty,max=128"`
	Bio         *string `json:"bio" binding:"omitempty,max=2000"`
}

// AdminListUsers 用户列表 GET /api/admin/users
func (h *Handler) AdminListUsers(c *gin.Context) {
	users, err := h.Account.ListUsers(c.Request.Context())
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, users)
}

// AdminUpdateUser 修改用户权限或状态 PUT /api/admin/users/:id
func (h *Handler) AdminUpdateUser(c *gin.Context) {
	id, err := pathUserID(c, "id")
	if err != nil {
		utils.Fail(c, err)
		return
	}

	var req adminUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		utils.Fail(c, err)
		return
	}

	user, err := h.Account.AdminUpdate(c.Request.Context(), id, model.UserUpdate{
		IsAdmin:     req.IsAdmin,
		IsActive:    req.IsActive,
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
	})
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, user)
}

// AdminDeleteUser 删除用户 DELETE /api/admin/users/:id
func (h *Handler) AdminDeleteUser(c *gin.Context) {
	id, err := pathUserID(c, "id")
	if err != nil {
		utils.Fail(c, err)
		return
	}

	if err := h.Account.DeleteUser(c.Request.Context(), id); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Message(c, http.StatusOK, "user deleted")
}

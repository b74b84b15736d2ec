package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"changaya_backend/internal/services"
	"changaya_backend/internal/services/dto"
	"changaya_backend/pkg/apperrors"
)

// UserHandler exposes account management endpoints.
type UserHandler struct {
	*BaseHandler
	userService *services.UserService
}

func NewUserHandler(base *BaseHandler, userService *services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// List returns all accounts. Admin only (enforced in the service).
func (h *UserHandler) List(c *gin.Context) {
	identity := h.Identity(c)
	if identity == nil {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	resp, err := h.userService.List(c.Request.Context(), identity, limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) Get(c *gin.Context) {
	identity := h.Identity(c)
	if identity == nil {
		return
	}

	user, err := h.userService.Get(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Me returns the caller's own account.
func (h *UserHandler) Me(c *gin.Context) {
	identity := h.Identity(c)
	if identity == nil {
		return
	}

	user, err := h.userService.Get(c.Request.Context(), identity, identity.UserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	identity := h.Identity(c)
	if identity == nil {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return
	}

	user, err := h.userService.Update(c.Request.Context(), identity, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	identity := h.Identity(c)
	if identity == nil {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

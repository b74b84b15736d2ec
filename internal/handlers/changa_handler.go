package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"changaya_backend/internal/services"
	"changaya_backend/internal/services/dto"
	"changaya_backend/pkg/apperrors"
)

// ChangaHandler exposes the gig posting endpoints.
type ChangaHandler struct {
	*BaseHandler
	changaService *services.ChangaService
}

func NewChangaHandler(base *BaseHandler, changaService *services.ChangaService) *ChangaHandler {
	return &ChangaHandler{
		BaseHandler:   base,
		changaService: changaService,
	}
}

func (h *ChangaHandler) Create(c *gin.Context) {
	identity := h.Identity(c)
	if identity == nil {
		return
	}

	var req dto.CreateChangaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return
	}

	changa, err := h.changaService.Create(c.Request.Context(), identity, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, changa)
}

// ListOpen is the public feed of open changas.
func (h *ChangaHandler) ListOpen(c *gin.Context) {
	changas, err := h.changaService.ListOpen(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"changas": changas})
}

func (h *ChangaHandler) ListForWorker(c *gin.Context) {
	identity := h.Identity(c)
	if identity == nil {
		return
	}

	changas, err := h.changaService.ListForWorker(c.Request.Context(), identity)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"changas": changas})
}

func (h *ChangaHandler) ListForEmployer(c *gin.Context) {
	identity := h.Identity(c)
	if identity == nil {
		return
	}

	changas, err := h.changaService.ListForEmployer(c.Request.Context(), identity)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"changas": changas})
}

func (h *ChangaHandler) Get(c *gin.Context) {
	changa, err := h.changaService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, changa)
}

func (h *ChangaHandler) Update(c *gin.Context) {
	identity := h.Identity(c)
	if identity == nil {
		return
	}

	var req dto.UpdateChangaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return
	}

	changa, err := h.changaService.Update(c.Request.Context(), identity, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, changa)
}

func (h *ChangaHandler) Delete(c *gin.Context) {
	identity := h.Identity(c)
	if identity == nil {
		return
	}

	if err := h.changaService.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Changa deleted"})
}

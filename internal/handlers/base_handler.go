package handlers

import (
	"github.com/gin-gonic/gin"

	"changaya_backend/internal/auth"
	"changaya_backend/internal/middleware"
	"changaya_backend/pkg/apperrors"
)

// BaseHandler carries the helpers shared by every handler. Input
// validation happens in the service layer; handlers only bind.
type BaseHandler struct{}

func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// HandleServiceError writes a service-layer error as a JSON response.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// Identity returns the authenticated caller, or writes a 401 and returns
// nil when the middleware attached nothing.
func (h *BaseHandler) Identity(c *gin.Context) *auth.Identity {
	identity := middleware.GetIdentity(c)
	if identity == nil {
		apperrors.HandleError(c, apperrors.ErrMissingCredentials)
	}
	return identity
}

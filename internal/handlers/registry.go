package handlers

import (
	"changaya_backend/internal/services"
)

// AppHandlers bundles the HTTP handlers for route registration.
type AppHandlers struct {
	Auth    *AuthHandler
	Users   *UserHandler
	Changas *ChangaHandler
}

func NewAppHandlers(svc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler()

	return &AppHandlers{
		Auth:    NewAuthHandler(base, svc.Auth),
		Users:   NewUserHandler(base, svc.Users),
		Changas: NewChangaHandler(base, svc.Changas),
	}
}

package services

// ServiceContainer bundles the application services for wiring.
type ServiceContainer struct {
	Auth    *AuthService
	Users   *UserService
	Changas *ChangaService
}

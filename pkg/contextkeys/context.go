package contextkeys

// ContextKey is the typed key used for values stored in request contexts.
type ContextKey string

const (
	// IdentityContextKey holds the *auth.Identity attached by the auth middleware.
	IdentityContextKey ContextKey = "identity"
)

package domain

// ContextKey is the typed key used to stash request-scoped values in the gin
// context and request context.
type ContextKey string

const (
	// KeyActor holds the authenticated *User resolved by the auth middleware.
	KeyActor ContextKey = "Actor"
	// KeyRequestID holds the per-request correlation ID.
	KeyRequestID ContextKey = "RequestID"
)

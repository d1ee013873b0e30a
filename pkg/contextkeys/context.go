package contextkeys

type ContextKey string

const (
	// RequestIDContextKey carries the per-request ID set by the middleware.
	RequestIDContextKey ContextKey = "request_id"

	// ExternalIDContextKey carries the identity-provider subject of the
	// authenticated caller.
	ExternalIDContextKey ContextKey = "externalID"

	// ClaimsContextKey carries the parsed identity-provider claims.
	ClaimsContextKey ContextKey = "claims"
)

package domain

// Principal is the request-scoped identity derived from a verified token.
// It is the single shape both the plain auth middleware and the role gate
// attach to the request context; it never outlives one request.
type Principal struct {
	UserID string
	Email  string
	Role   Role
}

package model

// Scope carries request-scoped identity through use cases.
// UserID is opaque to the engine: it is logged, never scored on.
type Scope struct {
	UserID    string
	RequestID string
}

package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyMessages  = errors.New("messages are required")
	ErrInvalidMessage = errors.New("message has empty content or unknown role")
	ErrEmptyText      = errors.New("text is required")
	ErrEmptyDraft     = errors.New("draft is required")
)

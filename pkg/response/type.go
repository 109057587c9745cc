package response

// Resp is the standard JSON envelope for system and error responses.
// Contract endpoints under /api/ai marshal their DTOs directly instead,
// because their body shapes are pinned by external clients.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

const (
	// MessageSuccess is the message attached to successful envelopes.
	MessageSuccess = "success"

	// DefaultErrorMessage hides internal details from callers.
	DefaultErrorMessage = "something went wrong"

	// InternalServerErrorCode is the envelope code for unexpected failures.
	InternalServerErrorCode = 500

	// ValidationErrorCode is the envelope code for rejected request payloads.
	ValidationErrorCode = 422
)

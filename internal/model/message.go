package model

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single turn in a conversation. The engine owns no history:
// callers resupply the full ordered sequence on every call.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// LastUserContent returns the content of the most recent user message,
// or "" when the conversation has none.
func LastUserContent(messages []Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == RoleUser {
			return messages[i].Content
		}
	}
	return ""
}

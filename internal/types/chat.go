// Package types provides type definitions for structured data shared across the career-mentor system.
package types

// Role identifies the author of a chat message.
type Role string

const (
	// RoleUser marks a message typed by the user.
	RoleUser Role = "user"
	// RoleAssistant marks a message produced by the mentor.
	RoleAssistant Role = "assistant"
)

// Message is a single entry in the conversation history.
// Messages are immutable once appended.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

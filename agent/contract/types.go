package contract

import "time"

// Role tags a conversation memory record with its author.
type Role string

const (
	RoleHuman     Role = "Human"
	RoleAssistant Role = "Assistant"
)

// ConversationRecord is one role-tagged entry in a session's turn memory.
// Records are append-only; ordering within a session is append order.
type ConversationRecord struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Account is a row in the existing-user accounts table.
type Account struct {
	Username  string    `json:"username"`
	PlanName  string    `json:"plan_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

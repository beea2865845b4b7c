package entity

import (
	"time"

	"github.com/google/uuid"
)

// Target represents a monitored URL for data transfer between layers.
type Target struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	URL          string    `json:"url"`
	Name         string    `json:"name"`
	Prompt       *string   `json:"prompt,omitempty"`
	Schedule     string    `json:"schedule"`
	CustomFields []string  `json:"custom_fields,omitempty"`
	Active       bool      `json:"active"`
	MasterData   *string   `json:"master_data,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// PromptOrDefault returns the target's extraction instructions, empty when
// none are configured.
func (t *Target) PromptOrDefault() string {
	if t.Prompt == nil {
		return ""
	}
	return *t.Prompt
}

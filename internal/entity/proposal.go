package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProposedTarget represents a discovery suggestion for data transfer between
// layers.
type ProposedTarget struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	URL          string    `json:"url"`
	Title        string    `json:"title"`
	Description  *string   `json:"description,omitempty"`
	SourcePrompt string    `json:"source_prompt"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

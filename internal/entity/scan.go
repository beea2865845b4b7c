package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScanResult represents one fetch-and-extract attempt for data transfer
// between layers. Exactly one of ExtractedData / ErrorMessage is set for a
// completed attempt.
type ScanResult struct {
	ID            uuid.UUID `json:"id"`
	TargetID      uuid.UUID `json:"target_id"`
	Status        string    `json:"status"`
	Content       *string   `json:"content,omitempty"`
	ExtractedData *string   `json:"extracted_data,omitempty"`
	Screenshot    *string   `json:"screenshot,omitempty"`
	ErrorMessage  *string   `json:"error_message,omitempty"`
	ReviewStatus  string    `json:"review_status"`
	CreatedAt     time.Time `json:"created_at"`
}

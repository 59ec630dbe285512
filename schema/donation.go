package schema

import (
	"time"
)

const (
	RECIPIENT_NGO    = "ngo"
	RECIPIENT_VICTIM = "victim"
)

// Donation is a transfer record from a donor to an NGO or a victim.
// Immutable once created; recording a donation never changes any
// help request as a side effect.
type Donation struct {
	ID            string    `json:"id"`
	DonorID       string    `json:"donorId"`
	RecipientID   string    `json:"recipientId"`
	RecipientType string    `json:"recipientType"`
	Amount        float64   `json:"amount"`
	Message       string    `json:"message,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

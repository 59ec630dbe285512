package schema

import (
	"time"
)

const (
	REQUEST_MONEY   = "money"
	REQUEST_MEDICAL = "medical"
	REQUEST_LEGAL   = "legal"
)

const (
	REQUEST_PENDING     = "pending"
	REQUEST_ASSIGNED    = "assigned"
	REQUEST_IN_PROGRESS = "in-progress"
	REQUEST_COMPLETED   = "completed"
)

const (
	URGENCY_LOW    = "low"
	URGENCY_MEDIUM = "medium"
	URGENCY_HIGH   = "high"
)

// HelpRequest is a victim's ask for assistance. Status moves through
// pending -> assigned -> in-progress -> completed; AssignedConsultantID
// is set when the request leaves pending. Amount is only meaningful for
// money requests.
type HelpRequest struct {
	ID                   string    `json:"id"`
	VictimID             string    `json:"victimId"`
	Type                 string    `json:"type"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	Urgency              string    `json:"urgency"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"createdAt"`
	AssignedConsultantID string    `json:"assignedConsultantId,omitempty"`
	NGOID                string    `json:"ngoId,omitempty"`
	Amount               float64   `json:"amount,omitempty"`
	ScheduledDate        string    `json:"scheduledDate,omitempty"`
}

package schema

const (
	CONSULTATION_SCHEDULED = "scheduled"
	CONSULTATION_COMPLETED = "completed"
	CONSULTATION_CANCELLED = "cancelled"
)

// Consultation ties a help request to a consultant and a victim. It is
// stored in its own collection; RequestID is not referentially enforced
// against the help-request collection, and scheduling one never
// transitions the referenced request. Callers update the request in a
// separate call.
type Consultation struct {
	ID            string `json:"id"`
	RequestID     string `json:"requestId"`
	ConsultantID  string `json:"consultantId"`
	VictimID      string `json:"victimId"`
	ScheduledDate string `json:"scheduledDate"`
	Notes         string `json:"notes,omitempty"`
	Status        string `json:"status"`
}

package store

import (
	"github.com/google/uuid"

	"github.com/safehaven-app/safehaven-api/schema"
)

// ScheduleConsultationParams carries the caller-supplied fields of a
// new consultation.
type ScheduleConsultationParams struct {
	RequestID     string
	ConsultantID  string
	VictimID      string
	ScheduledDate string
	Notes         string
	Status        string
}

// ScheduleConsultation appends a consultation record. The referenced
// help request is deliberately left alone: assigning and scheduling
// the request is a separate UpdateRequest call issued by the caller,
// with no atomicity between the two writes. RequestID is not checked
// against the request collection.
func (s *SupportStore) ScheduleConsultation(params ScheduleConsultationParams) (*schema.Consultation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	consultation := schema.Consultation{
		ID:            uuid.NewString(),
		RequestID:     params.RequestID,
		ConsultantID:  params.ConsultantID,
		VictimID:      params.VictimID,
		ScheduledDate: params.ScheduledDate,
		Notes:         params.Notes,
		Status:        params.Status,
	}

	s.consultations[consultation.ID] = &consultation
	s.consultationOrder = append(s.consultationOrder, consultation.ID)

	stored := consultation
	return &stored, nil
}

// ConsultationsByConsultant returns the consultations belonging to the
// given consultant, in insertion order.
func (s *SupportStore) ConsultationsByConsultant(consultantID string) ([]schema.Consultation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	consultations := []schema.Consultation{}
	for _, id := range s.consultationOrder {
		if c := s.consultations[id]; c.ConsultantID == consultantID {
			consultations = append(consultations, *c)
		}
	}

	return consultations, nil
}

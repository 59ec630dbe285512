package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/safehaven-app/safehaven-api/schema"
)

var (
	ErrRequestNotExist = fmt.Errorf("help request not found")
)

// CreateRequestParams carries the caller-supplied fields of a new help
// request. The store assigns the id, the creation timestamp and the
// initial status itself.
type CreateRequestParams struct {
	VictimID    string
	Type        string
	Title       string
	Description string
	Urgency     string
	Amount      float64
}

// RequestPatch is a partial update. Fields left nil keep their prior
// value; fields set overwrite, whatever they overwrite with. Status
// transitions are not checked here: the app moves requests forward
// only, but nothing in the store prevents going backward.
type RequestPatch struct {
	Type                 *string  `json:"type"`
	Title                *string  `json:"title"`
	Description          *string  `json:"description"`
	Urgency              *string  `json:"urgency"`
	Status               *string  `json:"status"`
	AssignedConsultantID *string  `json:"assignedConsultantId"`
	NGOID                *string  `json:"ngoId"`
	Amount               *float64 `json:"amount"`
	ScheduledDate        *string  `json:"scheduledDate"`
}

// CreateRequest appends a new help request. Status is forced to
// pending regardless of anything the caller had in mind.
func (s *SupportStore) CreateRequest(params CreateRequestParams) (*schema.HelpRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	request := schema.HelpRequest{
		ID:          uuid.NewString(),
		VictimID:    params.VictimID,
		Type:        params.Type,
		Title:       params.Title,
		Description: params.Description,
		Urgency:     params.Urgency,
		Status:      schema.REQUEST_PENDING,
		CreatedAt:   time.Now().UTC(),
		Amount:      params.Amount,
	}

	s.requests[request.ID] = &request
	s.requestOrder = append(s.requestOrder, request.ID)

	stored := request
	return &stored, nil
}

// UpdateRequest merges patch over the request with the given id and
// returns the updated record. An unknown id yields ErrRequestNotExist
// and leaves every record untouched.
func (s *SupportStore) UpdateRequest(id string, patch RequestPatch) (*schema.HelpRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.requests[id]
	if !ok {
		return nil, ErrRequestNotExist
	}

	mergeRequest(request, patch)

	updated := *request
	return &updated, nil
}

// mergeRequest applies the shallow-merge rule: present patch fields
// win, absent fields retain the prior value.
func mergeRequest(request *schema.HelpRequest, patch RequestPatch) {
	if patch.Type != nil {
		request.Type = *patch.Type
	}
	if patch.Title != nil {
		request.Title = *patch.Title
	}
	if patch.Description != nil {
		request.Description = *patch.Description
	}
	if patch.Urgency != nil {
		request.Urgency = *patch.Urgency
	}
	if patch.Status != nil {
		request.Status = *patch.Status
	}
	if patch.AssignedConsultantID != nil {
		request.AssignedConsultantID = *patch.AssignedConsultantID
	}
	if patch.NGOID != nil {
		request.NGOID = *patch.NGOID
	}
	if patch.Amount != nil {
		request.Amount = *patch.Amount
	}
	if patch.ScheduledDate != nil {
		request.ScheduledDate = *patch.ScheduledDate
	}
}

// GetRequest returns the help request with the given id.
func (s *SupportStore) GetRequest(id string) (*schema.HelpRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	request, ok := s.requests[id]
	if !ok {
		return nil, ErrRequestNotExist
	}

	found := *request
	return &found, nil
}

// AllRequests returns every help request in insertion order.
func (s *SupportStore) AllRequests() ([]schema.HelpRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterRequests(func(*schema.HelpRequest) bool { return true }), nil
}

// PendingRequests returns help requests still waiting for a consultant.
func (s *SupportStore) PendingRequests() ([]schema.HelpRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterRequests(func(r *schema.HelpRequest) bool {
		return r.Status == schema.REQUEST_PENDING
	}), nil
}

// RequestsByVictim returns the requests owned by the given victim.
func (s *SupportStore) RequestsByVictim(victimID string) ([]schema.HelpRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterRequests(func(r *schema.HelpRequest) bool {
		return r.VictimID == victimID
	}), nil
}

// RequestsByConsultant returns the requests assigned to the given
// consultant.
func (s *SupportStore) RequestsByConsultant(consultantID string) ([]schema.HelpRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterRequests(func(r *schema.HelpRequest) bool {
		return r.AssignedConsultantID == consultantID
	}), nil
}

// filterRequests walks the ordered id list and copies out every match,
// so callers get a fresh view and never alias store memory. Caller
// must hold at least the read lock.
func (s *SupportStore) filterRequests(match func(*schema.HelpRequest) bool) []schema.HelpRequest {
	requests := []schema.HelpRequest{}
	for _, id := range s.requestOrder {
		if r := s.requests[id]; match(r) {
			requests = append(requests, *r)
		}
	}
	return requests
}

package store

import (
	"sync"

	"github.com/safehaven-app/safehaven-api/fixture"
	"github.com/safehaven-app/safehaven-api/schema"
)

// safehaven main datastore
type SupportCore interface {
	Ping() error

	// Users
	UsersByRole(role string) ([]schema.User, error)
	VictimsWithRequests() ([]schema.User, error)

	// Help requests
	AllRequests() ([]schema.HelpRequest, error)
	PendingRequests() ([]schema.HelpRequest, error)
	RequestsByVictim(victimID string) ([]schema.HelpRequest, error)
	RequestsByConsultant(consultantID string) ([]schema.HelpRequest, error)
	GetRequest(id string) (*schema.HelpRequest, error)
	CreateRequest(params CreateRequestParams) (*schema.HelpRequest, error)
	UpdateRequest(id string, patch RequestPatch) (*schema.HelpRequest, error)

	// Donations
	DonationsByDonor(donorID string) ([]schema.Donation, error)
	CreateDonation(params CreateDonationParams) (*schema.Donation, error)

	// Consultations
	ConsultationsByConsultant(consultantID string) ([]schema.Consultation, error)
	ScheduleConsultation(params ScheduleConsultationParams) (*schema.Consultation, error)
}

// SupportStore is an in-memory implementation of SupportCore. Each
// collection is a map keyed by id plus an ordered id list, so lookups
// are O(1) while queries still iterate in insertion order. The store
// owns its collections for the process lifetime; nothing survives a
// restart.
//
// The lock exists because gin serves handlers on concurrent
// goroutines; the collections themselves follow the single-writer
// semantics of the app.
type SupportStore struct {
	mu sync.RWMutex

	users     map[string]*schema.User
	userOrder []string

	requests     map[string]*schema.HelpRequest
	requestOrder []string

	donations     map[string]*schema.Donation
	donationOrder []string

	consultations     map[string]*schema.Consultation
	consultationOrder []string
}

// NewSupportStore seeds a store from the bundled fixture collections.
// Consultations always start empty.
func NewSupportStore(data *fixture.Data) *SupportStore {
	s := &SupportStore{
		users:         map[string]*schema.User{},
		requests:      map[string]*schema.HelpRequest{},
		donations:     map[string]*schema.Donation{},
		consultations: map[string]*schema.Consultation{},
	}

	for i := range data.Users {
		u := data.Users[i]
		s.users[u.ID] = &u
		s.userOrder = append(s.userOrder, u.ID)
	}
	for i := range data.Requests {
		r := data.Requests[i]
		s.requests[r.ID] = &r
		s.requestOrder = append(s.requestOrder, r.ID)
	}
	for i := range data.Donations {
		d := data.Donations[i]
		s.donations[d.ID] = &d
		s.donationOrder = append(s.donationOrder, d.ID)
	}

	return s
}

// Ping is to check the storage health status
func (s *SupportStore) Ping() error {
	return nil
}

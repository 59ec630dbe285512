package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/safehaven-app/safehaven-api/schema"
)

// CreateDonationParams carries the caller-supplied fields of a new
// donation. Amount validation (> 0) happens at the API layer before
// the store is reached; the store records whatever it is handed.
type CreateDonationParams struct {
	DonorID       string
	RecipientID   string
	RecipientType string
	Amount        float64
	Message       string
}

// CreateDonation appends a donation record. Donations are immutable
// and never change any help request as a side effect.
func (s *SupportStore) CreateDonation(params CreateDonationParams) (*schema.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	donation := schema.Donation{
		ID:            uuid.NewString(),
		DonorID:       params.DonorID,
		RecipientID:   params.RecipientID,
		RecipientType: params.RecipientType,
		Amount:        params.Amount,
		Message:       params.Message,
		CreatedAt:     time.Now().UTC(),
	}

	s.donations[donation.ID] = &donation
	s.donationOrder = append(s.donationOrder, donation.ID)

	stored := donation
	return &stored, nil
}

// DonationsByDonor returns the donations made by the given donor, in
// insertion order.
func (s *SupportStore) DonationsByDonor(donorID string) ([]schema.Donation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	donations := []schema.Donation{}
	for _, id := range s.donationOrder {
		if d := s.donations[id]; d.DonorID == donorID {
			donations = append(donations, *d)
		}
	}

	return donations, nil
}

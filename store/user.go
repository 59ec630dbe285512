package store

import (
	"github.com/safehaven-app/safehaven-api/schema"
)

// UsersByRole returns the seeded users carrying the given role, in
// roster order. Users created through registration never join this
// roster; they are only visible through the session directory.
func (s *SupportStore) UsersByRole(role string) ([]schema.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := []schema.User{}
	for _, id := range s.userOrder {
		if u := s.users[id]; u.Role == role {
			users = append(users, *u)
		}
	}

	return users, nil
}

// VictimsWithRequests returns every victim that owns at least one help
// request, each victim once, in roster order.
func (s *SupportStore) VictimsWithRequests() ([]schema.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	victimIDs := map[string]bool{}
	for _, id := range s.requestOrder {
		victimIDs[s.requests[id].VictimID] = true
	}

	victims := []schema.User{}
	for _, id := range s.userOrder {
		if u := s.users[id]; u.Role == schema.ROLE_VICTIM && victimIDs[u.ID] {
			victims = append(victims, *u)
		}
	}

	return victims, nil
}

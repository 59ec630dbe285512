package session

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/safehaven-app/safehaven-api/schema"
)

// memorySlot is an in-process stand-in for the durable slot.
type memorySlot struct {
	data    []byte
	readErr error
}

func (s *memorySlot) Read() ([]byte, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.data, nil
}

func (s *memorySlot) Write(data []byte) error {
	s.data = data
	return nil
}

func (s *memorySlot) Erase() error {
	s.data = nil
	return nil
}

func testRoster() []schema.User {
	return []schema.User{
		{ID: "v1", Email: "maria@example.com", Password: "secret1", Name: "Maria", Role: schema.ROLE_VICTIM},
		{ID: "c1", Email: "amara@example.com", Password: "secret2", Name: "Amara", Role: schema.ROLE_CONSULTANT},
	}
}

func TestLoginMatch(t *testing.T) {
	slot := &memorySlot{}
	d := NewDirectory(testRoster(), slot)

	user, err := d.Login("maria@example.com", "secret1")
	assert.NoError(t, err)
	assert.Equal(t, "v1", user.ID)
	assert.True(t, d.IsAuthenticated())

	// the snapshot was persisted
	var persisted schema.User
	assert.NoError(t, json.Unmarshal(slot.data, &persisted))
	assert.Equal(t, "v1", persisted.ID)
}

func TestLoginMismatch(t *testing.T) {
	d := NewDirectory(testRoster(), &memorySlot{})

	cases := []struct {
		email    string
		password string
	}{
		{"maria@example.com", "wrong"},
		{"amara@example.com", "secret1"},
		{"nobody@example.com", "secret1"},
		{"", ""},
	}

	for _, c := range cases {
		user, err := d.Login(c.email, c.password)
		assert.Nil(t, user)
		assert.Equal(t, ErrCredentialMismatch, err)
	}

	assert.False(t, d.IsAuthenticated())
}

func TestRegister(t *testing.T) {
	d := NewDirectory(testRoster(), &memorySlot{})

	user := d.Register(RegisterParams{
		Email:    "new@example.com",
		Password: "pw",
		Name:     "Newcomer",
		Role:     schema.ROLE_DONOR,
	})

	assert.NotEmpty(t, user.ID)
	assert.False(t, user.Verified)

	current := d.Current()
	assert.Equal(t, user, current)

	other := d.Register(RegisterParams{Email: "other@example.com", Password: "pw", Name: "Other", Role: schema.ROLE_DONOR})
	assert.NotEqual(t, user.ID, other.ID)
}

func TestRegisterDoesNotJoinRoster(t *testing.T) {
	d := NewDirectory(testRoster(), &memorySlot{})

	d.Register(RegisterParams{
		Email:    "new@example.com",
		Password: "pw",
		Name:     "Newcomer",
		Role:     schema.ROLE_DONOR,
	})

	// the registered credentials resolve through Current only, never
	// through the fixed roster
	user, err := d.Login("new@example.com", "pw")
	assert.Nil(t, user)
	assert.Equal(t, ErrCredentialMismatch, err)
}

func TestCurrentHydratesFromSlotOnce(t *testing.T) {
	snapshot, _ := json.Marshal(schema.User{ID: "v1", Email: "maria@example.com", Role: schema.ROLE_VICTIM})
	slot := &memorySlot{data: snapshot}

	d := NewDirectory(testRoster(), slot)

	user := d.Current()
	assert.NotNil(t, user)
	assert.Equal(t, "v1", user.ID)

	// changing the slot after hydration has no effect
	slot.data = nil
	assert.NotNil(t, d.Current())
}

func TestCurrentWithCorruptSlot(t *testing.T) {
	d := NewDirectory(testRoster(), &memorySlot{data: []byte("{not json")})
	assert.Nil(t, d.Current())
	assert.False(t, d.IsAuthenticated())
}

func TestCurrentWithUnreadableSlot(t *testing.T) {
	d := NewDirectory(testRoster(), &memorySlot{readErr: fmt.Errorf("medium gone")})
	assert.Nil(t, d.Current())
}

func TestLogout(t *testing.T) {
	slot := &memorySlot{}
	d := NewDirectory(testRoster(), slot)

	_, err := d.Login("maria@example.com", "secret1")
	assert.NoError(t, err)

	d.Logout()

	assert.False(t, d.IsAuthenticated())
	assert.Nil(t, d.Current())
	assert.Empty(t, slot.data)
}

func TestFileSlotRoundTrip(t *testing.T) {
	path := t.TempDir() + "/session.json"
	slot := NewFileSlot(path)

	// absent slot reads as empty, not as an error
	b, err := slot.Read()
	assert.NoError(t, err)
	assert.Empty(t, b)

	assert.NoError(t, slot.Write([]byte(`{"id":"v1"}`)))

	b, err = slot.Read()
	assert.NoError(t, err)
	assert.Equal(t, `{"id":"v1"}`, string(b))

	assert.NoError(t, slot.Erase())
	assert.NoError(t, slot.Erase())

	b, err = slot.Read()
	assert.NoError(t, err)
	assert.Empty(t, b)
}

// Package session resolves and remembers the single active identity of
// the running process. It is constructed once in main and injected
// wherever the active user is needed; there is no package-level
// singleton.
package session

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/safehaven-app/safehaven-api/schema"
)

var log = logrus.WithField("prefix", "session")

var (
	ErrCredentialMismatch = fmt.Errorf("no account matches the given email and password")
)

// Directory holds the active user and resolves credentials against the
// fixed seeded roster. The roster is a private copy: registering a new
// user makes it the active user but never appends it to any queryable
// collection.
type Directory struct {
	mu       sync.Mutex
	roster   []schema.User
	slot     Slot
	current  *schema.User
	hydrated bool
}

func NewDirectory(roster []schema.User, slot Slot) *Directory {
	users := make([]schema.User, len(roster))
	copy(users, roster)

	return &Directory{
		roster: users,
		slot:   slot,
	}
}

// RegisterParams carries the profile fields of a self-registered user.
type RegisterParams struct {
	Email          string
	Password       string
	Name           string
	Phone          string
	Role           string
	Location       string
	Specialization string
	Description    string
}

// Login scans the roster for an exact email and password match.
// Secrets are compared in plaintext, faithfully to the seed format. A
// match becomes the active user and is written to the durable slot; no
// match yields ErrCredentialMismatch.
func (d *Directory) Login(email, password string) (*schema.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.roster {
		if d.roster[i].Email == email && d.roster[i].Password == password {
			user := d.roster[i]
			d.setCurrent(&user)

			found := user
			return &found, nil
		}
	}

	return nil, ErrCredentialMismatch
}

// Register creates a fresh unverified user and makes it the active
// user. The record is visible only through Current; it is never added
// to the roster Login and the record store query from.
func (d *Directory) Register(params RegisterParams) *schema.User {
	d.mu.Lock()
	defer d.mu.Unlock()

	user := schema.User{
		ID:             uuid.NewString(),
		Email:          params.Email,
		Password:       params.Password,
		Name:           params.Name,
		Phone:          params.Phone,
		Role:           params.Role,
		Location:       params.Location,
		Specialization: params.Specialization,
		Description:    params.Description,
		Verified:       false,
	}

	d.setCurrent(&user)

	registered := user
	return &registered
}

// Current returns the active user, hydrating it from the durable slot
// on the first call after process start. A missing or unreadable
// snapshot degrades to nil; it is logged, never returned.
func (d *Directory) Current() *schema.User {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.current == nil && !d.hydrated {
		d.hydrate()
	}

	if d.current == nil {
		return nil
	}

	user := *d.current
	return &user
}

// Logout clears the active user and erases the durable slot.
func (d *Directory) Logout() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.current = nil
	d.hydrated = true

	if err := d.slot.Erase(); err != nil {
		log.WithError(err).Warn("erase session snapshot")
	}
}

// IsAuthenticated reports whether an active user is set.
func (d *Directory) IsAuthenticated() bool {
	return d.Current() != nil
}

// setCurrent installs user as the active user and persists the
// snapshot. Persistence failures are logged and swallowed; the
// in-memory session stays valid either way. Caller must hold the lock.
func (d *Directory) setCurrent(user *schema.User) {
	d.current = user
	d.hydrated = true

	b, err := json.Marshal(user)
	if err != nil {
		log.WithError(err).Warn("serialize session snapshot")
		return
	}

	if err := d.slot.Write(b); err != nil {
		log.WithError(err).Warn("write session snapshot")
	}
}

// hydrate restores the active user from the durable slot. Runs at most
// once per process; any failure leaves the session empty. Caller must
// hold the lock.
func (d *Directory) hydrate() {
	d.hydrated = true

	b, err := d.slot.Read()
	if err != nil {
		log.WithError(err).Warn("read session snapshot")
		return
	}
	if len(b) == 0 {
		return
	}

	var user schema.User
	if err := json.Unmarshal(b, &user); err != nil {
		log.WithError(err).Warn("parse session snapshot")
		return
	}

	d.current = &user
}

// Package session keeps the signed-in user between runs.
//
// The value lives under a single key in a Storage adapter. Reads are schema
// checked: a value that is not well-formed JSON, or that fails validation,
// decodes as Invalid and callers treat it as being logged out.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/careerpath/internal/client/models"
)

// Key is the storage key of the session user.
const Key = "user"

// Storage is a durable string-keyed byte store. Get returns (nil, nil) when
// the key is absent.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type State int

const (
	Absent State = iota
	Valid
	Invalid
)

func (s State) String() string {
	switch s {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "absent"
	}
}

// Decoded is the outcome of reading the session. User is set only when
// State is Valid; Reason only when it is Invalid.
type Decoded struct {
	State  State
	User   models.SessionUser
	Reason error
}

// Current returns the user when the session is valid.
func (d Decoded) Current() (*models.SessionUser, bool) {
	if d.State != Valid {
		return nil, false
	}
	u := d.User
	return &u, true
}

type Store struct {
	storage  Storage
	validate *validator.Validate
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage, validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Get never fails: storage errors are reported as Invalid.
func (s *Store) Get(ctx context.Context) Decoded {
	raw, err := s.storage.Get(ctx, Key)
	if err != nil {
		return Decoded{State: Invalid, Reason: fmt.Errorf("read session: %w", err)}
	}
	if raw == nil {
		return Decoded{State: Absent}
	}

	var u models.SessionUser
	if err := json.Unmarshal(raw, &u); err != nil {
		return Decoded{State: Invalid, Reason: fmt.Errorf("decode session: %w", err)}
	}
	if err := s.validate.Struct(u); err != nil {
		return Decoded{State: Invalid, Reason: fmt.Errorf("validate session: %w", err)}
	}
	return Decoded{State: Valid, User: u}
}

// Set overwrites the stored user unconditionally.
func (s *Store) Set(ctx context.Context, u models.SessionUser) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.storage.Set(ctx, Key, data); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.storage.Delete(ctx, Key); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

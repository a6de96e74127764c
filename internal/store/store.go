// Package store owns the global application state read by the header and
// the screens: the active currency, the reporting range and the account
// selection. It is driven from the UI loop and is not safe for concurrent use.
package store

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"
)

// ErrInvalidCurrency is returned for codes that are not three ASCII letters.
var ErrInvalidCurrency = errors.New("invalid currency code")

// State is a snapshot of the global state.
type State struct {
	CurrencyCode       string
	Range              RangeDetails
	SelectedAccountIDs []string
}

// Clone returns a copy that shares no slices with s.
func (s State) Clone() State {
	s.SelectedAccountIDs = slices.Clone(s.SelectedAccountIDs)
	return s
}

// Action is a request to change the state.
type Action interface {
	apply(s *State, now time.Time) error
}

// SetRange shifts the active range by one width. Direction 0 resets to the
// window containing the current time.
type SetRange struct {
	Direction int
}

// SetRangeMonths changes the window width, keeping the current start inside it.
type SetRangeMonths struct {
	Months int
}

// SetCurrency selects the display currency.
type SetCurrency struct {
	Code string
}

// SetSelectedAccounts replaces the account filter. An empty list means all accounts.
type SetSelectedAccounts struct {
	IDs []string
}

func (a SetRange) apply(s *State, now time.Time) error {
	r, err := s.Range.Shift(a.Direction, now)
	if err != nil {
		return err
	}
	s.Range = r
	return nil
}

func (a SetRangeMonths) apply(s *State, _ time.Time) error {
	r, err := NewRange(s.Range.Start, a.Months)
	if err != nil {
		return err
	}
	s.Range = r
	return nil
}

func (a SetCurrency) apply(s *State, _ time.Time) error {
	code, err := NormalizeCurrency(a.Code)
	if err != nil {
		return err
	}
	s.CurrencyCode = code
	return nil
}

func (a SetSelectedAccounts) apply(s *State, _ time.Time) error {
	seen := make(map[string]bool, len(a.IDs))
	ids := make([]string, 0, len(a.IDs))
	for _, id := range a.IDs {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	s.SelectedAccountIDs = ids
	return nil
}

// NormalizeCurrency upper-cases and validates an ISO 4217 style code.
func NormalizeCurrency(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
		}
	}
	return code, nil
}

// Reduce applies action to a copy of state and returns the result. On error
// the input state is returned unchanged.
func Reduce(state State, action Action, now time.Time) (State, error) {
	next := state.Clone()
	if err := action.apply(&next, now); err != nil {
		return state, err
	}
	return next, nil
}

// Store holds the current State and counts changes.
type Store struct {
	state   State
	version uint64
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for range resets.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New returns a Store seeded with initial.
func New(initial State, opts ...Option) *Store {
	s := &Store{state: initial.Clone(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	return s.state.Clone()
}

// Version increments every time Dispatch changes the state.
func (s *Store) Version() uint64 {
	return s.version
}

// Dispatch applies action. Actions that leave the state unchanged do not bump
// the version.
func (s *Store) Dispatch(action Action) error {
	next, err := Reduce(s.state, action, s.now())
	if err != nil {
		return fmt.Errorf("dispatch %T: %w", action, err)
	}
	if equalState(next, s.state) {
		return nil
	}
	s.state = next
	s.version++
	return nil
}

// ShiftRange requests a one-width move of the active range. Failures are
// logged; the caller has nothing to recover.
func (s *Store) ShiftRange(direction int) {
	if err := s.Dispatch(SetRange{Direction: direction}); err != nil {
		log.Printf("store: %v", err)
		return
	}
	log.Printf("store: range now %s (%s - %s)", s.state.Range.Title,
		s.state.Range.Start.Format("2006-01-02"), s.state.Range.End.Format("2006-01-02"))
}

func equalState(a, b State) bool {
	return a.CurrencyCode == b.CurrencyCode &&
		a.Range.Title == b.Range.Title &&
		a.Range.Months == b.Range.Months &&
		a.Range.Start.Equal(b.Range.Start) &&
		a.Range.End.Equal(b.Range.End) &&
		slices.Equal(a.SelectedAccountIDs, b.SelectedAccountIDs)
}

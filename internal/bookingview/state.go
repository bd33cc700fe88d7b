package bookingview

import (
	"encoding/json"
	"sync"

	"frontdesk/internal/booking"
)

type mode int

const (
	modeForm mode = iota
	modeResult
)

// ViewState is the booking page's display state. It is a two-armed
// union: either the form is visible and no result is held, or a result
// is visible. The pairing is enforced by the constructors; there is no
// way to hide the form without supplying a result.
type ViewState struct {
	mode   mode
	result *booking.Result
	raw    json.RawMessage
}

// ShowingForm returns the initial state: form visible, nothing stored.
func ShowingForm() ViewState {
	return ViewState{mode: modeForm}
}

// ShowingResult returns the state after a completed booking attempt.
// raw, when non-nil, is the payload exactly as it arrived and feeds
// the debug panel. A nil result is coerced to the form state so the
// invariant holds.
func ShowingResult(result *booking.Result, raw json.RawMessage) ViewState {
	if result == nil {
		return ShowingForm()
	}
	return ViewState{mode: modeResult, result: result, raw: raw}
}

// FormVisible reports whether the booking form should be shown.
func (vs ViewState) FormVisible() bool {
	return vs.mode == modeForm
}

// Result returns the stored result and whether one is present. It is
// present exactly when the form is hidden.
func (vs ViewState) Result() (*booking.Result, bool) {
	if vs.mode != modeResult {
		return nil, false
	}
	return vs.result, true
}

// Raw returns the payload as received, when the result arrived over
// the completion endpoint rather than the form flow.
func (vs ViewState) Raw() json.RawMessage {
	return vs.raw
}

// Store keeps per-session view state. Sessions that have never
// completed a booking have no entry and read as the initial state.
type Store struct {
	mu     sync.RWMutex
	states map[string]ViewState
}

func NewStore() *Store {
	return &Store{states: make(map[string]ViewState)}
}

// Get returns the session's state, defaulting to the form state.
func (s *Store) Get(sessionID string) ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[sessionID]
	if !ok {
		return ShowingForm()
	}
	return state
}

// Complete stores the result and flips the session to the result view.
func (s *Store) Complete(sessionID string, result *booking.Result, raw json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[sessionID] = ShowingResult(result, raw)
}

// Reset returns the session to the initial state.
func (s *Store) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, sessionID)
}

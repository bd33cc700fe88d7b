package bookingview

import (
	"encoding/json"
	"testing"

	"frontdesk/internal/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowingFormIsInitialState(t *testing.T) {
	state := ShowingForm()

	assert.True(t, state.FormVisible())

	result, ok := state.Result()
	assert.False(t, ok)
	assert.Nil(t, result)
}

func TestShowingResultHidesForm(t *testing.T) {
	stored := &booking.Result{Success: true, Message: "booked"}

	state := ShowingResult(stored, nil)

	assert.False(t, state.FormVisible())

	result, ok := state.Result()
	require.True(t, ok)
	assert.Same(t, stored, result)
}

func TestShowingResultWithNilResultFallsBackToForm(t *testing.T) {
	state := ShowingResult(nil, json.RawMessage(`{"success":true}`))

	assert.True(t, state.FormVisible())

	_, ok := state.Result()
	assert.False(t, ok)
}

func TestStoreDefaultsToFormState(t *testing.T) {
	store := NewStore()

	state := store.Get("unknown-session")

	assert.True(t, state.FormVisible())
}

func TestStoreCompleteThenReset(t *testing.T) {
	store := NewStore()
	stored := &booking.Result{Success: true}

	store.Complete("s1", stored, nil)

	state := store.Get("s1")
	assert.False(t, state.FormVisible())
	result, ok := state.Result()
	require.True(t, ok)
	assert.Same(t, stored, result)

	// Other sessions are unaffected
	assert.True(t, store.Get("s2").FormVisible())

	store.Reset("s1")

	state = store.Get("s1")
	assert.True(t, state.FormVisible())
	_, ok = state.Result()
	assert.False(t, ok)
}

func TestStoreKeepsRawPayload(t *testing.T) {
	store := NewStore()
	raw := json.RawMessage(`{"success":true,"extra":"field"}`)

	store.Complete("s1", &booking.Result{Success: true}, raw)

	state := store.Get("s1")
	assert.Equal(t, raw, state.Raw())
}

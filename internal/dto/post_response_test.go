package dto

import (
	"encoding/json"
	"testing"
	"time"

	"admarket/internal/model"

	"github.com/stretchr/testify/require"
)

func TestNewAvailability(t *testing.T) {
	now := time.Now().UTC()

	t.Run("post without reservations", func(t *testing.T) {
		a := NewAvailability(&model.Post{WithReservation: false}, 0, now)
		require.False(t, a.AcceptsReservations)
		require.Nil(t, a.CurrentReservations)
		require.Nil(t, a.AvailableSlots)
		require.Nil(t, a.IsAvailable)
		require.Nil(t, a.IsExpired)

		body, err := json.Marshal(a)
		require.NoError(t, err)
		require.JSONEq(t, `{"accepts_reservations":false}`, string(body))
	})

	t.Run("limit with free slots", func(t *testing.T) {
		limit := 5
		a := NewAvailability(&model.Post{WithReservation: true, ReservationLimit: &limit}, 2, now)
		require.True(t, a.AcceptsReservations)
		require.Equal(t, 2, *a.CurrentReservations)
		require.Equal(t, 3, *a.AvailableSlots)
		require.True(t, *a.IsAvailable)
		require.False(t, *a.IsExpired)
	})

	t.Run("limit exhausted", func(t *testing.T) {
		limit := 2
		a := NewAvailability(&model.Post{WithReservation: true, ReservationLimit: &limit}, 2, now)
		require.Equal(t, 0, *a.AvailableSlots)
		require.False(t, *a.IsAvailable)
	})

	t.Run("no limit means always available", func(t *testing.T) {
		a := NewAvailability(&model.Post{WithReservation: true}, 100, now)
		require.Equal(t, 100, *a.CurrentReservations)
		require.Nil(t, a.AvailableSlots)
		require.True(t, *a.IsAvailable)
	})

	t.Run("reservation time passed", func(t *testing.T) {
		past := now.Add(-time.Hour)
		a := NewAvailability(&model.Post{WithReservation: true, ReservationTime: &past}, 0, now)
		require.True(t, *a.IsExpired)
	})

	t.Run("reservation time in the future", func(t *testing.T) {
		future := now.Add(time.Hour)
		a := NewAvailability(&model.Post{WithReservation: true, ReservationTime: &future}, 0, now)
		require.False(t, *a.IsExpired)
	})
}

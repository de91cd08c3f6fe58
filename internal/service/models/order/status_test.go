package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []Status{
		StatusPending, StatusConfirmed, StatusProcessing,
		StatusShipped, StatusDelivered, StatusCancelled, StatusRefunded,
	} {
		parsed, err := ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := ParseStatus("teleported")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ParseStatus("Pending")
	assert.ErrorIs(t, err, ErrInvalidStatus, "status values are case sensitive")
}

func TestCanTransitionTo(t *testing.T) {
	legal := []struct{ from, to Status }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusProcessing},
		{StatusConfirmed, StatusCancelled},
		{StatusProcessing, StatusShipped},
		{StatusShipped, StatusDelivered},
		{StatusDelivered, StatusRefunded},
	}
	for _, tt := range legal {
		assert.True(t, tt.from.CanTransitionTo(tt.to), "%s -> %s must be legal", tt.from, tt.to)
	}

	illegal := []struct{ from, to Status }{
		{StatusPending, StatusShipped},
		{StatusConfirmed, StatusDelivered},
		{StatusProcessing, StatusCancelled},
		{StatusShipped, StatusProcessing},
		{StatusDelivered, StatusPending},
		{StatusCancelled, StatusConfirmed},
		{StatusRefunded, StatusDelivered},
		{StatusPending, StatusPending},
	}
	for _, tt := range illegal {
		assert.False(t, tt.from.CanTransitionTo(tt.to), "%s -> %s must be rejected", tt.from, tt.to)
	}
}

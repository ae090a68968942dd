package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusReady, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false}, // skipping ready
		{StatusReady, StatusCompleted, true},
		{StatusReady, StatusCancelled, true},
		{StatusReady, StatusPending, false},
		{StatusCompleted, StatusReady, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusPending, StatusPending, false}, // no self-loops
		{StatusReady, StatusReady, false},
	}

	for _, tc := range cases {
		got := tc.from.CanTransitionTo(tc.to)
		assert.Equal(t, tc.allowed, got, "%s -> %s", tc.from, tc.to)
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusReady.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.False(t, Status("shipped").Valid())
	assert.False(t, Status("").Valid())
}

func TestItemSubtotal(t *testing.T) {
	item := Item{Quantity: 3, UnitPrice: 15.50}
	assert.Equal(t, 46.5, item.Subtotal())
}

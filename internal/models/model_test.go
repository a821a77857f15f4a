package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderStatus_CanTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{name: "awaiting_to_placed", from: OrderAwaitingConfirmation, to: OrderPlaced, want: true},
		{name: "placed_to_accepted", from: OrderPlaced, to: OrderAccepted, want: true},
		{name: "accepted_to_shipped", from: OrderAccepted, to: OrderShipped, want: true},
		{name: "shipped_to_delivered", from: OrderShipped, to: OrderDelivered, want: true},
		{name: "placed_to_shipped_skips", from: OrderPlaced, to: OrderShipped, want: false},
		{name: "backwards", from: OrderShipped, to: OrderAccepted, want: false},
		{name: "cancel_from_awaiting", from: OrderAwaitingConfirmation, to: OrderCancelled, want: true},
		{name: "cancel_from_shipped", from: OrderShipped, to: OrderCancelled, want: true},
		{name: "cancel_after_delivered", from: OrderDelivered, to: OrderCancelled, want: false},
		{name: "cancel_after_cancelled", from: OrderCancelled, to: OrderCancelled, want: false},
		{name: "leave_delivered", from: OrderDelivered, to: OrderPlaced, want: false},
		{name: "self_transition", from: OrderPlaced, to: OrderPlaced, want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, tc.from.CanTransition(tc.to))
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	t.Parallel()

	require.True(t, OrderDelivered.IsTerminal())
	require.True(t, OrderCancelled.IsTerminal())
	require.False(t, OrderAwaitingConfirmation.IsTerminal())
	require.False(t, OrderPlaced.IsTerminal())
	require.False(t, OrderAccepted.IsTerminal())
	require.False(t, OrderShipped.IsTerminal())
}

func TestValidOrderStatus(t *testing.T) {
	t.Parallel()

	for _, s := range []OrderStatus{OrderAwaitingConfirmation, OrderPlaced, OrderAccepted, OrderShipped, OrderDelivered, OrderCancelled} {
		require.True(t, ValidOrderStatus(s))
	}
	require.False(t, ValidOrderStatus("Teleported"))
	require.False(t, ValidOrderStatus(""))
	require.False(t, ValidOrderStatus("placed")) // statuses are case sensitive
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		allowed  bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusConfirmed, OrderStatusPreparing, true},
		{OrderStatusPreparing, OrderStatusDispatched, true},
		{OrderStatusDispatched, OrderStatusDelivered, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusDispatched, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusConfirmed, OrderStatusPending, false},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusConfirmed, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, OrderStatusDelivered.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.False(t, OrderStatusDispatched.IsTerminal())
}

func TestOrderLineTotal(t *testing.T) {
	line := OrderLine{UnitPrice: 129.90, Quantity: 2}
	assert.InDelta(t, 259.80, line.Total(), 0.001)
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "Aguardando confirmação", OrderStatusPending.Label())
	assert.Equal(t, "Pedido entregue", OrderStatusDelivered.Label())
	assert.NotEmpty(t, OrderStatus("weird").Label())
}

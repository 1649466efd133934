package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kusamnavya/shopping-cart/internal/entities"
)

func TestOrderStatus_CanPay(t *testing.T) {
	cases := []struct {
		status entities.OrderStatus
		want   bool
	}{
		{entities.StatusCreated, true},
		{entities.StatusCompleted, true},
		{entities.StatusPaid, false},
		{entities.StatusCancelled, false},
		{entities.StatusShipped, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.status.CanPay())
		})
	}
}

func TestOrderStatus_CanCancel(t *testing.T) {
	cases := []struct {
		status entities.OrderStatus
		want   bool
	}{
		{entities.StatusCreated, true},
		{entities.StatusPaid, true},
		{entities.StatusCompleted, false},
		{entities.StatusCancelled, false},
		{entities.StatusShipped, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.status.CanCancel())
		})
	}
}

func TestOrderStatus_GuardSets(t *testing.T) {
	all := []entities.OrderStatus{
		entities.StatusCreated,
		entities.StatusPaid,
		entities.StatusCancelled,
		entities.StatusCompleted,
		entities.StatusShipped,
	}

	payable := entities.PayableStatuses()
	cancellable := entities.CancellableStatuses()

	for _, s := range all {
		assert.Equal(t, s.CanPay(), contains(payable, s), "payable guard for %s", s)
		assert.Equal(t, s.CanCancel(), contains(cancellable, s), "cancellable guard for %s", s)
	}
}

func contains(set []entities.OrderStatus, s entities.OrderStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, entities.StatusCreated.Valid())
	assert.True(t, entities.StatusShipped.Valid())
	assert.False(t, entities.OrderStatus("UNKNOWN").Valid())
	assert.False(t, entities.OrderStatus("").Valid())
}

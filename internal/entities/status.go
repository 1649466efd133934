package entities

// OrderStatus is the state of the order lifecycle machine.
// Transitions owned by this core: CREATED -> PAID (payment) and
// CREATED/PAID -> CANCELLED (cancellation). COMPLETED and SHIPPED
// are set by external fulfillment, this core only gates on them.
type OrderStatus string

const (
	StatusCreated   OrderStatus = "CREATED"
	StatusPaid      OrderStatus = "PAID"
	StatusCancelled OrderStatus = "CANCELLED"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusShipped   OrderStatus = "SHIPPED"
)

// CanPay reports whether a payment may be applied. Cancelled and
// shipped orders cannot be paid; an order is also paid at most once,
// so an already paid order is rejected too.
func (s OrderStatus) CanPay() bool {
	switch s {
	case StatusPaid, StatusCancelled, StatusShipped:
		return false
	default:
		return true
	}
}

// CanCancel reports whether the order may still be cancelled.
func (s OrderStatus) CanCancel() bool {
	return s == StatusCreated || s == StatusPaid
}

// PayableStatuses is the guard set for the conditional status update
// behind ApplyPayment. Kept in sync with CanPay.
func PayableStatuses() []OrderStatus {
	return []OrderStatus{StatusCreated, StatusCompleted}
}

// CancellableStatuses is the guard set for the conditional status
// update behind Cancel. Kept in sync with CanCancel.
func CancellableStatuses() []OrderStatus {
	return []OrderStatus{StatusCreated, StatusPaid}
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusCreated, StatusPaid, StatusCancelled, StatusCompleted, StatusShipped:
		return true
	default:
		return false
	}
}

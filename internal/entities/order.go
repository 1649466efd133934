package entities

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem is a snapshot of a cart line taken at conversion time.
// Immutable after the order is created.
type OrderItem struct {
	ProductID  uuid.UUID
	Quantity   int
	LineAmount decimal.Decimal
}

// Payment records a single payment applied to an order. Payments are
// append-only, they are never mutated or removed.
type Payment struct {
	PaymentID       uuid.UUID
	PaymentMethodID uuid.UUID
	Amount          decimal.Decimal
	PaidAt          time.Time
}

// Order is the lifecycle aggregate. Items and SubTotal are frozen at
// conversion time, after that only the status, the address references
// and the payment set change.
type Order struct {
	OrderID  uuid.UUID
	OrderKey string
	UserID   uuid.UUID

	// адреса присваиваются отдельно от создания заказа, поэтому указатели
	BillingAddressID  *uuid.UUID
	ShippingAddressID *uuid.UUID

	Items    []OrderItem
	Payments []Payment

	SubTotal  decimal.Decimal
	Status    OrderStatus
	CreatedAt time.Time
}

func (o Order) IsEmpty() bool {
	return len(o.Items) == 0
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
	gob.Register(Payment{})
}

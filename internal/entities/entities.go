package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User is an identity reference managed by the account service.
// This core reads it, never mutates it.
type User struct {
	UserID   uuid.UUID
	Username string
}

// Product is an opaque catalog reference. Price is read at
// conversion time to compute order line amounts.
type Product struct {
	ProductID uuid.UUID
	Name      string
	Serial    string
	Price     decimal.Decimal
}

type Address struct {
	AddressID uuid.UUID
	UserID    uuid.UUID
	Street    string
	City      string
	State     string
	Zip       string
}

type PaymentType string

const (
	PaymentTypeCard     PaymentType = "CARD"
	PaymentTypePaypal   PaymentType = "PAYPAL"
	PaymentTypeTransfer PaymentType = "TRANSFER"
)

type PaymentMethod struct {
	PaymentMethodID uuid.UUID
	UserID          uuid.UUID
	Name            string
	Type            PaymentType
}

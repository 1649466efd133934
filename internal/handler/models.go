package handler

import (
	"time"

	"github.com/kusamnavya/shopping-cart/internal/entities"
)

// Cart представляет корзину пользователя
type Cart struct {
	CartID string     `json:"cart_id"`
	UserID string     `json:"user_id"`
	Items  []CartItem `json:"items"`
	Empty  bool       `json:"empty"`
}

type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Order представляет заказ
type Order struct {
	OrderID           string      `json:"order_id"`
	OrderKey          string      `json:"order_key"`
	UserID            string      `json:"user_id"`
	BillingAddressID  *string     `json:"billing_address_id,omitempty"`
	ShippingAddressID *string     `json:"shipping_address_id,omitempty"`
	Items             []OrderItem `json:"items"`
	Payments          []Payment   `json:"payments,omitempty"`
	SubTotal          string      `json:"sub_total"`
	Status            string      `json:"status"`
	CreatedAt         time.Time   `json:"created_at"`
}

type OrderItem struct {
	ProductID  string `json:"product_id"`
	Quantity   int    `json:"quantity"`
	LineAmount string `json:"line_amount"`
}

type Payment struct {
	PaymentID       string    `json:"payment_id"`
	PaymentMethodID string    `json:"payment_method_id"`
	Amount          string    `json:"amount"`
	PaidAt          time.Time `json:"paid_at"`
}

type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	// Quantity по умолчанию 1
	Quantity int `json:"quantity" validate:"gte=0"`
}

type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

type ApplyPaymentRequest struct {
	PaymentMethodID string `json:"payment_method_id" validate:"required,uuid"`
}

type SetAddressesRequest struct {
	BillingAddressID  *string `json:"billing_address_id" validate:"omitempty,uuid"`
	ShippingAddressID *string `json:"shipping_address_id" validate:"omitempty,uuid"`
}

func CartEntityToJSON(c entities.Cart) Cart {
	items := make([]CartItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, CartItem{
			ProductID: it.ProductID.String(),
			Quantity:  it.Quantity,
		})
	}

	return Cart{
		CartID: c.CartID.String(),
		UserID: c.UserID.String(),
		Items:  items,
		Empty:  c.IsEmpty(),
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ProductID:  it.ProductID.String(),
			Quantity:   it.Quantity,
			LineAmount: it.LineAmount.String(),
		})
	}

	payments := make([]Payment, 0, len(o.Payments))
	for _, p := range o.Payments {
		payments = append(payments, Payment{
			PaymentID:       p.PaymentID.String(),
			PaymentMethodID: p.PaymentMethodID.String(),
			Amount:          p.Amount.String(),
			PaidAt:          p.PaidAt,
		})
	}

	order := Order{
		OrderID:   o.OrderID.String(),
		OrderKey:  o.OrderKey,
		UserID:    o.UserID.String(),
		Items:     items,
		Payments:  payments,
		SubTotal:  o.SubTotal.String(),
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
	}

	if o.BillingAddressID != nil {
		id := o.BillingAddressID.String()
		order.BillingAddressID = &id
	}
	if o.ShippingAddressID != nil {
		id := o.ShippingAddressID.String()
		order.ShippingAddressID = &id
	}

	return order
}

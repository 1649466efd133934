package repo

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kusamnavya/shopping-cart/internal/entities"
)

type User struct {
	UserID   uuid.UUID `db:"user_id"`
	Username string    `db:"username"`
}

type Product struct {
	ProductID uuid.UUID       `db:"product_id"`
	Name      string          `db:"name"`
	Serial    sql.NullString  `db:"serial"`
	Price     decimal.Decimal `db:"price"`
}

type Cart struct {
	CartID uuid.UUID `db:"cart_id"`
	UserID uuid.UUID `db:"user_id"`
}

type CartItem struct {
	CartID    uuid.UUID `db:"cart_id"`
	ProductID uuid.UUID `db:"product_id"`
	Quantity  int       `db:"quantity"`
}

type Order struct {
	OrderID           uuid.UUID       `db:"order_id"`
	OrderKey          string          `db:"order_key"`
	UserID            uuid.UUID       `db:"user_id"`
	BillingAddressID  uuid.NullUUID   `db:"billing_address_id"`
	ShippingAddressID uuid.NullUUID   `db:"shipping_address_id"`
	SubTotal          decimal.Decimal `db:"sub_total"`
	Status            string          `db:"status"`
	CreatedAt         time.Time       `db:"created_at"`
}

type OrderItem struct {
	OrderID    uuid.UUID       `db:"order_id"`
	ProductID  uuid.UUID       `db:"product_id"`
	Quantity   int             `db:"quantity"`
	LineAmount decimal.Decimal `db:"line_amount"`
}

type Payment struct {
	PaymentID       uuid.UUID       `db:"payment_id"`
	OrderID         uuid.UUID       `db:"order_id"`
	PaymentMethodID uuid.UUID       `db:"payment_method_id"`
	Amount          decimal.Decimal `db:"amount"`
	PaidAt          time.Time       `db:"paid_at"`
}

func UserToEntity(u User) entities.User {
	return entities.User{
		UserID:   u.UserID,
		Username: u.Username,
	}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ProductID: p.ProductID,
		Name:      p.Name,
		Serial:    nullStringToString(p.Serial),
		Price:     p.Price,
	}
}

func CartToEntity(c Cart, items []CartItem) entities.Cart {
	cart := entities.Cart{
		CartID: c.CartID,
		UserID: c.UserID,
	}
	if len(items) > 0 {
		cart.Items = make([]entities.CartItem, 0, len(items))
		for _, it := range items {
			cart.Items = append(cart.Items, entities.CartItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
			})
		}
	}
	return cart
}

func OrderItemToEntity(it OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ProductID:  it.ProductID,
		Quantity:   it.Quantity,
		LineAmount: it.LineAmount,
	}
}

func PaymentToEntity(p Payment) entities.Payment {
	return entities.Payment{
		PaymentID:       p.PaymentID,
		PaymentMethodID: p.PaymentMethodID,
		Amount:          p.Amount,
		PaidAt:          p.PaidAt,
	}
}

func OrderToEntity(o Order, items []OrderItem, payments []Payment) entities.Order {
	order := entities.Order{
		OrderID:           o.OrderID,
		OrderKey:          o.OrderKey,
		UserID:            o.UserID,
		BillingAddressID:  nullUUIDToPtr(o.BillingAddressID),
		ShippingAddressID: nullUUIDToPtr(o.ShippingAddressID),
		SubTotal:          o.SubTotal,
		Status:            entities.OrderStatus(o.Status),
		CreatedAt:         o.CreatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, OrderItemToEntity(it))
		}
	}
	if len(payments) > 0 {
		order.Payments = make([]entities.Payment, 0, len(payments))
		for _, p := range payments {
			order.Payments = append(order.Payments, PaymentToEntity(p))
		}
	}

	return order
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullUUIDToPtr(nu uuid.NullUUID) *uuid.UUID {
	if !nu.Valid {
		return nil
	}
	id := nu.UUID
	return &id
}

func ptrToNullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

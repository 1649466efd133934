package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/kusamnavya/shopping-cart/internal/entities"
)

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID uuid.UUID) (entities.Order, error) {
	query, args := r.qb.Select(
		"order_id", "order_key", "user_id", "billing_address_id",
		"shipping_address_id", "sub_total", "status", "created_at").
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("order_id", "product_id", "quantity", "line_amount").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to select order items: %w", err)
	}

	query, args = r.qb.Select("payment_id", "order_id", "payment_method_id", "amount", "paid_at").
		From("payments").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("paid_at").
		MustSql()

	var payments []Payment
	if err := r.selectContext(ctx, &payments, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to select payments: %w", err)
	}

	return OrderToEntity(order, items, payments), nil
}

func (r *postgresRepo) ListOrdersByUserID(ctx context.Context, userID uuid.UUID) ([]entities.Order, error) {
	query, args := r.qb.Select(
		"order_id", "order_key", "user_id", "billing_address_id",
		"shipping_address_id", "sub_total", "status", "created_at").
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]uuid.UUID, len(orders))
	for i, o := range orders {
		ids[i] = o.OrderID
	}

	query, args = r.qb.Select("order_id", "product_id", "quantity", "line_amount").
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	itemsMap := make(map[uuid.UUID][]OrderItem, len(ids))
	for _, it := range items {
		itemsMap[it.OrderID] = append(itemsMap[it.OrderID], it)
	}

	query, args = r.qb.Select("payment_id", "order_id", "payment_method_id", "amount", "paid_at").
		From("payments").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("paid_at").
		MustSql()

	var payments []Payment
	if err := r.selectContext(ctx, &payments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select payments: %w", err)
	}
	paymentsMap := make(map[uuid.UUID][]Payment, len(ids))
	for _, p := range payments {
		paymentsMap[p.OrderID] = append(paymentsMap[p.OrderID], p)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, itemsMap[o.OrderID], paymentsMap[o.OrderID]))
	}

	return result, nil
}

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(
			"order_id", "order_key", "user_id", "billing_address_id",
			"shipping_address_id", "sub_total", "status", "created_at",
		).
		Values(
			o.OrderID, o.OrderKey, o.UserID, ptrToNullUUID(o.BillingAddressID),
			ptrToNullUUID(o.ShippingAddressID), o.SubTotal, string(o.Status), o.CreatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveOrderItems(ctx context.Context, orderID uuid.UUID, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "product_id", "quantity", "line_amount")

	for _, it := range items {
		q = q.Values(orderID, it.ProductID, it.Quantity, it.LineAmount)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

func (r *postgresRepo) SavePayment(ctx context.Context, orderID uuid.UUID, p entities.Payment) error {
	query, args := r.qb.Insert("payments").
		Columns("payment_id", "order_id", "payment_method_id", "amount", "paid_at").
		Values(p.PaymentID, orderID, p.PaymentMethodID, p.Amount, p.PaidAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}
	return nil
}

// UpdateOrderStatus moves the order to status. When from is given the
// update is conditional on the committed status still being one of
// from: a transition raced by another committed transition then
// affects zero rows and fails with ErrInvalidOrderOperation instead
// of overwriting the winner. Under READ COMMITTED the UPDATE blocks
// on the concurrent writer's row lock and re-reads the committed row,
// so the predicate is evaluated against the committed status, not the
// snapshot this transaction started from.
func (r *postgresRepo) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status entities.OrderStatus, from ...entities.OrderStatus) error {
	q := r.qb.Update("orders").
		Set("status", string(status)).
		Where(sq.Eq{"order_id": orderID})

	if len(from) > 0 {
		allowed := make([]string, len(from))
		for i, s := range from {
			allowed[i] = string(s)
		}
		q = q.Where(sq.Eq{"status": allowed})
	}

	query, args := q.MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		if len(from) > 0 {
			return entities.ErrInvalidOrderOperation
		}
		return entities.ErrOrderNotFound
	}
	return nil
}

// UpdateOrderAddresses reassigns the billing and/or shipping address.
// A nil id leaves the corresponding side unchanged. Deliberately
// unguarded by status.
func (r *postgresRepo) UpdateOrderAddresses(ctx context.Context, orderID uuid.UUID, billingID, shippingID *uuid.UUID) error {
	if billingID == nil && shippingID == nil {
		return nil
	}

	q := r.qb.Update("orders").Where(sq.Eq{"order_id": orderID})
	if billingID != nil {
		q = q.Set("billing_address_id", *billingID)
	}
	if shippingID != nil {
		q = q.Set("shipping_address_id", *shippingID)
	}

	query, args := q.MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order addresses: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

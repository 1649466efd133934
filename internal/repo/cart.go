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

func (r *postgresRepo) GetCartByUserID(ctx context.Context, userID uuid.UUID) (entities.Cart, error) {
	query, args := r.qb.Select("cart_id", "user_id").
		From("carts").
		Where(sq.Eq{"user_id": userID}).
		MustSql()

	var cart Cart
	err := r.getContext(ctx, &cart, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Cart{}, entities.ErrCartNotFound
	}
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to get cart: %w", err)
	}

	query, args = r.qb.Select("cart_id", "product_id", "quantity").
		From("cart_items").
		Where(sq.Eq{"cart_id": cart.CartID}).
		MustSql()

	var items []CartItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Cart{}, fmt.Errorf("failed to select cart items: %w", err)
	}

	return CartToEntity(cart, items), nil
}

// CreateCart is idempotent per user: the unique constraint on user_id
// keeps the at-most-one-cart-per-user invariant.
func (r *postgresRepo) CreateCart(ctx context.Context, cart entities.Cart) error {
	query, args := r.qb.Insert("carts").
		Columns("cart_id", "user_id").
		Values(cart.CartID, cart.UserID).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create cart: %w", err)
	}
	return nil
}

// ReplaceCartItems swaps the cart's item set for the given one.
// Delete plus insert inside the ambient transaction makes every cart
// mutation all-or-nothing.
func (r *postgresRepo) ReplaceCartItems(ctx context.Context, cartID uuid.UUID, items []entities.CartItem) error {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"cart_id": cartID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete cart items: %w", err)
	}

	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("cart_items").
		Columns("cart_id", "product_id", "quantity")

	for _, it := range items {
		q = q.Values(cartID, it.ProductID, it.Quantity)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert cart items: %w", err)
	}
	return nil
}

func (r *postgresRepo) ClearCart(ctx context.Context, cartID uuid.UUID) error {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"cart_id": cartID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

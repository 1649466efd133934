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

func (r *postgresRepo) GetUserByID(ctx context.Context, userID uuid.UUID) (entities.User, error) {
	query, args := r.qb.Select("user_id", "username").
		From("users").
		Where(sq.Eq{"user_id": userID}).
		MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return UserToEntity(user), nil
}

func (r *postgresRepo) GetUserByUsername(ctx context.Context, username string) (entities.User, error) {
	query, args := r.qb.Select("user_id", "username").
		From("users").
		Where(sq.Eq{"username": username}).
		MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return UserToEntity(user), nil
}

// GetProductsByIDs returns the catalog snapshot for the requested
// products, keyed by product id. Missing products are simply absent
// from the map, the caller decides whether that is an error.
func (r *postgresRepo) GetProductsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entities.Product, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]entities.Product{}, nil
	}

	query, args := r.qb.Select("product_id", "name", "serial", "price").
		From("products").
		Where(sq.Eq{"product_id": ids}).
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make(map[uuid.UUID]entities.Product, len(products))
	for _, p := range products {
		result[p.ProductID] = ProductToEntity(p)
	}
	return result, nil
}

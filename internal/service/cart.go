package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kusamnavya/shopping-cart/internal/entities"
	"github.com/kusamnavya/shopping-cart/pkg/trm"
	"github.com/kusamnavya/shopping-cart/pkg/utils"
)

type UserRepo interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (entities.User, error)
}

type CartRepo interface {
	GetCartByUserID(ctx context.Context, userID uuid.UUID) (entities.Cart, error)
	CreateCart(ctx context.Context, cart entities.Cart) error

	// ReplaceCartItems перезаписывает состав корзины целиком
	ReplaceCartItems(ctx context.Context, cartID uuid.UUID, items []entities.CartItem) error
	ClearCart(ctx context.Context, cartID uuid.UUID) error
}

type cartService struct {
	logger    *slog.Logger
	txManager trm.Manager
	users     UserRepo
	carts     CartRepo
}

func NewCartService(logger *slog.Logger, txManager trm.Manager, users UserRepo, carts CartRepo) *cartService {
	return &cartService{
		logger:    logger.With(slog.String("service", "cart")),
		txManager: txManager,
		users:     users,
		carts:     carts,
	}
}

var retryCfg = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

// AddItem adds quantity of the product to the user's cart, creating
// the cart on first use. Quantities for the same product accumulate.
// A non-positive quantity means the default of one.
func (s *cartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (entities.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}
	return s.mutate(ctx, userID, func(cart *entities.Cart) {
		cart.AddItem(productID, quantity)
	})
}

// RemoveItem drops the product line from the cart. Removal is
// best-effort: removing a product that is not in the cart is a no-op.
func (s *cartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (entities.Cart, error) {
	return s.mutate(ctx, userID, func(cart *entities.Cart) {
		cart.RemoveItem(productID)
	})
}

// UpdateItem sets the absolute quantity of the product line. A
// quantity of zero or less removes the line.
func (s *cartService) UpdateItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (entities.Cart, error) {
	return s.mutate(ctx, userID, func(cart *entities.Cart) {
		cart.SetItemQuantity(productID, quantity)
	})
}

func (s *cartService) Clear(ctx context.Context, userID uuid.UUID) (entities.Cart, error) {
	return s.mutate(ctx, userID, func(cart *entities.Cart) {
		cart.Clear()
	})
}

func (s *cartService) FindByUserID(ctx context.Context, userID uuid.UUID) (entities.Cart, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to resolve user: %w", err)
	}
	return s.carts.GetCartByUserID(ctx, user.UserID)
}

func (s *cartService) FindByUsername(ctx context.Context, username string) (entities.Cart, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to resolve user: %w", err)
	}
	return s.carts.GetCartByUserID(ctx, user.UserID)
}

// mutate loads (or lazily creates) the user's cart, applies fn to the
// in-memory item set and re-persists the whole set in one
// transaction. A crash mid-update can never leave a partially
// updated cart.
func (s *cartService) mutate(ctx context.Context, userID uuid.UUID, fn func(cart *entities.Cart)) (entities.Cart, error) {
	var cart entities.Cart

	op := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			user, err := s.users.GetUserByID(ctx, userID)
			if err != nil {
				return fmt.Errorf("failed to resolve user: %w", err)
			}

			cart, err = s.carts.GetCartByUserID(ctx, user.UserID)
			if errors.Is(err, entities.ErrCartNotFound) {
				cart = entities.Cart{CartID: uuid.New(), UserID: user.UserID}
				if err := s.carts.CreateCart(ctx, cart); err != nil {
					return fmt.Errorf("failed to create cart: %w", err)
				}
			} else if err != nil {
				return fmt.Errorf("failed to get cart: %w", err)
			}

			fn(&cart)

			if err := s.carts.ReplaceCartItems(ctx, cart.CartID, cart.Items); err != nil {
				return fmt.Errorf("failed to save cart items: %w", err)
			}

			s.logger.Debug("cart updated", "user_id", userID, "items", len(cart.Items))
			return nil
		})
	}

	if err := utils.Retry(retryCfg, op, entities.ErrUserNotFound); err != nil {
		return entities.Cart{}, err
	}
	return cart, nil
}

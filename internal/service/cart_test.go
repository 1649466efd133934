package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kusamnavya/shopping-cart/internal/entities"
	"github.com/kusamnavya/shopping-cart/internal/service"
	mocks "github.com/kusamnavya/shopping-cart/internal/service/mocks"
	txMocks "github.com/kusamnavya/shopping-cart/pkg/trm/mocks"
)

type cartAPI interface {
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (entities.Cart, error)
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (entities.Cart, error)
	UpdateItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (entities.Cart, error)
	Clear(ctx context.Context, userID uuid.UUID) (entities.Cart, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (entities.Cart, error)
	FindByUsername(ctx context.Context, username string) (entities.Cart, error)
}

func newCartService(t *testing.T) (cartAPI, *mocks.MockUserRepo, *mocks.MockCartRepo) {
	users := mocks.NewMockUserRepo(t)
	carts := mocks.NewMockCartRepo(t)

	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewCartService(logger, tx, users, carts), users, carts
}

func TestCartService_AddItem(t *testing.T) {
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()

	user := entities.User{UserID: userID, Username: "alice"}

	t.Run("creates cart on first use", func(t *testing.T) {
		svc, users, carts := newCartService(t)

		users.EXPECT().GetUserByID(mock.Anything, userID).Return(user, nil).Once()
		carts.EXPECT().GetCartByUserID(mock.Anything, userID).
			Return(entities.Cart{}, entities.ErrCartNotFound).Once()
		carts.EXPECT().CreateCart(mock.Anything, mock.Anything).Return(nil).Once()
		carts.EXPECT().ReplaceCartItems(mock.Anything, mock.Anything,
			[]entities.CartItem{{ProductID: productID, Quantity: 2}}).Return(nil).Once()

		cart, err := svc.AddItem(context.Background(), userID, productID, 2)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
	})

	t.Run("accumulates quantity for the same product", func(t *testing.T) {
		svc, users, carts := newCartService(t)

		existing := entities.Cart{
			CartID: cartID,
			UserID: userID,
			Items:  []entities.CartItem{{ProductID: productID, Quantity: 2}},
		}

		users.EXPECT().GetUserByID(mock.Anything, userID).Return(user, nil).Once()
		carts.EXPECT().GetCartByUserID(mock.Anything, userID).Return(existing, nil).Once()
		carts.EXPECT().ReplaceCartItems(mock.Anything, cartID,
			[]entities.CartItem{{ProductID: productID, Quantity: 5}}).Return(nil).Once()

		cart, err := svc.AddItem(context.Background(), userID, productID, 3)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 5, cart.Items[0].Quantity)
	})

	t.Run("non-positive quantity defaults to one", func(t *testing.T) {
		svc, users, carts := newCartService(t)

		users.EXPECT().GetUserByID(mock.Anything, userID).Return(user, nil).Once()
		carts.EXPECT().GetCartByUserID(mock.Anything, userID).
			Return(entities.Cart{CartID: cartID, UserID: userID}, nil).Once()
		carts.EXPECT().ReplaceCartItems(mock.Anything, cartID,
			[]entities.CartItem{{ProductID: productID, Quantity: 1}}).Return(nil).Once()

		cart, err := svc.AddItem(context.Background(), userID, productID, 0)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 1, cart.Items[0].Quantity)
	})

	t.Run("unregistered user", func(t *testing.T) {
		svc, users, _ := newCartService(t)

		users.EXPECT().GetUserByID(mock.Anything, userID).
			Return(entities.User{}, entities.ErrUserNotFound).Once()

		_, err := svc.AddItem(context.Background(), userID, productID, 1)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()
	otherID := uuid.New()

	user := entities.User{UserID: userID, Username: "alice"}

	t.Run("removes the line", func(t *testing.T) {
		svc, users, carts := newCartService(t)

		existing := entities.Cart{
			CartID: cartID,
			UserID: userID,
			Items: []entities.CartItem{
				{ProductID: productID, Quantity: 1},
				{ProductID: otherID, Quantity: 4},
			},
		}

		users.EXPECT().GetUserByID(mock.Anything, userID).Return(user, nil).Once()
		carts.EXPECT().GetCartByUserID(mock.Anything, userID).Return(existing, nil).Once()
		carts.EXPECT().ReplaceCartItems(mock.Anything, cartID,
			[]entities.CartItem{{ProductID: otherID, Quantity: 4}}).Return(nil).Once()

		cart, err := svc.RemoveItem(context.Background(), userID, productID)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, otherID, cart.Items[0].ProductID)
	})

	t.Run("absent product is a no-op", func(t *testing.T) {
		svc, users, carts := newCartService(t)

		existing := entities.Cart{
			CartID: cartID,
			UserID: userID,
			Items:  []entities.CartItem{{ProductID: otherID, Quantity: 4}},
		}

		users.EXPECT().GetUserByID(mock.Anything, userID).Return(user, nil).Once()
		carts.EXPECT().GetCartByUserID(mock.Anything, userID).Return(existing, nil).Once()
		carts.EXPECT().ReplaceCartItems(mock.Anything, cartID, existing.Items).Return(nil).Once()

		cart, err := svc.RemoveItem(context.Background(), userID, productID)
		require.NoError(t, err)
		assert.Len(t, cart.Items, 1)
	})
}

func TestCartService_UpdateItem(t *testing.T) {
	userID := uuid.New()
	cartID := uuid.New()
	productID := uuid.New()

	user := entities.User{UserID: userID, Username: "alice"}
	existing := entities.Cart{
		CartID: cartID,
		UserID: userID,
		Items:  []entities.CartItem{{ProductID: productID, Quantity: 2}},
	}

	t.Run("sets absolute quantity", func(t *testing.T) {
		svc, users, carts := newCartService(t)

		users.EXPECT().GetUserByID(mock.Anything, userID).Return(user, nil).Once()
		carts.EXPECT().GetCartByUserID(mock.Anything, userID).Return(existing, nil).Once()
		carts.EXPECT().ReplaceCartItems(mock.Anything, cartID,
			[]entities.CartItem{{ProductID: productID, Quantity: 7}}).Return(nil).Once()

		cart, err := svc.UpdateItem(context.Background(), userID, productID, 7)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 7, cart.Items[0].Quantity)
	})

	t.Run("zero quantity removes the line", func(t *testing.T) {
		svc, users, carts := newCartService(t)

		users.EXPECT().GetUserByID(mock.Anything, userID).Return(user, nil).Once()
		carts.EXPECT().GetCartByUserID(mock.Anything, userID).Return(existing, nil).Once()
		carts.EXPECT().ReplaceCartItems(mock.Anything, cartID, []entities.CartItem{}).Return(nil).Once()

		cart, err := svc.UpdateItem(context.Background(), userID, productID, 0)
		require.NoError(t, err)
		assert.True(t, cart.IsEmpty())
	})
}

func TestCartService_Clear(t *testing.T) {
	userID := uuid.New()
	cartID := uuid.New()

	svc, users, carts := newCartService(t)

	existing := entities.Cart{
		CartID: cartID,
		UserID: userID,
		Items:  []entities.CartItem{{ProductID: uuid.New(), Quantity: 3}},
	}

	users.EXPECT().GetUserByID(mock.Anything, userID).
		Return(entities.User{UserID: userID}, nil).Once()
	carts.EXPECT().GetCartByUserID(mock.Anything, userID).Return(existing, nil).Once()
	carts.EXPECT().ReplaceCartItems(mock.Anything, cartID, mock.Anything).Return(nil).Once()

	cart, err := svc.Clear(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_Find(t *testing.T) {
	userID := uuid.New()
	user := entities.User{UserID: userID, Username: "alice"}
	existing := entities.Cart{CartID: uuid.New(), UserID: userID}

	t.Run("by user id", func(t *testing.T) {
		svc, users, carts := newCartService(t)

		users.EXPECT().GetUserByID(mock.Anything, userID).Return(user, nil).Once()
		carts.EXPECT().GetCartByUserID(mock.Anything, userID).Return(existing, nil).Once()

		cart, err := svc.FindByUserID(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, existing.CartID, cart.CartID)
	})

	t.Run("by username", func(t *testing.T) {
		svc, users, carts := newCartService(t)

		users.EXPECT().GetUserByUsername(mock.Anything, "alice").Return(user, nil).Once()
		carts.EXPECT().GetCartByUserID(mock.Anything, userID).Return(existing, nil).Once()

		cart, err := svc.FindByUsername(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, existing.CartID, cart.CartID)
	})

	t.Run("unknown username", func(t *testing.T) {
		svc, users, _ := newCartService(t)

		users.EXPECT().GetUserByUsername(mock.Anything, "bob").
			Return(entities.User{}, entities.ErrUserNotFound).Once()

		_, err := svc.FindByUsername(context.Background(), "bob")
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
	})
}

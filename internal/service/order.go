package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kusamnavya/shopping-cart/internal/entities"
	"github.com/kusamnavya/shopping-cart/internal/events"
	"github.com/kusamnavya/shopping-cart/pkg/trm"
	"github.com/kusamnavya/shopping-cart/pkg/utils"
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, orderID uuid.UUID) (entities.Order, error)
	ListOrdersByUserID(ctx context.Context, userID uuid.UUID) ([]entities.Order, error)

	SaveOrder(ctx context.Context, o entities.Order) error
	SaveOrderItems(ctx context.Context, orderID uuid.UUID, items []entities.OrderItem) error
	SavePayment(ctx context.Context, orderID uuid.UUID, p entities.Payment) error
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status entities.OrderStatus, from ...entities.OrderStatus) error
	UpdateOrderAddresses(ctx context.Context, orderID uuid.UUID, billingID, shippingID *uuid.UUID) error
}

type ProductRepo interface {
	GetProductsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entities.Product, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type Publisher interface {
	Publish(ctx context.Context, event events.OrderEvent) error
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	carts     CartRepo
	users     UserRepo
	products  ProductRepo
	cache     Cache
	publisher Publisher

	// сериализует конвертацию корзины по пользователю
	userLocks keyedMutex
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	carts CartRepo,
	users UserRepo,
	products ProductRepo,
	cache Cache,
	publisher Publisher,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		orders:    orders,
		carts:     carts,
		users:     users,
		products:  products,
		cache:     cache,
		publisher: publisher,
	}
}

// CreateOrder converts the user's cart into an order. The user must
// resolve to a persisted record before the cart is even looked at; an
// absent or empty cart fails with ErrCartEmpty. Order creation and
// cart emptying commit as one transaction, so a concurrent second
// call for the same user deterministically sees an empty cart.
func (s *orderService) CreateOrder(ctx context.Context, userID uuid.UUID) (entities.Order, error) {
	unlock := s.userLocks.Lock(userID)
	defer unlock()

	var order entities.Order

	op := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			user, err := s.users.GetUserByID(ctx, userID)
			if err != nil {
				return fmt.Errorf("failed to resolve user: %w", err)
			}

			cart, err := s.carts.GetCartByUserID(ctx, user.UserID)
			if errors.Is(err, entities.ErrCartNotFound) {
				return entities.ErrCartEmpty
			}
			if err != nil {
				return fmt.Errorf("failed to get cart: %w", err)
			}
			if cart.IsEmpty() {
				return entities.ErrCartEmpty
			}

			items, subTotal, err := s.snapshotItems(ctx, cart.Items)
			if err != nil {
				return err
			}

			order = entities.Order{
				OrderID:   uuid.New(),
				OrderKey:  newOrderKey(),
				UserID:    user.UserID,
				Items:     items,
				SubTotal:  subTotal,
				Status:    entities.StatusCreated,
				CreatedAt: time.Now().UTC(),
			}

			if err := s.orders.SaveOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			if err := s.orders.SaveOrderItems(ctx, order.OrderID, order.Items); err != nil {
				return fmt.Errorf("failed to save order items: %w", err)
			}
			if err := s.carts.ClearCart(ctx, cart.CartID); err != nil {
				return fmt.Errorf("failed to clear cart: %w", err)
			}

			s.logger.Debug("order created", "order_key", order.OrderKey, "user_id", userID)
			return nil
		})
	}

	err := utils.Retry(retryCfg, op, entities.ErrUserNotFound, entities.ErrCartEmpty)
	if err != nil {
		return entities.Order{}, err
	}

	s.publish(ctx, events.TypeOrderCreated, order)
	return order, nil
}

// ApplyPayment records a payment for the order's full subtotal and
// moves it to PAID. The gate is checked twice: on the order read for
// a descriptive error, and again by the conditional status update,
// which compares against the committed status. A concurrent
// cancellation that commits first therefore fails this transition
// instead of being overwritten. An order is paid at most once.
func (s *orderService) ApplyPayment(ctx context.Context, orderID, paymentMethodID uuid.UUID) (entities.Order, error) {
	var order entities.Order

	op := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			var err error
			order, err = s.orders.GetOrderByID(ctx, orderID)
			if err != nil {
				return err
			}

			if !order.Status.CanPay() {
				return fmt.Errorf("%w: cannot pay order in status %s", entities.ErrInvalidOrderOperation, order.Status)
			}

			payment := entities.Payment{
				PaymentID:       uuid.New(),
				PaymentMethodID: paymentMethodID,
				Amount:          order.SubTotal,
				PaidAt:          time.Now().UTC(),
			}

			if err := s.orders.SavePayment(ctx, order.OrderID, payment); err != nil {
				return fmt.Errorf("failed to save payment: %w", err)
			}
			if err := s.orders.UpdateOrderStatus(ctx, order.OrderID, entities.StatusPaid, entities.PayableStatuses()...); err != nil {
				return fmt.Errorf("failed to update order status: %w", err)
			}

			order.Payments = append(order.Payments, payment)
			order.Status = entities.StatusPaid

			s.logger.Debug("payment applied", "order_key", order.OrderKey, "amount", payment.Amount)
			return nil
		})
	}

	err := utils.Retry(retryCfg, op, entities.ErrOrderNotFound, entities.ErrInvalidOrderOperation)
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Delete(orderID.String())
	s.publish(ctx, events.TypeOrderPaid, order)
	return order, nil
}

// Cancel moves an order in CREATED or PAID to CANCELLED. The status
// write is conditional on the committed status like in ApplyPayment,
// so racing transitions resolve by commit order. Payments already
// applied are left untouched; refunds are not modeled here.
func (s *orderService) Cancel(ctx context.Context, orderID uuid.UUID) (entities.Order, error) {
	var order entities.Order

	op := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			var err error
			order, err = s.orders.GetOrderByID(ctx, orderID)
			if err != nil {
				return err
			}

			if !order.Status.CanCancel() {
				return fmt.Errorf("%w: cannot cancel order in status %s", entities.ErrInvalidOrderOperation, order.Status)
			}

			if err := s.orders.UpdateOrderStatus(ctx, order.OrderID, entities.StatusCancelled, entities.CancellableStatuses()...); err != nil {
				return fmt.Errorf("failed to update order status: %w", err)
			}

			order.Status = entities.StatusCancelled

			s.logger.Debug("order cancelled", "order_key", order.OrderKey)
			return nil
		})
	}

	err := utils.Retry(retryCfg, op, entities.ErrOrderNotFound, entities.ErrInvalidOrderOperation)
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Delete(orderID.String())
	s.publish(ctx, events.TypeOrderCancelled, order)
	return order, nil
}

// SetAddresses reassigns billing and/or shipping, nil leaves a side
// unchanged. No status gate: addresses may be changed at any point,
// including after payment or cancellation.
func (s *orderService) SetAddresses(ctx context.Context, orderID uuid.UUID, billingID, shippingID *uuid.UUID) (entities.Order, error) {
	var order entities.Order

	op := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.orders.UpdateOrderAddresses(ctx, orderID, billingID, shippingID); err != nil {
				return err
			}
			var err error
			order, err = s.orders.GetOrderByID(ctx, orderID)
			return err
		})
	}

	err := utils.Retry(retryCfg, op, entities.ErrOrderNotFound)
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Delete(orderID.String())
	return order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID uuid.UUID) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID.String()); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal order", slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	op := func() error {
		var err error
		order, err = s.orders.GetOrderByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(retryCfg, op, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.Any("error", err))
		return entities.Order{}, err
	}
	s.cache.Set(orderID.String(), data)
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]entities.Order, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	return s.orders.ListOrdersByUserID(ctx, user.UserID)
}

// snapshotItems copies cart lines into immutable order lines, pricing
// each against the current catalog.
func (s *orderService) snapshotItems(ctx context.Context, cartItems []entities.CartItem) ([]entities.OrderItem, decimal.Decimal, error) {
	ids := make([]uuid.UUID, len(cartItems))
	for i, it := range cartItems {
		ids[i] = it.ProductID
	}

	products, err := s.products.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to load products: %w", err)
	}

	items := make([]entities.OrderItem, 0, len(cartItems))
	subTotal := decimal.Zero
	for _, it := range cartItems {
		product, ok := products[it.ProductID]
		if !ok {
			return nil, decimal.Zero, fmt.Errorf("product %s is not in the catalog", it.ProductID)
		}
		lineAmount := product.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		items = append(items, entities.OrderItem{
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			LineAmount: lineAmount,
		})
		subTotal = subTotal.Add(lineAmount)
	}

	return items, subTotal, nil
}

// publish is best-effort: lifecycle state lives in postgres, a lost
// event must not fail the committed operation.
func (s *orderService) publish(ctx context.Context, eventType string, order entities.Order) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.NewOrderEvent(eventType, order)); err != nil {
		s.logger.Error("failed to publish event", slog.String("type", eventType), slog.Any("error", err))
	}
}

func newOrderKey() string {
	return "ORD-" + strings.ToUpper(strings.SplitN(uuid.NewString(), "-", 2)[0])
}

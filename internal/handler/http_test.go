package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kusamnavya/shopping-cart/internal/entities"
	"github.com/kusamnavya/shopping-cart/internal/handler"
	"github.com/kusamnavya/shopping-cart/internal/handler/mocks"
)

func newTestRouter(t *testing.T) (chi.Router, *mocks.MockCartService, *mocks.MockOrderService) {
	carts := mocks.NewMockCartService(t)
	orders := mocks.NewMockOrderService(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, carts, orders)

	r := chi.NewRouter()
	h.Init(r)
	return r, carts, orders
}

func doRequest(r chi.Router, method, target string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHTTPHandler_GetCart(t *testing.T) {
	userID := uuid.New()
	cart := entities.Cart{
		CartID: uuid.New(),
		UserID: userID,
		Items:  []entities.CartItem{{ProductID: uuid.New(), Quantity: 2}},
	}

	t.Run("success", func(t *testing.T) {
		r, carts, _ := newTestRouter(t)
		carts.EXPECT().FindByUserID(mock.Anything, userID).Return(cart, nil).Once()

		rec := doRequest(r, http.MethodGet, "/cart/"+userID.String(), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got handler.Cart
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, cart.CartID.String(), got.CartID)
		assert.False(t, got.Empty)
		assert.Len(t, got.Items, 1)
	})

	t.Run("user not found", func(t *testing.T) {
		r, carts, _ := newTestRouter(t)
		carts.EXPECT().FindByUserID(mock.Anything, userID).
			Return(entities.Cart{}, entities.ErrUserNotFound).Once()

		rec := doRequest(r, http.MethodGet, "/cart/"+userID.String(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("cart not found", func(t *testing.T) {
		r, carts, _ := newTestRouter(t)
		carts.EXPECT().FindByUserID(mock.Anything, userID).
			Return(entities.Cart{}, entities.ErrCartNotFound).Once()

		rec := doRequest(r, http.MethodGet, "/cart/"+userID.String(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid user id", func(t *testing.T) {
		r, _, _ := newTestRouter(t)

		rec := doRequest(r, http.MethodGet, "/cart/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHTTPHandler_GetCartByUsername(t *testing.T) {
	userID := uuid.New()
	cart := entities.Cart{CartID: uuid.New(), UserID: userID}

	r, carts, _ := newTestRouter(t)
	carts.EXPECT().FindByUsername(mock.Anything, "alice").Return(cart, nil).Once()

	rec := doRequest(r, http.MethodGet, "/cart/by-username/alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got handler.Cart
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Empty)
}

func TestHTTPHandler_AddItem(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	t.Run("success", func(t *testing.T) {
		r, carts, _ := newTestRouter(t)

		cart := entities.Cart{
			CartID: uuid.New(),
			UserID: userID,
			Items:  []entities.CartItem{{ProductID: productID, Quantity: 3}},
		}
		carts.EXPECT().AddItem(mock.Anything, userID, productID, 3).Return(cart, nil).Once()

		body := handler.AddItemRequest{ProductID: productID.String(), Quantity: 3}
		rec := doRequest(r, http.MethodPost, "/cart/"+userID.String()+"/items", body)
		require.Equal(t, http.StatusOK, rec.Code)

		var got handler.Cart
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got.Items, 1)
		assert.Equal(t, 3, got.Items[0].Quantity)
	})

	t.Run("missing product id", func(t *testing.T) {
		r, _, _ := newTestRouter(t)

		rec := doRequest(r, http.MethodPost, "/cart/"+userID.String()+"/items",
			handler.AddItemRequest{Quantity: 1})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		r, _, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/cart/"+userID.String()+"/items",
			bytes.NewReader([]byte("{")))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHTTPHandler_UpdateItem(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	r, carts, _ := newTestRouter(t)

	cart := entities.Cart{CartID: uuid.New(), UserID: userID}
	carts.EXPECT().UpdateItem(mock.Anything, userID, productID, 0).Return(cart, nil).Once()

	target := fmt.Sprintf("/cart/%s/items/%s", userID, productID)
	rec := doRequest(r, http.MethodPut, target, handler.UpdateItemRequest{Quantity: 0})
	require.Equal(t, http.StatusOK, rec.Code)

	var got handler.Cart
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Empty)
}

func TestHTTPHandler_RemoveItem(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	r, carts, _ := newTestRouter(t)

	cart := entities.Cart{CartID: uuid.New(), UserID: userID}
	carts.EXPECT().RemoveItem(mock.Anything, userID, productID).Return(cart, nil).Once()

	target := fmt.Sprintf("/cart/%s/items/%s", userID, productID)
	rec := doRequest(r, http.MethodDelete, target, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHTTPHandler_ClearCart(t *testing.T) {
	userID := uuid.New()

	r, carts, _ := newTestRouter(t)

	cart := entities.Cart{CartID: uuid.New(), UserID: userID}
	carts.EXPECT().Clear(mock.Anything, userID).Return(cart, nil).Once()

	rec := doRequest(r, http.MethodDelete, "/cart/"+userID.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		r, _, orders := newTestRouter(t)

		order := entities.Order{
			OrderID:  uuid.New(),
			OrderKey: "ORD-ABCDEF12",
			UserID:   userID,
			SubTotal: decimal.NewFromInt(200),
			Status:   entities.StatusCreated,
			Items: []entities.OrderItem{
				{ProductID: uuid.New(), Quantity: 2, LineAmount: decimal.NewFromInt(200)},
			},
		}
		orders.EXPECT().CreateOrder(mock.Anything, userID).Return(order, nil).Once()

		rec := doRequest(r, http.MethodPost, "/users/"+userID.String()+"/orders/", nil)
		require.Equal(t, http.StatusCreated, rec.Code)

		var got handler.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "ORD-ABCDEF12", got.OrderKey)
		assert.Equal(t, string(entities.StatusCreated), got.Status)
		assert.Equal(t, "200", got.SubTotal)
	})

	t.Run("empty cart", func(t *testing.T) {
		r, _, orders := newTestRouter(t)

		orders.EXPECT().CreateOrder(mock.Anything, userID).
			Return(entities.Order{}, entities.ErrCartEmpty).Once()

		rec := doRequest(r, http.MethodPost, "/users/"+userID.String()+"/orders/", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("user not found", func(t *testing.T) {
		r, _, orders := newTestRouter(t)

		orders.EXPECT().CreateOrder(mock.Anything, userID).
			Return(entities.Order{}, entities.ErrUserNotFound).Once()

		rec := doRequest(r, http.MethodPost, "/users/"+userID.String()+"/orders/", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	userID := uuid.New()

	r, _, orders := newTestRouter(t)

	list := []entities.Order{
		{OrderID: uuid.New(), UserID: userID, Status: entities.StatusCreated},
		{OrderID: uuid.New(), UserID: userID, Status: entities.StatusPaid},
	}
	orders.EXPECT().ListOrders(mock.Anything, userID).Return(list, nil).Once()

	rec := doRequest(r, http.MethodGet, "/users/"+userID.String()+"/orders/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []handler.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	orderID := uuid.New()

	t.Run("success", func(t *testing.T) {
		r, _, orders := newTestRouter(t)

		order := entities.Order{OrderID: orderID, OrderKey: "ORD-11112222", Status: entities.StatusPaid}
		orders.EXPECT().GetOrderByID(mock.Anything, orderID).Return(order, nil).Once()

		rec := doRequest(r, http.MethodGet, "/orders/"+orderID.String(), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got handler.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, orderID.String(), got.OrderID)
	})

	t.Run("not found", func(t *testing.T) {
		r, _, orders := newTestRouter(t)

		orders.EXPECT().GetOrderByID(mock.Anything, orderID).
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		rec := doRequest(r, http.MethodGet, "/orders/"+orderID.String(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHTTPHandler_ApplyPayment(t *testing.T) {
	orderID := uuid.New()
	paymentMethodID := uuid.New()

	t.Run("success", func(t *testing.T) {
		r, _, orders := newTestRouter(t)

		order := entities.Order{
			OrderID:  orderID,
			Status:   entities.StatusPaid,
			SubTotal: decimal.NewFromInt(500),
			Payments: []entities.Payment{{
				PaymentID:       uuid.New(),
				PaymentMethodID: paymentMethodID,
				Amount:          decimal.NewFromInt(500),
			}},
		}
		orders.EXPECT().ApplyPayment(mock.Anything, orderID, paymentMethodID).Return(order, nil).Once()

		body := handler.ApplyPaymentRequest{PaymentMethodID: paymentMethodID.String()}
		rec := doRequest(r, http.MethodPost, "/orders/"+orderID.String()+"/payments", body)
		require.Equal(t, http.StatusOK, rec.Code)

		var got handler.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, string(entities.StatusPaid), got.Status)
		require.Len(t, got.Payments, 1)
		assert.Equal(t, "500", got.Payments[0].Amount)
	})

	t.Run("already paid", func(t *testing.T) {
		r, _, orders := newTestRouter(t)

		orders.EXPECT().ApplyPayment(mock.Anything, orderID, paymentMethodID).
			Return(entities.Order{}, fmt.Errorf("%w: cannot pay order in status PAID", entities.ErrInvalidOrderOperation)).Once()

		body := handler.ApplyPaymentRequest{PaymentMethodID: paymentMethodID.String()}
		rec := doRequest(r, http.MethodPost, "/orders/"+orderID.String()+"/payments", body)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("invalid payment method id", func(t *testing.T) {
		r, _, _ := newTestRouter(t)

		body := handler.ApplyPaymentRequest{PaymentMethodID: "not-a-uuid"}
		rec := doRequest(r, http.MethodPost, "/orders/"+orderID.String()+"/payments", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHTTPHandler_CancelOrder(t *testing.T) {
	orderID := uuid.New()

	t.Run("success", func(t *testing.T) {
		r, _, orders := newTestRouter(t)

		order := entities.Order{OrderID: orderID, Status: entities.StatusCancelled}
		orders.EXPECT().Cancel(mock.Anything, orderID).Return(order, nil).Once()

		rec := doRequest(r, http.MethodPost, "/orders/"+orderID.String()+"/cancel", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got handler.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, string(entities.StatusCancelled), got.Status)
	})

	t.Run("already shipped", func(t *testing.T) {
		r, _, orders := newTestRouter(t)

		orders.EXPECT().Cancel(mock.Anything, orderID).
			Return(entities.Order{}, fmt.Errorf("%w: cannot cancel order in status SHIPPED", entities.ErrInvalidOrderOperation)).Once()

		rec := doRequest(r, http.MethodPost, "/orders/"+orderID.String()+"/cancel", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestHTTPHandler_SetAddresses(t *testing.T) {
	orderID := uuid.New()
	billingID := uuid.New()

	t.Run("billing only", func(t *testing.T) {
		r, _, orders := newTestRouter(t)

		order := entities.Order{OrderID: orderID, BillingAddressID: &billingID, Status: entities.StatusCreated}
		orders.EXPECT().SetAddresses(mock.Anything, orderID, &billingID, (*uuid.UUID)(nil)).
			Return(order, nil).Once()

		billing := billingID.String()
		body := handler.SetAddressesRequest{BillingAddressID: &billing}
		rec := doRequest(r, http.MethodPut, "/orders/"+orderID.String()+"/addresses", body)
		require.Equal(t, http.StatusOK, rec.Code)

		var got handler.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.NotNil(t, got.BillingAddressID)
		assert.Equal(t, billing, *got.BillingAddressID)
		assert.Nil(t, got.ShippingAddressID)
	})

	t.Run("invalid address id", func(t *testing.T) {
		r, _, _ := newTestRouter(t)

		bad := "not-a-uuid"
		body := handler.SetAddressesRequest{ShippingAddressID: &bad}
		rec := doRequest(r, http.MethodPut, "/orders/"+orderID.String()+"/addresses", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

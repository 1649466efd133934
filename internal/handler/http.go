package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/kusamnavya/shopping-cart/internal/entities"
	"github.com/kusamnavya/shopping-cart/pkg/utils"
)

type CartService interface {
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (entities.Cart, error)
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (entities.Cart, error)
	UpdateItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (entities.Cart, error)
	Clear(ctx context.Context, userID uuid.UUID) (entities.Cart, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (entities.Cart, error)
	FindByUsername(ctx context.Context, username string) (entities.Cart, error)
}

type OrderService interface {
	CreateOrder(ctx context.Context, userID uuid.UUID) (entities.Order, error)
	ApplyPayment(ctx context.Context, orderID, paymentMethodID uuid.UUID) (entities.Order, error)
	Cancel(ctx context.Context, orderID uuid.UUID) (entities.Order, error)
	SetAddresses(ctx context.Context, orderID uuid.UUID, billingID, shippingID *uuid.UUID) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID uuid.UUID) (entities.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]entities.Order, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	carts    CartService
	orders   OrderService
}

func NewHTTPHandler(logger *slog.Logger, carts CartService, orders OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		carts:    carts,
		orders:   orders,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/cart/{user_id}", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Delete("/", h.ClearCart)
		r.Post("/items", h.AddItem)
		r.Put("/items/{product_id}", h.UpdateItem)
		r.Delete("/items/{product_id}", h.RemoveItem)
	})
	r.Get("/cart/by-username/{username}", h.GetCartByUsername)

	r.Route("/users/{user_id}/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/", h.ListOrders)
	})

	r.Route("/orders/{order_id}", func(r chi.Router) {
		r.Get("/", h.GetOrder)
		r.Post("/payments", h.ApplyPayment)
		r.Post("/cancel", h.CancelOrder)
		r.Put("/addresses", h.SetAddresses)
	})
}

func (h *HTTPHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.pathUUID(w, r, "user_id")
	if !ok {
		return
	}

	var req AddItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	productID, _ := uuid.Parse(req.ProductID)

	cart, err := h.carts.AddItem(ctx, userID, productID, req.Quantity)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	cartMutations.WithLabelValues("add").Inc()
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

func (h *HTTPHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.pathUUID(w, r, "user_id")
	if !ok {
		return
	}
	productID, ok := h.pathUUID(w, r, "product_id")
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	cart, err := h.carts.UpdateItem(ctx, userID, productID, req.Quantity)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	cartMutations.WithLabelValues("update").Inc()
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

func (h *HTTPHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.pathUUID(w, r, "user_id")
	if !ok {
		return
	}
	productID, ok := h.pathUUID(w, r, "product_id")
	if !ok {
		return
	}

	cart, err := h.carts.RemoveItem(ctx, userID, productID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	cartMutations.WithLabelValues("remove").Inc()
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

func (h *HTTPHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.pathUUID(w, r, "user_id")
	if !ok {
		return
	}

	cart, err := h.carts.Clear(ctx, userID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	cartMutations.WithLabelValues("clear").Inc()
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.pathUUID(w, r, "user_id")
	if !ok {
		return
	}

	cart, err := h.carts.FindByUserID(ctx, userID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

func (h *HTTPHandler) GetCartByUsername(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username := chi.URLParam(r, "username")

	if err := h.validate.Var(username, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	cart, err := h.carts.FindByUsername(ctx, username)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.pathUUID(w, r, "user_id")
	if !ok {
		return
	}

	order, err := h.orders.CreateOrder(ctx, userID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	ordersCreated.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.pathUUID(w, r, "user_id")
	if !ok {
		return
	}

	orders, err := h.orders.ListOrders(ctx, userID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, ok := h.pathUUID(w, r, "order_id")
	if !ok {
		return
	}

	order, err := h.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) ApplyPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, ok := h.pathUUID(w, r, "order_id")
	if !ok {
		return
	}

	var req ApplyPaymentRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	paymentMethodID, _ := uuid.Parse(req.PaymentMethodID)

	order, err := h.orders.ApplyPayment(ctx, orderID, paymentMethodID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	ordersPaid.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, ok := h.pathUUID(w, r, "order_id")
	if !ok {
		return
	}

	order, err := h.orders.Cancel(ctx, orderID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	ordersCancelled.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) SetAddresses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, ok := h.pathUUID(w, r, "order_id")
	if !ok {
		return
	}

	var req SetAddressesRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var billingID, shippingID *uuid.UUID
	if req.BillingAddressID != nil {
		id, _ := uuid.Parse(*req.BillingAddressID)
		billingID = &id
	}
	if req.ShippingAddressID != nil {
		id, _ := uuid.Parse(*req.ShippingAddressID)
		shippingID = &id
	}

	order, err := h.orders.SetAddresses(ctx, orderID, billingID, shippingID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) pathUUID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		utils.WriteError(w, "invalid "+param, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func (h *HTTPHandler) writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entities.ErrUserNotFound):
		utils.WriteError(w, "user not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrCartNotFound):
		utils.WriteError(w, "cart not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrCartEmpty):
		utils.WriteError(w, "cart is empty", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrInvalidOrderOperation):
		utils.WriteError(w, "operation not allowed for order status", http.StatusConflict)
	default:
		h.logger.ErrorContext(ctx, "internal error", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

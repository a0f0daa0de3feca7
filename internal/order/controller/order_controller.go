package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tableside/internal/domain"
	apperrors "tableside/internal/errors"
	"tableside/internal/order/service"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, cmd service.PlaceOrderCommand) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error)
}

type CreateOrderRequest struct {
	TableNo int                `json:"tableNo"`
	Items   []OrderItemRequest `json:"items"`
	Total   float64            `json:"total"`
}

type OrderItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Category string  `json:"category"`
	PrepTime int     `json:"prepTime"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type Controller struct {
	service OrderService
	logger  *zap.Logger
}

func NewController(service OrderService, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) CreateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	items := make([]domain.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.OrderItem{
			Name:        item.Name,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Category:    domain.Category(item.Category),
			PrepMinutes: item.PrepTime,
		}
	}

	order, err := c.service.PlaceOrder(r.Context(), service.PlaceOrderCommand{
		TableNo: req.TableNo,
		Items:   items,
		Total:   req.Total,
	})
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, order)
}

func (c *Controller) GetOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	order, err := c.service.GetOrder(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, order)
}

func (c *Controller) ListOrders(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var filter domain.OrderFilter

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.Status(raw)
		filter.Status = &status
	}
	if raw := r.URL.Query().Get("tableNo"); raw != "" {
		tableNo, err := strconv.Atoi(raw)
		if err != nil {
			c.writeValidationError(w, "invalid tableNo", apperrors.ValidationDetail{
				Field:   "tableNo",
				Message: "tableNo must be an integer",
			})
			return
		}
		filter.TableNo = &tableNo
	}

	orders, err := c.service.ListOrders(r.Context(), filter)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	if orders == nil {
		orders = []domain.Order{}
	}
	c.writeJSON(w, http.StatusOK, orders)
}

func (c *Controller) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	order, err := c.service.UpdateStatus(r.Context(), chi.URLParam(r, "orderId"), domain.Status(req.Status))
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, order)
}

func (c *Controller) handleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, errorResponse{
			Error:     "NOT_FOUND",
			Message:   err.Error(),
			Timestamp: time.Now().UTC(),
		})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, errorResponse{
		Error:     "INTERNAL_ERROR",
		Message:   "an unexpected error occurred",
		Timestamp: time.Now().UTC(),
	})
}

type errorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}

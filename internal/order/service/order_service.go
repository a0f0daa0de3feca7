package service

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"tableside/internal/domain"
	apperrors "tableside/internal/errors"
	"tableside/internal/notifier"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindAll(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error)
}

type Notifier interface {
	Publish(room, event string, payload any) error
}

// PlaceOrderCommand carries the caller-supplied fields of a new order.
// The total is asserted by the caller and not recomputed server-side.
type PlaceOrderCommand struct {
	TableNo int
	Items   []domain.OrderItem
	Total   float64
}

// StatusUpdate is the table-room payload for a status change.
type StatusUpdate struct {
	OrderID   string        `json:"orderId"`
	Status    domain.Status `json:"status"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type OrderService struct {
	repo                  OrderRepository
	notifier              Notifier
	logger                *zap.Logger
	defaultPrepMinutes    int
	dispatchBufferMinutes int
}

func NewOrderService(
	repo OrderRepository,
	notifier Notifier,
	logger *zap.Logger,
	defaultPrepMinutes int,
	dispatchBufferMinutes int,
) *OrderService {
	return &OrderService{
		repo:                  repo,
		notifier:              notifier,
		logger:                logger,
		defaultPrepMinutes:    defaultPrepMinutes,
		dispatchBufferMinutes: dispatchBufferMinutes,
	}
}

// PlaceOrder validates the command, persists a pending order and fans the
// snapshot out to the kitchen and the ordering table. A failed publish is
// logged and swallowed: the order stands once the write committed.
func (s *OrderService) PlaceOrder(ctx context.Context, cmd PlaceOrderCommand) (*domain.Order, error) {
	if err := validatePlaceOrder(cmd); err != nil {
		return nil, err
	}

	order := &domain.Order{
		TableNo:          cmd.TableNo,
		Items:            cmd.Items,
		Total:            cmd.Total,
		Status:           domain.StatusPending,
		EstimatedMinutes: s.estimateMinutes(cmd.Items),
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.logger.Error("failed to create order", zap.Int("tableNo", cmd.TableNo), zap.Error(err))
		return nil, err
	}

	s.logger.Info("order placed",
		zap.String("orderId", order.ID),
		zap.Int("tableNo", order.TableNo),
		zap.Int("estimatedMinutes", order.EstimatedMinutes),
	)

	s.publish(notifier.KitchenRoom, notifier.EventNewOrder, order)
	s.publish(notifier.TableRoom(order.TableNo), notifier.EventOrderConfirmed, order)

	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

// ListOrders returns matching orders newest first.
func (s *OrderService) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, apperrors.NewValidationError("unrecognized status filter", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of pending, confirmed, preparing, ready, served, cancelled",
		})
	}
	return s.repo.FindAll(ctx, filter)
}

// UpdateStatus sets any recognized status on an existing order. Transition
// order is deliberately not checked; see domain.Status.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("unrecognized status", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of pending, confirmed, preparing, ready, served, cancelled",
		})
	}

	order, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("order status updated",
		zap.String("orderId", order.ID),
		zap.String("status", string(order.Status)),
	)

	s.publish(notifier.TableRoom(order.TableNo), notifier.EventOrderStatusUpdate, StatusUpdate{
		OrderID:   order.ID,
		Status:    order.Status,
		UpdatedAt: order.UpdatedAt,
	})
	s.publish(notifier.KitchenRoom, notifier.EventOrderStatusUpdated, order)

	return order, nil
}

func (s *OrderService) estimateMinutes(items []domain.OrderItem) int {
	longest := 0
	for _, item := range items {
		prep := item.PrepMinutes
		if prep <= 0 {
			prep = s.defaultPrepMinutes
		}
		if prep > longest {
			longest = prep
		}
	}
	return longest + s.dispatchBufferMinutes
}

func (s *OrderService) publish(room, event string, payload any) {
	if err := s.notifier.Publish(room, event, payload); err != nil {
		s.logger.Warn("notification dropped",
			zap.String("room", room),
			zap.String("event", event),
			zap.Error(err),
		)
	}
}

func validatePlaceOrder(cmd PlaceOrderCommand) error {
	var details []apperrors.ValidationDetail

	if cmd.TableNo <= 0 {
		msg := "tableNo must be a positive integer"
		if cmd.TableNo == 0 {
			msg = "tableNo is required"
		}
		details = append(details, apperrors.ValidationDetail{
			Field:   "tableNo",
			Message: msg,
		})
	}

	if len(cmd.Items) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}

	for idx, item := range cmd.Items {
		field := func(name string) string {
			return "items[" + strconv.Itoa(idx) + "]." + name
		}
		if item.Name == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   field("name"),
				Message: "name is required",
			})
		}
		if item.Price <= 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   field("price"),
				Message: "price must be positive",
			})
		}
		if item.Quantity < 1 {
			details = append(details, apperrors.ValidationDetail{
				Field:   field("quantity"),
				Message: "quantity must be at least 1",
			})
		}
	}

	if cmd.Total <= 0 {
		msg := "total must be positive"
		if cmd.Total == 0 {
			msg = "total is required"
		}
		details = append(details, apperrors.ValidationDetail{
			Field:   "total",
			Message: msg,
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

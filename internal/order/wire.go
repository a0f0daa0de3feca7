package order

import (
	"go.uber.org/zap"

	"tableside/internal/config"
	"tableside/internal/order/controller"
	"tableside/internal/order/service"
)

func NewModule(repo service.OrderRepository, notifier service.Notifier, cfg *config.Config, logger *zap.Logger) *controller.Controller {
	svc := service.NewOrderService(
		repo,
		notifier,
		logger,
		cfg.Order.DefaultPrepMinutes,
		cfg.Order.DispatchBufferMinutes,
	)

	return controller.NewController(svc, logger)
}

package menu

import (
	"go.uber.org/zap"

	"tableside/internal/menu/service"
)

func NewModule(repo Repository, logger *zap.Logger) *Controller {
	svc := service.NewService(repo)
	return NewController(svc, logger)
}

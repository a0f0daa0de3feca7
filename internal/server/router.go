package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"tableside/internal/menu"
	ordercontroller "tableside/internal/order/controller"
	"tableside/internal/realtime"
)

func NewRouter(
	orderCtrl *ordercontroller.Controller,
	menuCtrl *menu.Controller,
	realtimeCtrl *realtime.Controller,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", orderCtrl.CreateOrder)
		r.Get("/", orderCtrl.ListOrders)
		r.Get("/{orderId}", orderCtrl.GetOrder)
		r.Patch("/{orderId}/status", orderCtrl.UpdateStatus)
	})

	r.Route("/menu", func(r chi.Router) {
		r.Get("/", menuCtrl.ListMenu)
		r.Get("/{itemId}", menuCtrl.GetMenuItem)
	})

	r.Route("/events", func(r chi.Router) {
		r.Get("/tables/{tableNo}", realtimeCtrl.StreamTable)
		r.Get("/kitchen", realtimeCtrl.StreamKitchen)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info("request completed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("requestId", middleware.GetReqID(r.Context())),
			)
		})
	}
}

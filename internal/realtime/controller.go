package realtime

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tableside/internal/notifier"
)

const heartbeatInterval = 15 * time.Second

// Controller streams room events over SSE. Each open stream is one hub
// connection; closing the request tears the whole membership down.
type Controller struct {
	hub    *notifier.Hub
	logger *zap.Logger
}

func NewController(hub *notifier.Hub, logger *zap.Logger) *Controller {
	return &Controller{
		hub:    hub,
		logger: logger,
	}
}

func (c *Controller) StreamTable(w http.ResponseWriter, r *http.Request) {
	tableNo, err := strconv.Atoi(chi.URLParam(r, "tableNo"))
	if err != nil || tableNo <= 0 {
		http.Error(w, "tableNo must be a positive integer", http.StatusBadRequest)
		return
	}

	c.stream(w, r, zap.Int("tableNo", tableNo), func(connID string) {
		c.hub.SubscribeTable(connID, tableNo)
	})
}

func (c *Controller) StreamKitchen(w http.ResponseWriter, r *http.Request) {
	c.stream(w, r, zap.String("room", notifier.KitchenRoom), func(connID string) {
		c.hub.SubscribeKitchen(connID)
	})
}

func (c *Controller) stream(w http.ResponseWriter, r *http.Request, field zap.Field, join func(connID string)) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	connID := uuid.New().String()
	logger := c.logger.With(zap.String("connectionId", connID), field)

	events := c.hub.Attach(connID)
	join(connID)
	defer c.hub.UnsubscribeAll(connID)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	logger.Info("client connected")
	defer logger.Info("client disconnected")

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			// Comment line keeps idle proxies from closing the stream.
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case ev, open := <-events:
			if !open {
				return
			}
			data, err := json.Marshal(ev.Payload)
			if err != nil {
				logger.Error("failed to encode event payload", zap.String("event", ev.Name), zap.Error(err))
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Name, data)
			flusher.Flush()
		}
	}
}

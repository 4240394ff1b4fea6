package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/sse"

	"github.com/asandikci/strongswan/internal/events"
)

// registerEventRoutes registers the SSE endpoint streaming log and
// level-change events to connected clients.
func (s *Server) registerEventRoutes() {
	sse.Register(s.api, huma.Operation{
		OperationID: "events-stream",
		Method:      http.MethodGet,
		Path:        "/api/events",
		Summary:     "Server-Sent Events Stream",
		Description: "Real-time stream of emitted log messages and logger level changes",
		Tags:        []string{"events"},
	}, map[string]any{
		"log-entry":     events.LogEntryEvent{},
		"level-changed": events.LevelChangedEvent{},
	}, func(ctx context.Context, _ *struct{}, send sse.Sender) {
		eventCh := make(chan any, 64)

		unsubscribers := []func(){
			events.SubscribeToChannel[events.LogEntryEvent](s.opts.EventBus, eventCh),
			events.SubscribeToChannel[events.LevelChangedEvent](s.opts.EventBus, eventCh),
		}
		defer func() {
			for _, unsub := range unsubscribers {
				unsub()
			}
		}()

		// Confirm the connection before the first real event arrives.
		if err := send.Data(events.LogEntryEvent{
			Timestamp: time.Now().Format(time.RFC3339Nano),
			Group:     "~1",
			Logger:    "api",
			Message:   "event stream established",
		}); err != nil {
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case event := <-eventCh:
				if err := send.Data(event); err != nil {
					return
				}
			}
		}
	})
}

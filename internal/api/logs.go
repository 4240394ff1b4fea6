package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/asandikci/strongswan/internal/logging"
)

// LogEntryData is one history entry as served by the API.
type LogEntryData struct {
	Timestamp string `json:"timestamp" example:"2026-08-24T10:30:00.123Z" doc:"Emission timestamp"`
	Group     string `json:"group" example:"~1" doc:"Category symbol and tier digit"`
	Logger    string `json:"logger" example:"ike" doc:"Emitting logger"`
	Message   string `json:"message" doc:"Rendered message"`
	Bytes     int    `json:"bytes,omitempty" doc:"Span length for hex dumps"`
}

// LogListResponse wraps the history listing.
type LogListResponse struct {
	Body struct {
		Entries []LogEntryData `json:"entries"`
		Count   int            `json:"count" example:"42"`
	}
}

func (s *Server) registerLogRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-logs",
		Method:      http.MethodGet,
		Path:        "/api/logs",
		Summary:     "Recent Logs",
		Description: "Recent log messages from the in-memory history buffer",
		Tags:        []string{"logs"},
	}, func(_ context.Context, _ *struct{}) (*LogListResponse, error) {
		resp := &LogListResponse{}
		resp.Body.Entries = []LogEntryData{}

		if buffer := logging.History(); buffer != nil {
			for _, e := range buffer.ReadAll() {
				resp.Body.Entries = append(resp.Body.Entries, LogEntryData{
					Timestamp: e.Time.Format(time.RFC3339Nano),
					Group:     e.Group,
					Logger:    e.Logger,
					Message:   e.Message,
					Bytes:     e.Bytes,
				})
			}
		}
		resp.Body.Count = len(resp.Body.Entries)
		return resp, nil
	})
}

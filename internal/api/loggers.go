package api

import (
	"context"
	"net/http"
	"sort"

	"github.com/danielgtaylor/huma/v2"

	"github.com/asandikci/strongswan/internal/events"
	"github.com/asandikci/strongswan/internal/logging"
)

// LoggerInfo describes one registry logger.
type LoggerInfo struct {
	Name  string `json:"name" example:"ike" doc:"Logger name"`
	Level string `json:"level" example:"all1" doc:"Current level specification"`
}

// LoggerListData is the payload of the logger listing.
type LoggerListData struct {
	Loggers []LoggerInfo `json:"loggers"`
	Count   int          `json:"count" example:"4"`
}

// LoggerListResponse wraps the listing body.
type LoggerListResponse struct {
	Body LoggerListData
}

// SetLevelInput selects a logger and its new level.
type SetLevelInput struct {
	Name string `path:"name" example:"ike" doc:"Logger name"`
	Body struct {
		Level string `json:"level" example:"raw3,all2" doc:"Level specification"`
	}
}

// SetLevelResponse echoes the applied level.
type SetLevelResponse struct {
	Body LoggerInfo
}

func (s *Server) registerLoggerRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-loggers",
		Method:      http.MethodGet,
		Path:        "/api/loggers",
		Summary:     "List Loggers",
		Description: "All registry loggers with their current level masks",
		Tags:        []string{"loggers"},
	}, func(_ context.Context, _ *struct{}) (*LoggerListResponse, error) {
		snapshot := logging.Snapshot()

		loggers := make([]LoggerInfo, 0, len(snapshot))
		for name, level := range snapshot {
			loggers = append(loggers, LoggerInfo{Name: name, Level: level.String()})
		}
		sort.Slice(loggers, func(i, j int) bool { return loggers[i].Name < loggers[j].Name })

		return &LoggerListResponse{
			Body: LoggerListData{Loggers: loggers, Count: len(loggers)},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "set-logger-level",
		Method:      http.MethodPut,
		Path:        "/api/loggers/{name}",
		Summary:     "Set Logger Level",
		Description: "Replace a logger's enabled mask from a level specification",
		Tags:        []string{"loggers"},
		Errors:      []int{422},
	}, func(_ context.Context, input *SetLevelInput) (*SetLevelResponse, error) {
		if err := logging.SetLevel(input.Name, input.Body.Level); err != nil {
			return nil, huma.Error422UnprocessableEntity("invalid level specification", err)
		}

		applied := logging.Get(input.Name).Mask().String()
		s.log.Log(logging.Audit|logging.Level1, "level of %q set to %s", input.Name, applied)

		if s.opts.EventBus != nil {
			s.opts.EventBus.Publish(events.LevelChangedEvent{
				Logger: input.Name,
				Level:  applied,
			})
		}

		return &SetLevelResponse{
			Body: LoggerInfo{Name: input.Name, Level: applied},
		}, nil
	})
}

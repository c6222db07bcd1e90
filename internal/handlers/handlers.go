package handlers

import (
	"github.com/speedsolve/cubecomp/internal/auth"
	"github.com/speedsolve/cubecomp/internal/services"
	"github.com/speedsolve/cubecomp/internal/websocket"
)

// Handlers holds all HTTP handler dependencies
type Handlers struct {
	Competition services.CompetitionServicer
	Records     services.RecordsServicer
	Competitor  services.CompetitorServicer
	Settings    services.SettingsServicer
	Auth        *auth.Auth
	Hub         *websocket.Hub
	Log         HTTPLogger
}

// HTTPLogger is an interface for loggers that support HTTP logging control
type HTTPLogger interface {
	IsHTTPLoggingEnabled() bool
}

// New creates a new Handlers instance with all dependencies
func New(
	competition services.CompetitionServicer,
	records services.RecordsServicer,
	competitor services.CompetitorServicer,
	settings services.SettingsServicer,
	moderatorAuth *auth.Auth,
	hub *websocket.Hub,
	log HTTPLogger,
) *Handlers {
	return &Handlers{
		Competition: competition,
		Records:     records,
		Competitor:  competitor,
		Settings:    settings,
		Auth:        moderatorAuth,
		Hub:         hub,
		Log:         log,
	}
}

// NoopHTTPLogger is a test logger that always returns false for HTTP logging
type NoopHTTPLogger struct{}

func (NoopHTTPLogger) IsHTTPLoggingEnabled() bool { return false }

// NewForTesting creates a Handlers instance with a known moderator password
func NewForTesting(
	competition services.CompetitionServicer,
	records services.RecordsServicer,
	competitor services.CompetitorServicer,
	settings services.SettingsServicer,
) *Handlers {
	return &Handlers{
		Competition: competition,
		Records:     records,
		Competitor:  competitor,
		Settings:    settings,
		Auth:        auth.New("test-password"),
		Log:         NoopHTTPLogger{},
	}
}

package handlers

import (
	"github.com/speedsolve/cubecomp/internal/models"
)

// EventResponse is one catalog event
type EventResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Icon         string `json:"icon"`
	Format       string `json:"format"`
	AttemptCount int    `json:"attempt_count"`
}

// CompetitionResponse is the response for competition lookups
type CompetitionResponse struct {
	Number    int      `json:"number"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Active    bool     `json:"active"`
	Events    []string `json:"events"`
}

// ScramblesResponse is the response for the scrambles endpoint
type ScramblesResponse struct {
	EventID   string   `json:"event_id"`
	Scrambles []string `json:"scrambles"`
}

// AttemptResponse is one attempt inside a submission response
type AttemptResponse struct {
	Centis  int    `json:"centis"`
	Penalty string `json:"penalty"`
	Display string `json:"display"`
}

// SubmissionResponse is the response for submission operations
type SubmissionResponse struct {
	EventID      string            `json:"event_id,omitempty"`
	CompetitorID int64             `json:"competitor_id"`
	Attempts     []AttemptResponse `json:"attempts"`
	State        string            `json:"state"`
	Result       int               `json:"result"`
	Display      string            `json:"display,omitempty"`
	Place        int               `json:"place,omitempty"`
}

// CompetitorResponse is the response for competitor operations
type CompetitorResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	WcaID string `json:"wca_id,omitempty"`
}

// SettingsResponse is the response for settings
type SettingsResponse struct {
	BaseURL string `json:"base_url"`
}

func penaltyString(p int) string {
	switch p {
	case 1:
		return "plus2"
	case 2:
		return "dnf"
	default:
		return "none"
	}
}

func toSubmissionResponse(eventID string, sub models.Submission) SubmissionResponse {
	attempts := make([]AttemptResponse, len(sub.Attempts))
	for i, a := range sub.Attempts {
		attempts[i] = AttemptResponse{
			Centis:  a.Centis,
			Penalty: penaltyString(int(a.Penalty)),
			Display: a.Display(),
		}
	}
	return SubmissionResponse{
		EventID:      eventID,
		CompetitorID: sub.CompetitorID,
		Attempts:     attempts,
		State:        sub.State.String(),
		Result:       sub.Result,
		Display:      sub.Display,
		Place:        sub.Place,
	}
}

package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/speedsolve/cubecomp/internal/competition"
	"github.com/speedsolve/cubecomp/internal/events"
	"github.com/speedsolve/cubecomp/internal/models"
	"github.com/speedsolve/cubecomp/internal/timing"
)

const dateLayout = "2006-01-02"

// ==================== Events ====================

func (h *Handlers) handleGetEvents(w http.ResponseWriter, r *http.Request) {
	catalog := events.All()
	resp := make([]EventResponse, len(catalog))
	for i, ev := range catalog {
		resp[i] = EventResponse{
			ID:           ev.ID,
			Title:        ev.Title,
			Icon:         ev.Icon,
			Format:       string(ev.Format),
			AttemptCount: ev.AttemptCount(),
		}
	}
	respondOK(w, resp)
}

// ==================== Competitions ====================

func toCompetitionResponse(comp *models.Competition) CompetitionResponse {
	return CompetitionResponse{
		Number:    comp.Number,
		StartDate: comp.StartDate.Format(dateLayout),
		EndDate:   comp.EndDate.Format(dateLayout),
		Active:    competition.IsActive(comp, time.Now()),
		Events:    comp.EventIDs(),
	}
}

func (h *Handlers) handleGetActiveCompetition(w http.ResponseWriter, r *http.Request) {
	comp, err := h.Competition.Active(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, toCompetitionResponse(comp))
}

func (h *Handlers) handleListCompetitions(w http.ResponseWriter, r *http.Request) {
	numbers, err := h.Competition.ListNumbers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, map[string][]int{"numbers": numbers})
}

func (h *Handlers) handleGetCompetition(w http.ResponseWriter, r *http.Request) {
	number, err := parseIntParam(r, "number")
	if err != nil {
		respondError(w, err)
		return
	}

	comp, err := h.Competition.Get(r.Context(), number)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, toCompetitionResponse(comp))
}

func (h *Handlers) handleGetScrambles(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	scrambles, err := h.Competition.Scrambles(r.Context(), eventID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, ScramblesResponse{EventID: eventID, Scrambles: scrambles})
}

func (h *Handlers) handleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	board, err := h.Competition.Leaderboard(r.Context(), eventID)
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]SubmissionResponse, len(board))
	for i, sub := range board {
		resp[i] = toSubmissionResponse(eventID, sub)
	}
	respondOK(w, resp)
}

// ==================== Attempts ====================

func attemptFromRequest(req AttemptSubmitRequest) (models.Attempt, error) {
	attempt := models.Attempt{Centis: req.Centis, Penalty: timing.PenaltyNone}
	switch {
	case req.DNF:
		attempt.Penalty = timing.PenaltyDNF
	case req.Plus2:
		attempt.Penalty = timing.PenaltyPlus2
	}

	if req.Time != "" {
		parts, ok := timing.Parse(req.Time)
		if !ok {
			return models.Attempt{}, BadRequest("Unrecognized time: " + req.Time)
		}
		attempt.Centis = timing.Pack(parts)
	}

	if len(req.FMCSolution) > 0 {
		attempt.Extra = &models.ExtraArgs{FMCSolution: req.FMCSolution}
		attempt.Centis = len(req.FMCSolution)
	}
	if req.MultiSuccess != nil && req.MultiAttempted != nil {
		attempt.Extra = &models.ExtraArgs{
			MultiSuccess:   *req.MultiSuccess,
			MultiAttempted: *req.MultiAttempted,
		}
	}
	return attempt, nil
}

func (h *Handlers) handleSubmitAttempt(w http.ResponseWriter, r *http.Request) {
	var req AttemptSubmitRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.EventID == "" {
		respondError(w, BadRequest("Missing event_id"))
		return
	}

	attempt, err := attemptFromRequest(req)
	if err != nil {
		respondError(w, err)
		return
	}

	sub, err := h.Competition.SubmitAttempt(r.Context(), req.EventID, req.CompetitorID, req.Index, attempt)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, toSubmissionResponse(req.EventID, *sub))
}

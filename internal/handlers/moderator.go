package handlers

import (
	"net/http"

	"github.com/speedsolve/cubecomp/internal/auth"
)

// ==================== Moderator Auth ====================

func (h *Handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	token, ok := h.Auth.Login(req.Password)
	if !ok {
		respondError(w, Unauthorized("Invalid password"))
		return
	}

	auth.SetSessionCookie(w, token)
	respondSuccess(w, "Logged in")
}

func (h *Handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.CookieName); err == nil {
		h.Auth.Logout(cookie.Value)
	}

	auth.ClearSessionCookie(w)
	respondSuccess(w, "Logged out")
}

// ==================== Moderation ====================

func (h *Handlers) handleGetPending(w http.ResponseWriter, r *http.Request) {
	items, err := h.Competition.PendingReview(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]SubmissionResponse, len(items))
	for i, item := range items {
		resp[i] = toSubmissionResponse(item.EventID, item.Submission)
	}
	respondOK(w, resp)
}

func (h *Handlers) handleModerate(w http.ResponseWriter, r *http.Request) {
	var req ModerateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.EventID == "" {
		respondError(w, BadRequest("Missing event_id"))
		return
	}

	sub, err := h.Competition.Moderate(r.Context(), req.EventID, req.CompetitorID, req.Approve)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, toSubmissionResponse(req.EventID, *sub))
}

func (h *Handlers) handleCloseCompetition(w http.ResponseWriter, r *http.Request) {
	comp, err := h.Competition.CloseActive(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, toCompetitionResponse(comp))
}

// ==================== Settings ====================

func (h *Handlers) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	baseURL, err := h.Settings.GetBaseURL(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, SettingsResponse{BaseURL: baseURL})
}

func (h *Handlers) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.Settings.SetBaseURL(r.Context(), req.BaseURL); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, SettingsResponse{BaseURL: req.BaseURL})
}

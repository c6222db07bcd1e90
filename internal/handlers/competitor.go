package handlers

import (
	"net/http"

	"github.com/speedsolve/cubecomp/internal/events"
	"github.com/speedsolve/cubecomp/internal/models"
	"github.com/speedsolve/cubecomp/internal/records"
)

// ==================== Competitors ====================

func (h *Handlers) handleGetCompetitors(w http.ResponseWriter, r *http.Request) {
	competitors, err := h.Competitor.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	resp := make([]CompetitorResponse, len(competitors))
	for i, c := range competitors {
		resp[i] = CompetitorResponse{ID: c.ID, Name: c.Name, WcaID: c.WcaID}
	}
	respondOK(w, resp)
}

func (h *Handlers) handleGetCompetitor(w http.ResponseWriter, r *http.Request) {
	id, err := parseInt64Param(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	c, err := h.Competitor.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, CompetitorResponse{ID: c.ID, Name: c.Name, WcaID: c.WcaID})
}

func (h *Handlers) handleCreateCompetitor(w http.ResponseWriter, r *http.Request) {
	var req CompetitorCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	id, err := h.Competitor.Create(r.Context(), req.Name, req.WcaID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, CompetitorResponse{ID: id, Name: req.Name, WcaID: req.WcaID})
}

func (h *Handlers) handleUpdateCompetitor(w http.ResponseWriter, r *http.Request) {
	id, err := parseInt64Param(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req CompetitorUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.Competitor.Update(r.Context(), id, req.Name, req.WcaID); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, CompetitorResponse{ID: id, Name: req.Name, WcaID: req.WcaID})
}

func (h *Handlers) handleDeleteCompetitor(w http.ResponseWriter, r *http.Request) {
	id, err := parseInt64Param(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Competitor.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondDeleted(w)
}

// ==================== Records ====================

func (h *Handlers) handleGetCompetitorRecords(w http.ResponseWriter, r *http.Request) {
	id, err := parseInt64Param(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	all, err := h.Records.All(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, all)
}

func (h *Handlers) handleGetRecordsQR(w http.ResponseWriter, r *http.Request) {
	id, err := parseInt64Param(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	png, err := h.Competitor.GenerateRecordsQRImage(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(png)
}

func (h *Handlers) handleFederationImport(w http.ResponseWriter, r *http.Request) {
	id, err := parseInt64Param(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req FederationImportRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	ev, ok := events.ByID(req.EventID)
	if !ok {
		respondError(w, NotFound("Unknown event: "+req.EventID))
		return
	}

	var candidate records.Candidate
	if ev.Format == events.FormatMulti {
		candidate = records.Candidate{Points: req.Points, TimeOfBest: req.TimeOfBest}
	} else {
		candidate = records.Candidate{
			Single:    models.Attempt{Centis: req.SingleCentis},
			Aggregate: req.Aggregate,
		}
	}

	best, err := h.Records.ImportFederation(r.Context(), id, req.EventID, candidate)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, best)
}

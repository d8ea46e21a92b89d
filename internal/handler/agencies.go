package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/communityfoodshare/agency-manager/backend/internal/domain"
	"github.com/communityfoodshare/agency-manager/backend/internal/utils"
)

// CreateAgency handles PUT /agency/. The body is a full agency record; a 400
// with the failing field names comes back when any rule fails, and nothing is
// persisted in that case.
func (h *Handler) CreateAgency(w http.ResponseWriter, r *http.Request) {
	agency := &domain.Agency{}
	if err := h.readJSON(r, agency); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if fields := utils.ValidateAgency(agency); len(fields) > 0 {
		h.invalidFields(w, r, fields)
		return
	}

	if err := h.repository.CreateAgency(agency); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, agency)
}

// UpdateAgency handles POST /agency/{id}. There is no partial patch: the body
// replaces the stored record wholesale, and the refreshed record is returned.
func (h *Handler) UpdateAgency(w http.ResponseWriter, r *http.Request) {
	agency := &domain.Agency{}
	if err := h.readJSON(r, agency); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if fields := utils.ValidateAgency(agency); len(fields) > 0 {
		h.invalidFields(w, r, fields)
		return
	}

	existing := r.Context().Value(AgencyCtxKey).(*domain.Agency)

	if err := h.repository.ReplaceAgency(existing.ID, agency); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "agency not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{"agency": agency})
}

// GetAgency handles GET /agency/{id}.
func (h *Handler) GetAgency(w http.ResponseWriter, r *http.Request) {
	agency := r.Context().Value(AgencyCtxKey).(*domain.Agency)
	h.writeJSON(w, r, http.StatusOK, map[string]any{"agency": agency})
}

// ListAgencies handles GET /agency/, backing the agency directory table.
func (h *Handler) ListAgencies(w http.ResponseWriter, r *http.Request) {
	agencies, err := h.repository.GetAllAgencies()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{"agencies": agencies})
}

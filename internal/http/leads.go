package http

import (
	"net/http"
)

func (h *Handler) handleLeadList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "lead_list"

	list, err := h.svc.Leads.ListLeads(r.Context())
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleLeadGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "lead_get"

	id, err := parseID(r, "id")
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	lead, err := h.svc.Leads.GetLead(r.Context(), id)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, leadResponse{Lead: lead})
}

func (h *Handler) handleLeadCreate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "lead_create"

	var req createLeadRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	lead, err := h.svc.Leads.CreateLead(r.Context(), req.toModel())
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}
	writeJSON(w, http.StatusCreated, leadResponse{Lead: lead})
}

func (h *Handler) handleLeadUpdate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "lead_update"

	id, err := parseID(r, "id")
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	var req updateLeadRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	lead, err := h.svc.Leads.UpdateLead(r.Context(), id, req.toModel())
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, leadResponse{Lead: lead})
}

func (h *Handler) handleLeadDelete(w http.ResponseWriter, r *http.Request) {
	const handlerName = "lead_delete"

	id, err := parseID(r, "id")
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	if err := h.svc.Leads.DeleteLead(r.Context(), id); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleLeadFollowUps(w http.ResponseWriter, r *http.Request) {
	leads, err := h.svc.Leads.PendingFollowUps(r.Context())
	if err != nil {
		h.writeError(w, r, "lead_follow_ups", err)
		return
	}
	writeJSON(w, http.StatusOK, leadsResponse{Leads: leads})
}

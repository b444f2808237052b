package http

import "net/http"

func (h *Handler) handleTeamList(w http.ResponseWriter, r *http.Request) {
	teams, err := h.svc.Teams.ListTeams(r.Context())
	if err != nil {
		h.writeError(w, r, "team_list", err)
		return
	}
	writeJSON(w, http.StatusOK, teamsResponse{Teams: teams})
}

func (h *Handler) handleTeamCreate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_create"

	var req createTeamRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	team, err := h.svc.Teams.CreateTeam(r.Context(), req.toModel())
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}
	writeJSON(w, http.StatusCreated, teamResponse{Team: team})
}

func (h *Handler) handleTeamGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_get"

	id, err := parseID(r, "id")
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	team, err := h.svc.Teams.GetTeam(r.Context(), id)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, teamResponse{Team: team})
}

func (h *Handler) handleTeamUpdate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_update"

	id, err := parseID(r, "id")
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	var req updateTeamRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	team, err := h.svc.Teams.UpdateTeam(r.Context(), id, req.toModel())
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, teamResponse{Team: team})
}

func (h *Handler) handleTeamDelete(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_delete"

	id, err := parseID(r, "id")
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	if err := h.svc.Teams.DeleteTeam(r.Context(), id); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleTeamPerformance(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_performance"

	id, err := parseID(r, "id")
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	perf, err := h.svc.Teams.TeamPerformance(r.Context(), id)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, teamPerformanceResponse{TeamID: id, Performance: perf})
}

func (h *Handler) handleTeamMembersPerformance(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_members_performance"

	id, err := parseID(r, "id")
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	members, err := h.svc.Teams.MemberPerformance(r.Context(), id)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, memberPerformanceResponse{TeamID: id, Members: members})
}

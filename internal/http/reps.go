package http

import "net/http"

func (h *Handler) handleRepList(w http.ResponseWriter, r *http.Request) {
	reps, err := h.svc.Reps.ListReps(r.Context())
	if err != nil {
		h.writeError(w, r, "rep_list", err)
		return
	}
	writeJSON(w, http.StatusOK, repsResponse{Reps: reps})
}

func (h *Handler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	board, err := h.svc.Reps.Leaderboard(r.Context())
	if err != nil {
		h.writeError(w, r, "leaderboard", err)
		return
	}
	writeJSON(w, http.StatusOK, leaderboardResponse{Leaderboard: board})
}

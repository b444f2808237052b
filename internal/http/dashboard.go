package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sales-crm-service/internal/service"
)

// handleDashboardChart отдаёт графики дашборда. Если данных для агрегации нет,
// сервис возвращает заглушку с placeholder=true, ответ всё равно 200.
func (h *Handler) handleDashboardChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dash := h.svc.Dashboard

	switch chart := chi.URLParam(r, "chart"); chart {
	case "lead-performance":
		writeJSON(w, http.StatusOK, dash.LeadPerformance(ctx))
	case "sales-funnel":
		writeJSON(w, http.StatusOK, dash.SalesFunnel(ctx))
	case "revenue-trends":
		writeJSON(w, http.StatusOK, dash.RevenueTrends(ctx))
	case "team-rankings":
		writeJSON(w, http.StatusOK, dash.TeamRankings(ctx))
	case "recent-activity":
		writeJSON(w, http.StatusOK, dash.RecentActivity(ctx))
	default:
		h.writeError(w, r, "dashboard_chart", service.ErrNotFound(fmt.Sprintf("unknown chart %q", chart)))
	}
}

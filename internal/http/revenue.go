package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sales-crm-service/internal/service"
)

func (h *Handler) handleRevenueInsights(w http.ResponseWriter, r *http.Request) {
	insights, err := h.svc.Revenue.AllRevenueInsights(r.Context())
	if err != nil {
		h.writeError(w, r, "revenue_insights", err)
		return
	}
	writeJSON(w, http.StatusOK, insights)
}

// handleRevenueMetric отдаёт одну карточку или один график по имени из пути.
func (h *Handler) handleRevenueMetric(w http.ResponseWriter, r *http.Request) {
	const handlerName = "revenue_metric"

	name := chi.URLParam(r, "metric")
	fn, ok := h.revenueMetrics()[name]
	if !ok {
		h.writeError(w, r, handlerName, service.ErrNotFound(fmt.Sprintf("unknown revenue metric %q", name)))
		return
	}

	res, err := fn(r.Context())
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) revenueMetrics() map[string]func(context.Context) (any, error) {
	rev := h.svc.Revenue
	return map[string]func(context.Context) (any, error){
		"overview":      func(ctx context.Context) (any, error) { return rev.RevenueOverview(ctx) },
		"sales-cycle":   func(ctx context.Context) (any, error) { return rev.SalesCycle(ctx) },
		"deal-value":    func(ctx context.Context) (any, error) { return rev.DealValue(ctx) },
		"deals-won":     func(ctx context.Context) (any, error) { return rev.DealsWon(ctx) },
		"opportunities": func(ctx context.Context) (any, error) { return rev.Opportunities(ctx) },
		"trends":        func(ctx context.Context) (any, error) { return rev.RevenueTrends(ctx) },
		"quarterly":     func(ctx context.Context) (any, error) { return rev.QuarterlyRevenue(ctx) },
		"funnel":        func(ctx context.Context) (any, error) { return rev.FunnelProgression(ctx) },
	}
}

package http

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"sales-crm-service/internal/model"
	"sales-crm-service/internal/service"
)

func (h *Handler) handleDailyReport(w http.ResponseWriter, r *http.Request) {
	reports, err := h.svc.Reports.DailyLeadsReport(r.Context())
	if err != nil {
		h.writeError(w, r, "report_daily", err)
		return
	}
	writeJSON(w, http.StatusOK, dailyReportResponse{Reports: reports})
}

// handleUserReport отдаёт лиды менеджера за период; неизвестный period трактуется как today.
// Неположительный repId не ошибка: сервис вернёт пустой список.
func (h *Handler) handleUserReport(w http.ResponseWriter, r *http.Request) {
	const handlerName = "report_user"

	repID, err := strconv.ParseInt(chi.URLParam(r, "repId"), 10, 64)
	if err != nil {
		h.writeError(w, r, handlerName, service.ErrBadRequest("repId must be an integer"))
		return
	}

	period := model.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = model.PeriodToday
	}

	leads, err := h.svc.Reports.UserLeadsReport(r.Context(), repID, period)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, userReportResponse{RepID: repID, Period: period, Leads: leads})
}

func (h *Handler) handleActivity(w http.ResponseWriter, r *http.Request) {
	const handlerName = "report_activity"

	f, err := h.parseActivityFilter(r)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	report, err := h.svc.Reports.WebsiteActivity(r.Context(), f)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// handleActivityExport собирает CSV в буфер целиком, чтобы ошибка
// не оборвала уже начатый ответ.
func (h *Handler) handleActivityExport(w http.ResponseWriter, r *http.Request) {
	const handlerName = "report_activity_export"

	f, err := h.parseActivityFilter(r)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	var buf bytes.Buffer
	if err := h.svc.Reports.ExportActivity(r.Context(), f, &buf); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="website-activity.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) handleDateFilters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Reports.QuickDateFilters())
}

func (h *Handler) handleQuotaAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.svc.Quota.LeadQuotaAlerts(r.Context())
	if err != nil {
		h.writeError(w, r, "alerts_quota", err)
		return
	}
	writeJSON(w, http.StatusOK, quotaAlertsResponse{Alerts: alerts})
}

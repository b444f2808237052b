package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sales-crm-service/internal/model"
	"sales-crm-service/internal/service"
)

type LeadService interface {
	ListLeads(ctx context.Context) (model.LeadList, error)
	GetLead(ctx context.Context, id int64) (model.Lead, error)
	CreateLead(ctx context.Context, lead model.Lead) (model.Lead, error)
	UpdateLead(ctx context.Context, id int64, patch model.LeadPatch) (model.Lead, error)
	DeleteLead(ctx context.Context, id int64) error
	PendingFollowUps(ctx context.Context) ([]model.Lead, error)
}

type ReportService interface {
	DailyLeadsReport(ctx context.Context) ([]model.RepDailyReport, error)
	UserLeadsReport(ctx context.Context, repID int64, period model.Period) ([]model.Lead, error)
	WebsiteActivity(ctx context.Context, f model.ActivityFilter) (model.ActivityReport, error)
	ExportActivity(ctx context.Context, f model.ActivityFilter, w io.Writer) error
	QuickDateFilters() model.QuickDateFilters
}

type QuotaService interface {
	LeadQuotaAlerts(ctx context.Context) ([]model.QuotaAlert, error)
}

type RevenueService interface {
	RevenueOverview(ctx context.Context) (model.Metric, error)
	SalesCycle(ctx context.Context) (model.Metric, error)
	DealValue(ctx context.Context) (model.Metric, error)
	DealsWon(ctx context.Context) (model.Metric, error)
	Opportunities(ctx context.Context) (model.Metric, error)
	RevenueTrends(ctx context.Context) (model.ChartData, error)
	QuarterlyRevenue(ctx context.Context) (model.ChartData, error)
	FunnelProgression(ctx context.Context) (model.ChartData, error)
	AllRevenueInsights(ctx context.Context) (model.RevenueInsights, error)
}

type DashboardService interface {
	LeadPerformance(ctx context.Context) model.ChartResult
	SalesFunnel(ctx context.Context) model.ChartResult
	RevenueTrends(ctx context.Context) model.ChartResult
	TeamRankings(ctx context.Context) model.TeamRankings
	RecentActivity(ctx context.Context) model.ActivityFeed
}

type RepService interface {
	ListReps(ctx context.Context) ([]model.SalesRep, error)
	Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error)
}

type TeamService interface {
	ListTeams(ctx context.Context) ([]model.Team, error)
	GetTeam(ctx context.Context, id int64) (model.Team, error)
	CreateTeam(ctx context.Context, t model.Team) (model.Team, error)
	UpdateTeam(ctx context.Context, id int64, patch model.TeamPatch) (model.Team, error)
	DeleteTeam(ctx context.Context, id int64) error
	TeamPerformance(ctx context.Context, id int64) (model.TeamPerformance, error)
	MemberPerformance(ctx context.Context, id int64) ([]model.MemberPerformance, error)
}

// Services — набор бизнес-сервисов, которые обслуживает роутер.
type Services struct {
	Leads     LeadService
	Reports   ReportService
	Quota     QuotaService
	Revenue   RevenueService
	Dashboard DashboardService
	Reps      RepService
	Teams     TeamService
}

// RouterConfig — инфраструктурные настройки роутера.
type RouterConfig struct {
	AllowedOrigins []string
	// Location — зона, в которой разбираются даты из query-параметров.
	Location *time.Location
	// Registry, если nil, создаётся заново.
	Registry *prometheus.Registry
}

type Handler struct {
	svc      Services
	log      *slog.Logger
	cfg      RouterConfig
	metrics  *httpMetrics
	validate *validator.Validate
}

func NewHandler(svc Services, cfg RouterConfig, log *slog.Logger) *Handler {
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &Handler{
		svc:      svc,
		log:      log,
		cfg:      cfg,
		metrics:  newHTTPMetrics(cfg.Registry),
		validate: newValidator(),
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	r.Use(h.metrics.middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.cfg.Registry, promhttp.HandlerOpts{}))

	r.Route("/leads", func(r chi.Router) {
		r.Get("/", h.handleLeadList)
		r.Post("/", h.handleLeadCreate)
		r.Get("/follow-ups", h.handleLeadFollowUps)
		r.Get("/{id}", h.handleLeadGet)
		r.Patch("/{id}", h.handleLeadUpdate)
		r.Delete("/{id}", h.handleLeadDelete)
	})

	r.Route("/reports", func(r chi.Router) {
		r.Get("/daily", h.handleDailyReport)
		r.Get("/users/{repId}", h.handleUserReport)
		r.Get("/activity", h.handleActivity)
		r.Get("/activity/export", h.handleActivityExport)
		r.Get("/date-filters", h.handleDateFilters)
	})

	r.Get("/alerts/quota", h.handleQuotaAlerts)

	r.Route("/revenue", func(r chi.Router) {
		r.Get("/insights", h.handleRevenueInsights)
		r.Get("/{metric}", h.handleRevenueMetric)
	})

	r.Get("/dashboard/{chart}", h.handleDashboardChart)

	r.Get("/reps", h.handleRepList)
	r.Get("/leaderboard", h.handleLeaderboard)

	r.Route("/teams", func(r chi.Router) {
		r.Get("/", h.handleTeamList)
		r.Post("/", h.handleTeamCreate)
		r.Get("/{id}", h.handleTeamGet)
		r.Put("/{id}", h.handleTeamUpdate)
		r.Delete("/{id}", h.handleTeamDelete)
		r.Get("/{id}/performance", h.handleTeamPerformance)
		r.Get("/{id}/members/performance", h.handleTeamMembersPerformance)
	})

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, handlerName string, err error) {
	var appErr *service.AppError
	if !errors.As(err, &appErr) {
		appErr = service.ErrInternal("internal error", err)
	}

	level := slog.LevelWarn
	if appErr.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.log.LogAttrs(r.Context(), level, "handler error",
		slog.String("handler", handlerName),
		slog.String("request_id", RequestIDFrom(r.Context())),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	writeJSON(w, appErr.Status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, `{"error":{"code":"INTERNAL","message":"encode response"}}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

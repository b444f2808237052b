// Package worker запускает фоновые задачи по расписанию.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron"

	"sales-crm-service/internal/model"
	"sales-crm-service/internal/notify"
)

const runTimeout = time.Minute

// QuotaChecker считает алерты по дневной норме.
type QuotaChecker interface {
	LeadQuotaAlerts(ctx context.Context) ([]model.QuotaAlert, error)
}

// QuotaWorker по расписанию проверяет норму лидов и отправляет отчёт нотификаторам.
type QuotaWorker struct {
	checker  QuotaChecker
	notifier notify.Notifier
	cron     *cron.Cron
	log      *slog.Logger
	now      func() time.Time

	belowQuota prometheus.Gauge
	runs       *prometheus.CounterVec
}

// NewQuotaWorker разбирает cron-выражение (с секундами) и регистрирует метрики в reg.
func NewQuotaWorker(
	checker QuotaChecker,
	notifier notify.Notifier,
	spec string,
	loc *time.Location,
	reg prometheus.Registerer,
	log *slog.Logger,
) (*QuotaWorker, error) {
	schedule, err := cron.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("parse quota schedule %q: %w", spec, err)
	}

	factory := promauto.With(reg)
	w := &QuotaWorker{
		checker:  checker,
		notifier: notifier,
		cron:     cron.NewWithLocation(loc),
		log:      log,
		now:      time.Now,
		belowQuota: factory.NewGauge(prometheus.GaugeOpts{
			Name: "crm_sales_reps_below_quota",
			Help: "Number of sales reps below the daily lead quota at the last scan",
		}),
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "crm_quota_scans_total",
			Help: "Total number of quota scans by result",
		}, []string{"result"}),
	}
	w.cron.Schedule(schedule, w)
	return w, nil
}

// Start запускает планировщик в отдельной горутине.
func (w *QuotaWorker) Start() {
	w.log.Info("quota worker started")
	w.cron.Start()
}

// Stop останавливает планировщик. Уже идущий прогон не прерывается.
func (w *QuotaWorker) Stop() {
	w.cron.Stop()
	w.log.Info("quota worker stopped")
}

// Run реализует cron.Job.
func (w *QuotaWorker) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if _, err := w.RunOnce(ctx); err != nil {
		w.log.Error("quota scan failed", slog.Any("err", err))
	}
}

// RunOnce выполняет одну проверку и рассылает отчёт.
func (w *QuotaWorker) RunOnce(ctx context.Context) (notify.QuotaReport, error) {
	report := notify.QuotaReport{
		RunID:       uuid.NewString(),
		GeneratedAt: w.now(),
	}

	alerts, err := w.checker.LeadQuotaAlerts(ctx)
	if err != nil {
		w.runs.WithLabelValues("error").Inc()
		return report, fmt.Errorf("check quota: %w", err)
	}
	report.Alerts = alerts
	w.belowQuota.Set(float64(len(alerts)))

	w.log.Info("quota scan finished",
		slog.String("run_id", report.RunID),
		slog.Int("below_quota", len(alerts)),
	)

	if err := w.notifier.NotifyQuota(ctx, report); err != nil {
		w.runs.WithLabelValues("notify_error").Inc()
		return report, fmt.Errorf("notify quota: %w", err)
	}
	w.runs.WithLabelValues("ok").Inc()
	return report, nil
}

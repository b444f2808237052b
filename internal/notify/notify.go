// Package notify доставляет результаты проверки дневной нормы лидов: в лог, в RabbitMQ и по почте.
package notify

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"sales-crm-service/internal/model"
)

// QuotaReport результат одного прогона проверки нормы.
type QuotaReport struct {
	RunID       string             `json:"run_id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Alerts      []model.QuotaAlert `json:"alerts"`
}

// Notifier доставляет отчёт получателю.
type Notifier interface {
	NotifyQuota(ctx context.Context, report QuotaReport) error
}

// LogNotifier пишет каждого отстающего менеджера в лог.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) NotifyQuota(ctx context.Context, report QuotaReport) error {
	if len(report.Alerts) == 0 {
		n.log.InfoContext(ctx, "all sales reps met daily lead quota", slog.String("run_id", report.RunID))
		return nil
	}
	for _, a := range report.Alerts {
		n.log.WarnContext(ctx, "sales rep below daily lead quota",
			slog.String("run_id", report.RunID),
			slog.Int64("rep_id", a.RepID),
			slog.String("rep_name", a.RepName),
			slog.Int("current", a.CurrentLeads),
			slog.Int("required", a.RequiredLeads),
			slog.Int("deficit", a.Deficit),
		)
	}
	return nil
}

// Multi рассылает отчёт всем получателям и собирает их ошибки.
type Multi []Notifier

func (m Multi) NotifyQuota(ctx context.Context, report QuotaReport) error {
	var errs []error
	for _, n := range m {
		if err := n.NotifyQuota(ctx, report); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"sales-crm-service/internal/model"
)

type ReportService struct {
	mock.Mock
}

func (m *ReportService) DailyLeadsReport(ctx context.Context) ([]model.RepDailyReport, error) {
	args := m.Called(ctx)
	reports, _ := args.Get(0).([]model.RepDailyReport)
	return reports, args.Error(1)
}

func (m *ReportService) UserLeadsReport(ctx context.Context, repID int64, period model.Period) ([]model.Lead, error) {
	args := m.Called(ctx, repID, period)
	leads, _ := args.Get(0).([]model.Lead)
	return leads, args.Error(1)
}

func (m *ReportService) WebsiteActivity(ctx context.Context, f model.ActivityFilter) (model.ActivityReport, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(model.ActivityReport), args.Error(1)
}

// ExportActivity пишет в w строку из первого аргумента Return.
func (m *ReportService) ExportActivity(ctx context.Context, f model.ActivityFilter, w io.Writer) error {
	args := m.Called(ctx, f, w)
	if s, ok := args.Get(0).(string); ok {
		_, _ = io.WriteString(w, s)
	}
	return args.Error(1)
}

func (m *ReportService) QuickDateFilters() model.QuickDateFilters {
	args := m.Called()
	return args.Get(0).(model.QuickDateFilters)
}

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-crm-service/internal/model"
	"sales-crm-service/internal/repository"
	"sales-crm-service/internal/service"
)

func TestPercentageChange(t *testing.T) {
	tests := []struct {
		current, previous float64
		want              string
	}{
		{0, 0, "0%"},
		{5, 0, "+100%"},
		{-5, 0, "0%"},
		{50, 100, "-50.0%"},
		{150, 100, "+50.0%"},
		{100, 100, "+0.0%"},
		{1, 3, "-66.7%"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, service.PercentageChange(tt.current, tt.previous), "%v vs %v", tt.current, tt.previous)
	}
}

func TestAverageCycleDays(t *testing.T) {
	now := time.Date(2025, 7, 30, 12, 0, 0, 0, time.UTC)
	deals := []model.Deal{
		{ID: 1, Stage: model.DealStageClosed, CreatedAt: now.AddDate(0, 0, -10)},
		{ID: 2, Stage: model.DealStageClosed, CreatedAt: now.AddDate(0, 0, -20).Add(-time.Hour)},
		{ID: 3, Stage: model.DealStageNegotiation, CreatedAt: now.AddDate(0, 0, -100)},
	}

	assert.Equal(t, 10, service.CycleDays(deals[0], now))
	assert.Equal(t, 21, service.CycleDays(deals[1], now))
	assert.Equal(t, 16, service.AverageCycleDays(deals, now))
	assert.Equal(t, 0, service.AverageCycleDays(deals[2:], now))
	assert.Equal(t, 0, service.AverageCycleDays(nil, now))
}

func TestFilterDealsByYear(t *testing.T) {
	deals := []model.Deal{
		{ID: 1, Year: 2025, CreatedAt: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)},
		{ID: 2, CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 3, CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	got := service.FilterDealsByYear(deals, 2025)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}

func revenueDeals() []model.Deal {
	d := func(id int64, value float64, stage model.DealStage, year int, month time.Month) model.Deal {
		return model.Deal{ID: id, Value: value, Stage: stage, Year: year,
			CreatedAt: time.Date(year, month, 10, 0, 0, 0, 0, time.UTC)}
	}
	return []model.Deal{
		d(1, 40000, model.DealStageClosed, 2025, time.January),
		d(2, 20000, model.DealStageClosed, 2025, time.April),
		d(3, 60000, model.DealStageNegotiation, 2025, time.July),
		d(4, 10000, model.DealStageConnected, 2025, time.July),
		d(5, 30000, model.DealStageClosed, 2024, time.May),
		d(6, 30000, model.DealStageRejected, 2024, time.June),
	}
}

func TestRevenueService_Metrics(t *testing.T) {
	settings := settingsAt(fixedNow)
	settings.RevenueYear = 2025
	svc := service.NewRevenueService(repository.NewMemoryDealRepo(revenueDeals()), settings)
	ctx := context.Background()

	overview, err := svc.RevenueOverview(ctx)
	require.NoError(t, err)
	assert.Equal(t, "$130K", overview.Value)
	assert.Equal(t, model.TrendUp, overview.Trend)
	assert.Equal(t, "+116.7%", overview.TrendValue)

	value, err := svc.DealValue(ctx)
	require.NoError(t, err)
	assert.Equal(t, "$30K", value.Value)
	assert.Equal(t, "+0.0%", value.TrendValue)
	assert.Equal(t, "$40K", value.Details["highest"])
	assert.Equal(t, "$20K", value.Details["lowest"])

	won, err := svc.DealsWon(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2", won.Value)
	assert.Equal(t, "+100.0%", won.TrendValue)

	opps, err := svc.Opportunities(ctx)
	require.NoError(t, err)
	assert.Equal(t, "4", opps.Value)
	assert.Equal(t, 2, opps.Details["this_month"])
	assert.Equal(t, "50.0%", opps.Details["conversion_rate"])

	cycle, err := svc.SalesCycle(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.TrendUp, cycle.Trend, "shorter cycle is an improvement")

	funnel, err := svc.FunnelProgression(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Connected", "Meeting Booked", "Negotiation", "Closed"}, funnel.Categories)
	assert.Equal(t, []float64{1, 0, 1, 2}, funnel.Series[0].Data)

	quarterly, err := svc.QuarterlyRevenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, []float64{40000, 20000, 0, 0}, quarterly.Series[0].Data)

	trends, err := svc.RevenueTrends(ctx)
	require.NoError(t, err)
	require.Len(t, trends.Series[0].Data, 12)
	assert.Equal(t, 40000.0, trends.Series[0].Data[0])
	assert.Equal(t, 20000.0, trends.Series[0].Data[3])
}

func TestRevenueService_AllRevenueInsights(t *testing.T) {
	settings := settingsAt(fixedNow)
	settings.RevenueYear = 2025
	svc := service.NewRevenueService(repository.NewMemoryDealRepo(revenueDeals()), settings)

	all, err := svc.AllRevenueInsights(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "$130K", all.Revenue.Value)
	assert.Equal(t, "2", all.DealsWon.Value)
	assert.Len(t, all.Trends.Categories, 12)
	assert.Len(t, all.Quarterly.Categories, 4)
	assert.Len(t, all.Funnel.Categories, 4)
}

type failingDeals struct{}

func (failingDeals) ListDeals(context.Context) ([]model.Deal, error) {
	return nil, errors.New("db down")
}

func TestRevenueService_AllRevenueInsights_Error(t *testing.T) {
	svc := service.NewRevenueService(failingDeals{}, settingsAt(fixedNow))

	_, err := svc.AllRevenueInsights(context.Background())
	assert.Equal(t, "INTERNAL", appErr(t, err).Code)
}

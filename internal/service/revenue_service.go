package service

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"golang.org/x/sync/errgroup"

	"sales-crm-service/internal/model"
)

// DealRepository описывает источник сделок.
type DealRepository interface {
	ListDeals(ctx context.Context) ([]model.Deal, error)
}

// RevenueService считает метрики выручки за целевой год в сравнении с предыдущим.
type RevenueService struct {
	deals    DealRepository
	settings Settings
}

func NewRevenueService(deals DealRepository, settings Settings) *RevenueService {
	return &RevenueService{deals: deals, settings: settings}
}

func (s *RevenueService) yearDeals(ctx context.Context) (current, previous []model.Deal, err error) {
	deals, err := s.deals.ListDeals(ctx)
	if err != nil {
		return nil, nil, ErrInternal("failed to list deals", err)
	}
	year := s.settings.revenueYear()
	return FilterDealsByYear(deals, year), FilterDealsByYear(deals, year-1), nil
}

func (s *RevenueService) RevenueOverview(ctx context.Context) (model.Metric, error) {
	cur, prev, err := s.yearDeals(ctx)
	if err != nil {
		return model.Metric{}, err
	}

	current, previous := sumValues(cur), sumValues(prev)
	return model.Metric{
		Value:      formatThousands(current),
		Trend:      trendOf(current >= previous),
		TrendValue: PercentageChange(current, previous),
		Details: map[string]any{
			"current_year":  current,
			"previous_year": previous,
		},
	}, nil
}

// SalesCycle — средняя длительность цикла. Тренд up, если цикл не удлинился.
func (s *RevenueService) SalesCycle(ctx context.Context) (model.Metric, error) {
	cur, prev, err := s.yearDeals(ctx)
	if err != nil {
		return model.Metric{}, err
	}

	now := s.settings.now()
	current, previous := AverageCycleDays(cur, now), AverageCycleDays(prev, now)

	days := make([]int, 0)
	for _, d := range ClosedDeals(cur) {
		days = append(days, CycleDays(d, now))
	}
	shortest, longest := 0, 0
	if len(days) > 0 {
		shortest, longest = slices.Min(days), slices.Max(days)
	}

	return model.Metric{
		Value:      fmt.Sprintf("%d days", current),
		Trend:      trendOf(current <= previous),
		TrendValue: PercentageChange(float64(current), float64(previous)),
		Details: map[string]any{
			"avg_days": current,
			"shortest": shortest,
			"longest":  longest,
		},
	}, nil
}

func (s *RevenueService) DealValue(ctx context.Context) (model.Metric, error) {
	cur, prev, err := s.yearDeals(ctx)
	if err != nil {
		return model.Metric{}, err
	}

	current, previous := AverageDealValue(cur), AverageDealValue(prev)

	highest, lowest := "$0", "$0"
	if won := ClosedDeals(cur); len(won) > 0 {
		values := make([]float64, 0, len(won))
		for _, d := range won {
			values = append(values, d.Value)
		}
		highest, lowest = formatThousands(slices.Max(values)), formatThousands(slices.Min(values))
	}

	return model.Metric{
		Value:      formatThousands(current),
		Trend:      trendOf(current >= previous),
		TrendValue: PercentageChange(current, previous),
		Details: map[string]any{
			"avg_value": formatThousands(current),
			"highest":   highest,
			"lowest":    lowest,
		},
	}, nil
}

func (s *RevenueService) DealsWon(ctx context.Context) (model.Metric, error) {
	cur, prev, err := s.yearDeals(ctx)
	if err != nil {
		return model.Metric{}, err
	}

	current, previous := len(ClosedDeals(cur)), len(ClosedDeals(prev))
	return model.Metric{
		Value:      strconv.Itoa(current),
		Trend:      trendOf(current >= previous),
		TrendValue: PercentageChange(float64(current), float64(previous)),
		Details: map[string]any{
			"current":  current,
			"previous": previous,
		},
	}, nil
}

// Opportunities — количество сделок за год, за текущий месяц и конверсия в закрытые.
func (s *RevenueService) Opportunities(ctx context.Context) (model.Metric, error) {
	cur, prev, err := s.yearDeals(ctx)
	if err != nil {
		return model.Metric{}, err
	}

	loc := s.settings.location()
	month := s.settings.now().Month()
	thisMonth := 0
	for _, d := range cur {
		if d.CreatedAt.In(loc).Month() == month {
			thisMonth++
		}
	}

	conversion := "0%"
	if len(cur) > 0 {
		conversion = fmt.Sprintf("%.1f%%", float64(len(ClosedDeals(cur)))/float64(len(cur))*100)
	}

	return model.Metric{
		Value:      strconv.Itoa(len(cur)),
		Trend:      trendOf(len(cur) >= len(prev)),
		TrendValue: PercentageChange(float64(len(cur)), float64(len(prev))),
		Details: map[string]any{
			"total":           len(cur),
			"this_month":      thisMonth,
			"conversion_rate": conversion,
		},
	}, nil
}

func (s *RevenueService) RevenueTrends(ctx context.Context) (model.ChartData, error) {
	cur, _, err := s.yearDeals(ctx)
	if err != nil {
		return model.ChartData{}, err
	}
	return MonthlyRevenue(cur, s.settings.location()), nil
}

func (s *RevenueService) QuarterlyRevenue(ctx context.Context) (model.ChartData, error) {
	cur, _, err := s.yearDeals(ctx)
	if err != nil {
		return model.ChartData{}, err
	}
	return QuarterlyRevenue(cur, s.settings.location()), nil
}

func (s *RevenueService) FunnelProgression(ctx context.Context) (model.ChartData, error) {
	cur, _, err := s.yearDeals(ctx)
	if err != nil {
		return model.ChartData{}, err
	}
	return FunnelProgression(cur), nil
}

// AllRevenueInsights считает все метрики параллельно. Первая ошибка отменяет остальные.
func (s *RevenueService) AllRevenueInsights(ctx context.Context) (model.RevenueInsights, error) {
	var res model.RevenueInsights
	g, ctx := errgroup.WithContext(ctx)

	metric := func(dst *model.Metric, fn func(context.Context) (model.Metric, error)) {
		g.Go(func() error {
			m, err := fn(ctx)
			if err != nil {
				return err
			}
			*dst = m
			return nil
		})
	}
	chart := func(dst *model.ChartData, fn func(context.Context) (model.ChartData, error)) {
		g.Go(func() error {
			c, err := fn(ctx)
			if err != nil {
				return err
			}
			*dst = c
			return nil
		})
	}

	metric(&res.Revenue, s.RevenueOverview)
	metric(&res.SalesCycle, s.SalesCycle)
	metric(&res.DealValue, s.DealValue)
	metric(&res.DealsWon, s.DealsWon)
	metric(&res.Opportunities, s.Opportunities)
	chart(&res.Trends, s.RevenueTrends)
	chart(&res.Quarterly, s.QuarterlyRevenue)
	chart(&res.Funnel, s.FunnelProgression)

	if err := g.Wait(); err != nil {
		return model.RevenueInsights{}, err
	}
	return res, nil
}

package service

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"sales-crm-service/internal/model"
)

const (
	leadPerformanceDays = 14
	revenueTrendMonths  = 6
)

// Заглушки графиков: отдаются, когда реальная агрегация упала или ничего не нашла.
var (
	leadPerformancePlaceholder = model.ChartData{
		Categories: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		Series:     []model.Series{{Name: "Leads", Data: []float64{12, 19, 15, 27, 22, 31, 28}}},
	}
	salesFunnelPlaceholder = model.ChartData{
		Categories: []string{"Leads", "Connected", "Meetings", "Closed"},
		Series:     []model.Series{{Name: "Conversion Rate", Data: []float64{100, 25, 12, 8}}},
	}
	revenueTrendsPlaceholder = model.ChartData{
		Categories: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
		Series: []model.Series{{
			Name: "Cumulative ARR",
			Data: []float64{2500000, 3200000, 3800000, 4500000, 5100000, 5800000},
		}},
	}
)

// RepStatsSource считает лиды по менеджерам.
type RepStatsSource interface {
	RepLeadStats(ctx context.Context) ([]model.RepLeadStats, error)
}

// DashboardService собирает графики дашборда. Вместо ошибки возвращает заглушку с Placeholder=true.
type DashboardService struct {
	leads    LeadSource
	stats    RepStatsSource
	settings Settings
	log      *slog.Logger
}

func NewDashboardService(leads LeadSource, stats RepStatsSource, settings Settings, log *slog.Logger) *DashboardService {
	return &DashboardService{leads: leads, stats: stats, settings: settings, log: log}
}

// LeadPerformance — количество лидов по дням за последние 14 дней, включая сегодня.
func (s *DashboardService) LeadPerformance(ctx context.Context) model.ChartResult {
	list, err := s.leads.ListLeads(ctx)
	if err != nil {
		return s.placeholder("lead_performance", leadPerformancePlaceholder, err.Error())
	}

	loc := s.settings.location()
	today := startOfDay(s.settings.now())
	first := today.AddDate(0, 0, -(leadPerformanceDays - 1))

	index := make(map[string]int, leadPerformanceDays)
	categories := make([]string, 0, leadPerformanceDays)
	for i := 0; i < leadPerformanceDays; i++ {
		day := first.AddDate(0, 0, i)
		index[day.Format(dateLayout)] = i
		categories = append(categories, day.Format("Jan 2"))
	}

	data := make([]float64, leadPerformanceDays)
	total := 0
	for _, l := range list.Leads {
		if i, ok := index[DateKey(l.CreatedAt, loc)]; ok {
			data[i]++
			total++
		}
	}
	if total == 0 {
		return s.placeholder("lead_performance", leadPerformancePlaceholder, "no leads in the last 14 days")
	}

	return model.ChartResult{ChartData: model.ChartData{
		Categories: categories,
		Series:     []model.Series{{Name: "Leads", Data: data}},
	}}
}

// SalesFunnel — доля лидов на этапах Connected, Meeting Booked и Meeting Done в процентах.
func (s *DashboardService) SalesFunnel(ctx context.Context) model.ChartResult {
	list, err := s.leads.ListLeads(ctx)
	if err != nil {
		return s.placeholder("sales_funnel", salesFunnelPlaceholder, err.Error())
	}

	total := len(list.Leads)
	if total == 0 {
		return s.placeholder("sales_funnel", salesFunnelPlaceholder, "no leads")
	}

	counts := make(map[model.LeadStatus]int)
	for _, l := range list.Leads {
		counts[l.Status]++
	}
	pct := func(n int) float64 {
		return math.Round(float64(n) / float64(total) * 100)
	}

	return model.ChartResult{ChartData: model.ChartData{
		Categories: []string{"Leads", "Connected", "Meetings", "Closed"},
		Series: []model.Series{{
			Name: "Conversion Rate",
			Data: []float64{
				100,
				pct(counts[model.LeadStatusConnected]),
				pct(counts[model.LeadStatusMeetingBooked]),
				pct(counts[model.LeadStatusMeetingDone]),
			},
		}},
	}}
}

// RevenueTrends — накопленный ARR лидов за последние 6 месяцев, в которых были лиды.
func (s *DashboardService) RevenueTrends(ctx context.Context) model.ChartResult {
	list, err := s.leads.ListLeads(ctx)
	if err != nil {
		return s.placeholder("revenue_trends", revenueTrendsPlaceholder, err.Error())
	}

	loc := s.settings.location()
	arr := make(map[string]float64)
	for _, l := range list.Leads {
		if l.CreatedAt.IsZero() {
			continue
		}
		arr[l.CreatedAt.In(loc).Format("2006-01")] += l.ARR
	}
	if len(arr) == 0 {
		return s.placeholder("revenue_trends", revenueTrendsPlaceholder, "no leads")
	}

	months := make([]string, 0, len(arr))
	for m := range arr {
		months = append(months, m)
	}
	sort.Strings(months)
	if len(months) > revenueTrendMonths {
		months = months[len(months)-revenueTrendMonths:]
	}

	categories := make([]string, 0, len(months))
	data := make([]float64, 0, len(months))
	var cumulative float64
	for _, m := range months {
		cumulative += arr[m]
		data = append(data, cumulative)
		if t, err := time.ParseInLocation("2006-01", m, loc); err == nil {
			categories = append(categories, t.Format("Jan 06"))
		} else {
			categories = append(categories, m)
		}
	}

	return model.ChartResult{ChartData: model.ChartData{
		Categories: categories,
		Series:     []model.Series{{Name: "Cumulative ARR", Data: data}},
	}}
}

// TeamRankings — лиды по менеджерам: всего, за неделю и за сегодня.
func (s *DashboardService) TeamRankings(ctx context.Context) model.TeamRankings {
	stats, err := s.stats.RepLeadStats(ctx)
	if err != nil {
		s.log.Warn("chart aggregation failed, using placeholder",
			slog.String("chart", "team_rankings"),
			slog.String("reason", err.Error()),
		)
		return model.TeamRankings{Reps: []model.RepLeadStats{}, Placeholder: true, Reason: err.Error()}
	}
	return model.TeamRankings{Reps: stats}
}

func (s *DashboardService) placeholder(chart string, data model.ChartData, reason string) model.ChartResult {
	s.log.Warn("chart aggregation failed, using placeholder",
		slog.String("chart", chart),
		slog.String("reason", reason),
	)
	return model.ChartResult{ChartData: cloneChart(data), Placeholder: true, Reason: reason}
}

func cloneChart(c model.ChartData) model.ChartData {
	out := model.ChartData{Categories: append([]string(nil), c.Categories...)}
	for _, s := range c.Series {
		out.Series = append(out.Series, model.Series{Name: s.Name, Data: append([]float64(nil), s.Data...)})
	}
	return out
}

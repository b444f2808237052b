package service

import (
	"fmt"
	"math"
	"time"

	"sales-crm-service/internal/model"
)

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var funnelStages = []model.DealStage{
	model.DealStageConnected,
	model.DealStageMeetingBooked,
	model.DealStageNegotiation,
	model.DealStageClosed,
}

// PercentageChange форматирует относительное изменение со знаком и одним знаком после точки.
// При нулевой базе: "+100%", если current > 0, иначе "0%".
func PercentageChange(current, previous float64) string {
	if previous == 0 {
		if current > 0 {
			return "+100%"
		}
		return "0%"
	}
	change := (current - previous) / previous * 100
	sign := ""
	if change >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.1f%%", sign, change)
}

// FilterDealsByYear оставляет сделки указанного года.
func FilterDealsByYear(deals []model.Deal, year int) []model.Deal {
	res := make([]model.Deal, 0)
	for _, d := range deals {
		if d.EffectiveYear() == year {
			res = append(res, d)
		}
	}
	return res
}

// ClosedDeals оставляет выигранные сделки.
func ClosedDeals(deals []model.Deal) []model.Deal {
	res := make([]model.Deal, 0)
	for _, d := range deals {
		if d.IsClosed() {
			res = append(res, d)
		}
	}
	return res
}

// CycleDays полные сутки между созданием сделки и now, с округлением вверх.
func CycleDays(d model.Deal, now time.Time) int {
	diff := now.Sub(d.CreatedAt)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// AverageCycleDays округлённое среднее CycleDays по закрытым сделкам, 0 если их нет.
func AverageCycleDays(deals []model.Deal, now time.Time) int {
	closed := ClosedDeals(deals)
	if len(closed) == 0 {
		return 0
	}
	total := 0
	for _, d := range closed {
		total += CycleDays(d, now)
	}
	return int(math.Round(float64(total) / float64(len(closed))))
}

// AverageDealValue средняя стоимость закрытых сделок.
func AverageDealValue(deals []model.Deal) float64 {
	closed := ClosedDeals(deals)
	if len(closed) == 0 {
		return 0
	}
	return sumValues(closed) / float64(len(closed))
}

// MonthlyRevenue раскладывает выручку закрытых сделок по месяцам создания.
func MonthlyRevenue(deals []model.Deal, loc *time.Location) model.ChartData {
	data := make([]float64, 12)
	for _, d := range ClosedDeals(deals) {
		data[d.CreatedAt.In(loc).Month()-1] += d.Value
	}
	return model.ChartData{
		Categories: append([]string(nil), monthNames...),
		Series:     []model.Series{{Name: "Revenue", Data: data}},
	}
}

// QuarterlyRevenue раскладывает выручку закрытых сделок по кварталам.
func QuarterlyRevenue(deals []model.Deal, loc *time.Location) model.ChartData {
	data := make([]float64, 4)
	for _, d := range ClosedDeals(deals) {
		data[(d.CreatedAt.In(loc).Month()-1)/3] += d.Value
	}
	return model.ChartData{
		Categories: []string{"Q1", "Q2", "Q3", "Q4"},
		Series:     []model.Series{{Name: "Revenue", Data: data}},
	}
}

// FunnelProgression считает сделки на основных стадиях воронки.
func FunnelProgression(deals []model.Deal) model.ChartData {
	counts := make(map[model.DealStage]int, len(funnelStages))
	for _, d := range deals {
		counts[d.Stage]++
	}

	categories := make([]string, 0, len(funnelStages))
	data := make([]float64, 0, len(funnelStages))
	for _, st := range funnelStages {
		categories = append(categories, string(st))
		data = append(data, float64(counts[st]))
	}
	return model.ChartData{
		Categories: categories,
		Series:     []model.Series{{Name: "Deals", Data: data}},
	}
}

func sumValues(deals []model.Deal) float64 {
	var sum float64
	for _, d := range deals {
		sum += d.Value
	}
	return sum
}

func formatThousands(v float64) string {
	return fmt.Sprintf("$%dK", int64(math.Round(v/1000)))
}

func trendOf(up bool) model.Trend {
	if up {
		return model.TrendUp
	}
	return model.TrendDown
}

package service

import (
	"time"

	"sales-crm-service/internal/model"
)

const dateLayout = "2006-01-02"

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DateKey — календарная дата t в зоне loc в формате YYYY-MM-DD.
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dateLayout)
}

// PeriodRange возвращает полуинтервал [start, end) для периода относительно now.
// Неделя начинается в воскресенье. Неизвестный период трактуется как today.
func PeriodRange(p model.Period, now time.Time) (time.Time, time.Time) {
	today := startOfDay(now)

	switch p {
	case model.PeriodYesterday:
		return today.AddDate(0, 0, -1), today
	case model.PeriodWeek:
		start := today.AddDate(0, 0, -int(today.Weekday()))
		return start, start.AddDate(0, 0, 7)
	case model.PeriodMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return start, start.AddDate(0, 1, 0)
	default:
		return today, today.AddDate(0, 0, 1)
	}
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

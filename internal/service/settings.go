package service

import "time"

// Settings — бизнес-параметры и часы, общие для сервисов отчётности.
type Settings struct {
	Location                *time.Location
	LowPerformanceThreshold int
	MinimumDailyLeads       int
	// RevenueYear == 0 означает текущий год.
	RevenueYear int
	Now         func() time.Time
}

func (s Settings) location() *time.Location {
	if s.Location == nil {
		return time.Local
	}
	return s.Location
}

// now возвращает текущее время в настроенной зоне.
func (s Settings) now() time.Time {
	if s.Now != nil {
		return s.Now().In(s.location())
	}
	return time.Now().In(s.location())
}

func (s Settings) revenueYear() int {
	if s.RevenueYear > 0 {
		return s.RevenueYear
	}
	return s.now().Year()
}

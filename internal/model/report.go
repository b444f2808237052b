package model

import "time"

// Period окно отчёта по лидам менеджера.
type Period string

const (
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	PeriodWeek      Period = "week"
	PeriodMonth     Period = "month"
)

// RepDailyReport строка ежедневного отчёта по менеджеру.
type RepDailyReport struct {
	RepID          int64  `json:"rep_id"`
	RepName        string `json:"rep_name"`
	Leads          []Lead `json:"leads"`
	LeadCount      int    `json:"lead_count"`
	LowPerformance bool   `json:"low_performance"`
}

// QuotaAlert менеджер, не добравший дневную норму лидов.
type QuotaAlert struct {
	RepID         int64  `json:"rep_id"`
	RepName       string `json:"rep_name"`
	CurrentLeads  int    `json:"current_leads"`
	RequiredLeads int    `json:"required_leads"`
	Deficit       int    `json:"deficit"`
	Date          string `json:"date"`
}

// DedupResult итог дедупликации: оставшиеся лиды и выброшенные дубли.
type DedupResult struct {
	Unique            []Lead `json:"-"`
	DuplicatesRemoved []Lead `json:"duplicates_removed"`
	DuplicateCount    int    `json:"duplicate_count"`
}

// LeadList ответ на чтение списка лидов.
type LeadList struct {
	Leads []Lead       `json:"leads"`
	Dedup *DedupResult `json:"deduplication_result"`
}

// ActivityFilter фильтры отчёта по добавленным сайтам.
// Из дат берётся только календарный день; границы диапазона включаются.
type ActivityFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Date       *time.Time
	AddedBy    int64
	SearchTerm string
}

// ActivitySummary сводка по отфильтрованным лидам.
type ActivitySummary struct {
	TotalURLs  int            `json:"total_urls"`
	TotalARR   float64        `json:"total_arr"`
	ByStatus   map[string]int `json:"by_status"`
	ByCategory map[string]int `json:"by_category"`
}

// ActivityReport отфильтрованные лиды со сводкой.
type ActivityReport struct {
	Data    []Lead          `json:"data"`
	Summary ActivitySummary `json:"summary"`
}

// QuickDateFilters готовые границы дат для фильтров в UI (YYYY-MM-DD).
type QuickDateFilters struct {
	Today          string `json:"today"`
	Yesterday      string `json:"yesterday"`
	ThisWeekStart  string `json:"this_week_start"`
	ThisWeekEnd    string `json:"this_week_end"`
	LastWeekStart  string `json:"last_week_start"`
	LastWeekEnd    string `json:"last_week_end"`
	ThisMonthStart string `json:"this_month_start"`
	ThisMonthEnd   string `json:"this_month_end"`
}

// RepLeadStats количество лидов менеджера за разные окна.
type RepLeadStats struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	TotalLeads int    `json:"total_leads"`
	WeekLeads  int    `json:"week_leads"`
	TodayLeads int    `json:"today_leads"`
}

// TeamRankings рейтинг менеджеров по лидам для дашборда.
type TeamRankings struct {
	Reps        []RepLeadStats `json:"reps"`
	Placeholder bool           `json:"placeholder"`
	Reason      string         `json:"reason,omitempty"`
}

// ActivityItem строка ленты последних событий дашборда.
type ActivityItem struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	Time      string    `json:"time"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivityFeed лента последних событий. Placeholder выставляется, если лиды не удалось прочитать.
type ActivityFeed struct {
	Items       []ActivityItem `json:"items"`
	Placeholder bool           `json:"placeholder"`
	Reason      string         `json:"reason,omitempty"`
}

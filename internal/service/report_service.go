package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"sales-crm-service/internal/model"
)

// RepRepository описывает справочник менеджеров.
type RepRepository interface {
	ListReps(ctx context.Context) ([]model.SalesRep, error)
	GetRep(ctx context.Context, id int64) (model.SalesRep, error)
}

const unknownRep = "Unknown"

var exportHeader = []string{
	"Website URL", "Category", "Team Size", "ARR", "Status", "Funding Type", "Added By", "Date Added",
}

// ReportService строит отчёты по лидам в разрезе менеджеров и периодов.
type ReportService struct {
	leads    LeadSource
	reps     RepRepository
	settings Settings
}

func NewReportService(leads LeadSource, reps RepRepository, settings Settings) *ReportService {
	return &ReportService{leads: leads, reps: reps, settings: settings}
}

// DailyLeadsReport группирует сегодняшние лиды по менеджерам.
// В отчёт попадают все известные менеджеры и все, кто встречается в лидах, даже без лидов за сегодня.
func (s *ReportService) DailyLeadsReport(ctx context.Context) ([]model.RepDailyReport, error) {
	list, err := s.leads.ListLeads(ctx)
	if err != nil {
		return nil, err
	}
	reps, err := s.reps.ListReps(ctx)
	if err != nil {
		return nil, ErrInternal("failed to list sales reps", err)
	}

	loc := s.settings.location()
	today := DateKey(s.settings.now(), loc)

	names := make(map[int64]string, len(reps))
	roster := make(map[int64]*model.RepDailyReport, len(reps))
	add := func(id int64) *model.RepDailyReport {
		if r, ok := roster[id]; ok {
			return r
		}
		name, ok := names[id]
		if !ok {
			name = unknownRep
		}
		r := &model.RepDailyReport{RepID: id, RepName: name, Leads: make([]model.Lead, 0)}
		roster[id] = r
		return r
	}

	for _, rep := range reps {
		names[rep.ID] = rep.Name
	}
	for _, rep := range reps {
		add(rep.ID)
	}
	for _, l := range list.Leads {
		r := add(l.AddedBy)
		if DateKey(l.CreatedAt, loc) == today {
			r.Leads = append(r.Leads, l)
		}
	}

	res := make([]model.RepDailyReport, 0, len(roster))
	for _, r := range roster {
		sortNewestFirst(r.Leads)
		r.LeadCount = len(r.Leads)
		r.LowPerformance = r.LeadCount < s.settings.LowPerformanceThreshold
		res = append(res, *r)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].LeadCount != res[j].LeadCount {
			return res[i].LeadCount > res[j].LeadCount
		}
		return res[i].RepID < res[j].RepID
	})
	return res, nil
}

// UserLeadsReport возвращает лиды менеджера за период, новые первыми.
func (s *ReportService) UserLeadsReport(ctx context.Context, repID int64, period model.Period) ([]model.Lead, error) {
	if repID <= 0 {
		return []model.Lead{}, nil
	}

	list, err := s.leads.ListLeads(ctx)
	if err != nil {
		return nil, err
	}

	start, end := PeriodRange(period, s.settings.now())
	res := make([]model.Lead, 0)
	for _, l := range list.Leads {
		if l.AddedBy == repID && inRange(l.CreatedAt, start, end) {
			res = append(res, l)
		}
	}
	sortNewestFirst(res)
	return res, nil
}

// WebsiteActivity фильтрует лиды по датам, менеджеру и строке поиска и считает сводку.
func (s *ReportService) WebsiteActivity(ctx context.Context, f model.ActivityFilter) (model.ActivityReport, error) {
	list, err := s.leads.ListLeads(ctx)
	if err != nil {
		return model.ActivityReport{}, err
	}

	loc := s.settings.location()
	term := strings.ToLower(strings.TrimSpace(f.SearchTerm))

	data := make([]model.Lead, 0)
	for _, l := range list.Leads {
		key := DateKey(l.CreatedAt, loc)
		if f.StartDate != nil && key < f.StartDate.Format(dateLayout) {
			continue
		}
		if f.EndDate != nil && key > f.EndDate.Format(dateLayout) {
			continue
		}
		if f.Date != nil && key != f.Date.Format(dateLayout) {
			continue
		}
		if f.AddedBy > 0 && l.AddedBy != f.AddedBy {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(l.WebsiteURL), term) &&
			!strings.Contains(strings.ToLower(l.Category), term) &&
			!strings.Contains(strings.ToLower(l.AddedByName), term) {
			continue
		}
		data = append(data, l)
	}

	summary := model.ActivitySummary{
		TotalURLs:  len(data),
		ByStatus:   make(map[string]int),
		ByCategory: make(map[string]int),
	}
	for _, l := range data {
		summary.TotalARR += l.ARR
		summary.ByStatus[string(l.Status)]++
		summary.ByCategory[l.Category]++
	}
	return model.ActivityReport{Data: data, Summary: summary}, nil
}

// ExportActivity пишет отфильтрованные лиды в w в формате CSV.
func (s *ReportService) ExportActivity(ctx context.Context, f model.ActivityFilter, w io.Writer) error {
	report, err := s.WebsiteActivity(ctx, f)
	if err != nil {
		return err
	}

	loc := s.settings.location()
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, l := range report.Data {
		row := []string{
			l.WebsiteURL,
			l.Category,
			string(l.TeamSize),
			fmt.Sprintf("$%.1fM", l.ARR/1_000_000),
			string(l.Status),
			string(l.FundingType),
			l.AddedByName,
			l.CreatedAt.In(loc).Format("1/2/2006"),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// QuickDateFilters возвращает готовые границы дат для фильтров отчёта.
func (s *ReportService) QuickDateFilters() model.QuickDateFilters {
	today := startOfDay(s.settings.now())
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())

	return model.QuickDateFilters{
		Today:          today.Format(dateLayout),
		Yesterday:      today.AddDate(0, 0, -1).Format(dateLayout),
		ThisWeekStart:  weekStart.Format(dateLayout),
		ThisWeekEnd:    today.Format(dateLayout),
		LastWeekStart:  weekStart.AddDate(0, 0, -7).Format(dateLayout),
		LastWeekEnd:    weekStart.AddDate(0, 0, -1).Format(dateLayout),
		ThisMonthStart: monthStart.Format(dateLayout),
		ThisMonthEnd:   today.Format(dateLayout),
	}
}

// RepLeadStats считает лиды каждого менеджера: всего, за неделю и за сегодня.
func (s *ReportService) RepLeadStats(ctx context.Context) ([]model.RepLeadStats, error) {
	list, err := s.leads.ListLeads(ctx)
	if err != nil {
		return nil, err
	}
	reps, err := s.reps.ListReps(ctx)
	if err != nil {
		return nil, ErrInternal("failed to list sales reps", err)
	}

	now := s.settings.now()
	weekStart, weekEnd := PeriodRange(model.PeriodWeek, now)
	dayStart, dayEnd := PeriodRange(model.PeriodToday, now)

	byRep := make(map[int64]*model.RepLeadStats, len(reps))
	res := make([]*model.RepLeadStats, 0, len(reps))
	for _, rep := range reps {
		st := &model.RepLeadStats{ID: rep.ID, Name: rep.Name}
		byRep[rep.ID] = st
		res = append(res, st)
	}
	for _, l := range list.Leads {
		st, ok := byRep[l.AddedBy]
		if !ok {
			continue
		}
		st.TotalLeads++
		if inRange(l.CreatedAt, weekStart, weekEnd) {
			st.WeekLeads++
		}
		if inRange(l.CreatedAt, dayStart, dayEnd) {
			st.TodayLeads++
		}
	}

	out := make([]model.RepLeadStats, 0, len(res))
	for _, st := range res {
		out = append(out, *st)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalLeads > out[j].TotalLeads
	})
	return out, nil
}

func sortNewestFirst(leads []model.Lead) {
	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].CreatedAt.After(leads[j].CreatedAt)
	})
}

package service

import (
	"context"
	"sort"

	"sales-crm-service/internal/model"
)

// QuotaService проверяет дневную норму лидов по менеджерам.
type QuotaService struct {
	leads    LeadSource
	settings Settings
}

func NewQuotaService(leads LeadSource, settings Settings) *QuotaService {
	return &QuotaService{leads: leads, settings: settings}
}

// LeadQuotaAlerts возвращает менеджеров, не добравших норму за сегодня, худшие первыми.
// В субботу и воскресенье алертов нет.
func (s *QuotaService) LeadQuotaAlerts(ctx context.Context) ([]model.QuotaAlert, error) {
	now := s.settings.now()
	if isWeekend(now) {
		return []model.QuotaAlert{}, nil
	}

	list, err := s.leads.ListLeads(ctx)
	if err != nil {
		return nil, err
	}

	loc := s.settings.location()
	today := DateKey(now, loc)

	// В ростер попадают менеджеры, у которых в лидах указаны и ID, и имя. Побеждает последнее имя.
	names := make(map[int64]string)
	order := make([]int64, 0)
	counts := make(map[int64]int)
	for _, l := range list.Leads {
		if l.AddedBy != 0 && l.AddedByName != "" {
			if _, ok := names[l.AddedBy]; !ok {
				order = append(order, l.AddedBy)
			}
			names[l.AddedBy] = l.AddedByName
		}
		if l.AddedBy != 0 && DateKey(l.CreatedAt, loc) == today {
			counts[l.AddedBy]++
		}
	}

	required := s.settings.MinimumDailyLeads
	date := now.Format("Mon, Jan 2")
	alerts := make([]model.QuotaAlert, 0)
	for _, id := range order {
		current := counts[id]
		if current >= required {
			continue
		}
		alerts = append(alerts, model.QuotaAlert{
			RepID:         id,
			RepName:       names[id],
			CurrentLeads:  current,
			RequiredLeads: required,
			Deficit:       required - current,
			Date:          date,
		})
	}

	sort.Slice(alerts, func(i, j int) bool {
		if alerts[i].Deficit != alerts[j].Deficit {
			return alerts[i].Deficit > alerts[j].Deficit
		}
		return alerts[i].RepID < alerts[j].RepID
	})
	return alerts, nil
}

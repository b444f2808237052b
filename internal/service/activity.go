package service

import (
	"context"
	"log/slog"
	"strings"

	"sales-crm-service/internal/model"
)

const recentActivityLimit = 10

// RecentActivity собирает ленту из последних добавленных лидов, новые первыми.
func (s *DashboardService) RecentActivity(ctx context.Context) model.ActivityFeed {
	list, err := s.leads.ListLeads(ctx)
	if err != nil {
		s.log.Warn("activity feed failed, using placeholder",
			slog.String("reason", err.Error()),
		)
		return model.ActivityFeed{Items: []model.ActivityItem{}, Placeholder: true, Reason: err.Error()}
	}

	leads := append([]model.Lead(nil), list.Leads...)
	sortNewestFirst(leads)
	if len(leads) > recentActivityLimit {
		leads = leads[:recentActivityLimit]
	}

	loc := s.settings.location()
	items := make([]model.ActivityItem, 0, len(leads))
	for _, l := range leads {
		created := l.CreatedAt.In(loc)
		items = append(items, model.ActivityItem{
			ID:        l.ID,
			Title:     "New lead added: " + displayHost(l.WebsiteURL),
			Type:      "contact",
			Time:      created.Format("03:04 PM"),
			Date:      created.Format("1/2/2006"),
			CreatedAt: l.CreatedAt,
		})
	}
	return model.ActivityFeed{Items: items}
}

// displayHost убирает схему и завершающий слэш.
func displayHost(url string) string {
	if url == "" {
		return "Unknown URL"
	}
	url = strings.TrimPrefix(url, "https://")
	url = strings.TrimPrefix(url, "http://")
	return strings.TrimSuffix(url, "/")
}

package service_test

import (
	"io"
	"log/slog"
	"time"

	"sales-crm-service/internal/model"
	"sales-crm-service/internal/service"
)

// Среда, неделя начинается 27 июля.
var fixedNow = time.Date(2025, 7, 30, 12, 0, 0, 0, time.UTC)

var discardLog = slog.New(slog.NewTextHandler(io.Discard, nil))

func settingsAt(now time.Time) service.Settings {
	return service.Settings{
		Location:                time.UTC,
		LowPerformanceThreshold: 5,
		MinimumDailyLeads:       10,
		Now:                     func() time.Time { return now },
	}
}

func lead(id int64, url string, rep int64, repName string, created time.Time) model.Lead {
	return model.Lead{
		ID:          id,
		WebsiteURL:  url,
		AddedBy:     rep,
		AddedByName: repName,
		CreatedAt:   created,
		Status:      model.LeadStatusConnected,
		Category:    "SaaS",
		ARR:         100000,
	}
}

func testReps() []model.SalesRep {
	return []model.SalesRep{
		{ID: 1, Name: "Sarah Johnson", LeadsContacted: 145, MeetingsBooked: 32, DealsClosed: 12, TotalRevenue: 485000},
		{ID: 2, Name: "Michael Chen", LeadsContacted: 132, MeetingsBooked: 28, DealsClosed: 15, TotalRevenue: 620000},
		{ID: 3, Name: "Emily Rodriguez", LeadsContacted: 98, MeetingsBooked: 22, DealsClosed: 8, TotalRevenue: 310000},
		{ID: 4, Name: "David Kim", LeadsContacted: 120, MeetingsBooked: 25, DealsClosed: 10, TotalRevenue: 405000},
	}
}

package main

import (
	"context"
	"fmt"
	"log/slog"

	"sales-crm-service/internal/config"
	httpapi "sales-crm-service/internal/http"
	"sales-crm-service/internal/repository"
	"sales-crm-service/internal/seed"
	"sales-crm-service/internal/service"
)

// app собранный граф сервисов поверх выбранного хранилища.
type app struct {
	services httpapi.Services
	quota    *service.QuotaService
	close    func()
}

type stores struct {
	leads service.LeadRepository
	reps  service.RepRepository
	deals service.DealRepository
	teams service.TeamRepository
}

func newApp(ctx context.Context, cfg config.Config, log *slog.Logger) (*app, error) {
	st, closeFn, err := openStores(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	settings := service.Settings{
		Location:                cfg.Location,
		LowPerformanceThreshold: cfg.LowPerformanceThreshold,
		MinimumDailyLeads:       cfg.MinimumDailyLeads,
		RevenueYear:             cfg.RevenueYear,
	}

	leadService := service.NewLeadService(st.leads, settings, log)
	reportService := service.NewReportService(leadService, st.reps, settings)
	quotaService := service.NewQuotaService(leadService, settings)

	return &app{
		services: httpapi.Services{
			Leads:     leadService,
			Reports:   reportService,
			Quota:     quotaService,
			Revenue:   service.NewRevenueService(st.deals, settings),
			Dashboard: service.NewDashboardService(leadService, reportService, settings, log),
			Reps:      service.NewRepService(st.reps),
			Teams:     service.NewTeamService(st.teams, st.reps),
		},
		quota: quotaService,
		close: closeFn,
	}, nil
}

// openStores открывает PostgreSQL или заполняет in-memory хранилища встроенными данными.
func openStores(ctx context.Context, cfg config.Config, log *slog.Logger) (stores, func(), error) {
	if cfg.StorageDriver == config.DriverPostgres {
		db, err := repository.NewPostgres(ctx, cfg.DBDSN)
		if err != nil {
			return stores{}, nil, fmt.Errorf("init postgres: %w", err)
		}
		log.Info("using postgres storage")
		return stores{
			leads: repository.NewLeadRepo(db),
			reps:  repository.NewRepRepo(db),
			deals: repository.NewDealRepo(db),
			teams: repository.NewTeamRepo(db),
		}, db.Close, nil
	}

	ds, err := seed.Load()
	if err != nil {
		return stores{}, nil, fmt.Errorf("load seed data: %w", err)
	}
	log.Info("using in-memory storage",
		slog.Int("leads", len(ds.Leads)),
		slog.Int("reps", len(ds.Reps)),
	)
	return stores{
		leads: repository.NewMemoryLeadRepo(ds.Leads),
		reps:  repository.NewMemoryRepRepo(ds.Reps),
		deals: repository.NewMemoryDealRepo(ds.Deals),
		teams: repository.NewMemoryTeamRepo(ds.Teams),
	}, func() {}, nil
}

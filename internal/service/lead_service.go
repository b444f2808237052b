package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"sales-crm-service/internal/model"
	"sales-crm-service/internal/repository"
)

// LeadRepository описывает контракт хранилища лидов для бизнес-слоя.
type LeadRepository interface {
	ListLeads(ctx context.Context) ([]model.Lead, error)
	GetLead(ctx context.Context, id int64) (model.Lead, error)
	CreateLead(ctx context.Context, lead model.Lead) (model.Lead, error)
	UpdateLead(ctx context.Context, id int64, patch model.LeadPatch) (model.Lead, error)
	DeleteLead(ctx context.Context, id int64) error
	DeleteLeads(ctx context.Context, ids []int64) error
}

// LeadSource отдаёт актуальный (дедуплицированный) список лидов отчётным сервисам.
type LeadSource interface {
	ListLeads(ctx context.Context) (model.LeadList, error)
}

// LeadService — CRUD по лидам с дедупликацией при чтении.
type LeadService struct {
	repo     LeadRepository
	settings Settings
	log      *slog.Logger
}

func NewLeadService(repo LeadRepository, settings Settings, log *slog.Logger) *LeadService {
	return &LeadService{repo: repo, settings: settings, log: log}
}

// ListLeads читает лиды, схлопывает дубли по URL и удаляет выброшенные записи из хранилища.
// Dedup в ответе равен nil, если дублей не было.
func (s *LeadService) ListLeads(ctx context.Context) (model.LeadList, error) {
	leads, err := s.repo.ListLeads(ctx)
	if err != nil {
		return model.LeadList{}, ErrInternal("failed to list leads", err)
	}

	res := Deduplicate(leads)
	if res.DuplicateCount == 0 {
		return model.LeadList{Leads: leads}, nil
	}

	ids := make([]int64, 0, res.DuplicateCount)
	drop := make(map[int64]struct{}, res.DuplicateCount)
	for _, l := range res.DuplicatesRemoved {
		ids = append(ids, l.ID)
		drop[l.ID] = struct{}{}
	}
	if err := s.repo.DeleteLeads(ctx, ids); err != nil {
		return model.LeadList{}, ErrInternal("failed to remove duplicate leads", err)
	}
	s.log.Info("duplicate leads removed",
		slog.Int("count", res.DuplicateCount),
		slog.Any("ids", ids),
	)

	kept := make([]model.Lead, 0, len(res.Unique))
	for _, l := range leads {
		if _, ok := drop[l.ID]; !ok {
			kept = append(kept, l)
		}
	}
	return model.LeadList{Leads: kept, Dedup: &res}, nil
}

func (s *LeadService) GetLead(ctx context.Context, id int64) (model.Lead, error) {
	lead, err := s.repo.GetLead(ctx, id)
	if err != nil {
		return model.Lead{}, mapLeadError(err, "failed to get lead")
	}
	return lead, nil
}

// CreateLead проверяет URL, проставляет CreatedAt и сохраняет лид.
// ID из входных данных игнорируется.
func (s *LeadService) CreateLead(ctx context.Context, lead model.Lead) (model.Lead, error) {
	lead.WebsiteURL = strings.TrimSpace(lead.WebsiteURL)
	if lead.WebsiteURL == "" {
		return model.Lead{}, ErrBadRequest("missing url")
	}
	if lead.ARR < 0 {
		return model.Lead{}, ErrBadRequest("arr must not be negative")
	}

	lead.ID = 0
	lead.CreatedAt = s.settings.now()

	created, err := s.repo.CreateLead(ctx, lead)
	if err != nil {
		if errors.Is(err, repository.ErrLeadExists) {
			return model.Lead{}, duplicateURL(lead.WebsiteURL)
		}
		return model.Lead{}, ErrInternal("failed to create lead", err)
	}
	return created, nil
}

// UpdateLead накладывает патч на существующий лид.
func (s *LeadService) UpdateLead(ctx context.Context, id int64, patch model.LeadPatch) (model.Lead, error) {
	if patch.WebsiteURL != nil {
		url := strings.TrimSpace(*patch.WebsiteURL)
		if url == "" {
			return model.Lead{}, ErrBadRequest("missing url")
		}
		patch.WebsiteURL = &url
	}
	if patch.ARR != nil && *patch.ARR < 0 {
		return model.Lead{}, ErrBadRequest("arr must not be negative")
	}

	updated, err := s.repo.UpdateLead(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrLeadExists) && patch.WebsiteURL != nil {
			return model.Lead{}, duplicateURL(*patch.WebsiteURL)
		}
		return model.Lead{}, mapLeadError(err, "failed to update lead")
	}
	return updated, nil
}

func (s *LeadService) DeleteLead(ctx context.Context, id int64) error {
	if err := s.repo.DeleteLead(ctx, id); err != nil {
		return mapLeadError(err, "failed to delete lead")
	}
	return nil
}

// PendingFollowUps возвращает лиды с follow-up не позже конца сегодняшнего дня, ближайшие первыми.
func (s *LeadService) PendingFollowUps(ctx context.Context) ([]model.Lead, error) {
	list, err := s.ListLeads(ctx)
	if err != nil {
		return nil, err
	}

	_, endOfToday := PeriodRange(model.PeriodToday, s.settings.now())
	res := make([]model.Lead, 0)
	for _, l := range list.Leads {
		if l.FollowUpDate != nil && l.FollowUpDate.Before(endOfToday) {
			res = append(res, l)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].FollowUpDate.Before(*res[j].FollowUpDate)
	})
	return res, nil
}

func duplicateURL(url string) *AppError {
	return ErrDomain("LEAD_EXISTS", fmt.Sprintf("duplicate url: a lead with website url %q already exists", url))
}

func mapLeadError(err error, msg string) *AppError {
	if errors.Is(err, repository.ErrLeadNotFound) {
		return ErrNotFound("lead not found")
	}
	return ErrInternal(msg, err)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sales-crm-service/internal/model"
)

// LeadRepository мок service.LeadRepository.
type LeadRepository struct {
	mock.Mock
}

func (m *LeadRepository) ListLeads(ctx context.Context) ([]model.Lead, error) {
	args := m.Called(ctx)
	leads, _ := args.Get(0).([]model.Lead)
	return leads, args.Error(1)
}

func (m *LeadRepository) GetLead(ctx context.Context, id int64) (model.Lead, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Lead), args.Error(1)
}

func (m *LeadRepository) CreateLead(ctx context.Context, lead model.Lead) (model.Lead, error) {
	args := m.Called(ctx, lead)
	return args.Get(0).(model.Lead), args.Error(1)
}

func (m *LeadRepository) UpdateLead(ctx context.Context, id int64, patch model.LeadPatch) (model.Lead, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(model.Lead), args.Error(1)
}

func (m *LeadRepository) DeleteLead(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *LeadRepository) DeleteLeads(ctx context.Context, ids []int64) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

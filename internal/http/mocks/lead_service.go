package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sales-crm-service/internal/model"
)

type LeadService struct {
	mock.Mock
}

func (m *LeadService) ListLeads(ctx context.Context) (model.LeadList, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.LeadList), args.Error(1)
}

func (m *LeadService) GetLead(ctx context.Context, id int64) (model.Lead, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Lead), args.Error(1)
}

func (m *LeadService) CreateLead(ctx context.Context, lead model.Lead) (model.Lead, error) {
	args := m.Called(ctx, lead)
	return args.Get(0).(model.Lead), args.Error(1)
}

func (m *LeadService) UpdateLead(ctx context.Context, id int64, patch model.LeadPatch) (model.Lead, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(model.Lead), args.Error(1)
}

func (m *LeadService) DeleteLead(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *LeadService) PendingFollowUps(ctx context.Context) ([]model.Lead, error) {
	args := m.Called(ctx)
	leads, _ := args.Get(0).([]model.Lead)
	return leads, args.Error(1)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sales-crm-service/internal/model"
)

// TeamRepository мок service.TeamRepository.
type TeamRepository struct {
	mock.Mock
}

func (m *TeamRepository) ListTeams(ctx context.Context) ([]model.Team, error) {
	args := m.Called(ctx)
	teams, _ := args.Get(0).([]model.Team)
	return teams, args.Error(1)
}

func (m *TeamRepository) GetTeam(ctx context.Context, id int64) (model.Team, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Team), args.Error(1)
}

func (m *TeamRepository) CreateTeam(ctx context.Context, t model.Team) (model.Team, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(model.Team), args.Error(1)
}

func (m *TeamRepository) UpdateTeam(ctx context.Context, t model.Team) (model.Team, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(model.Team), args.Error(1)
}

func (m *TeamRepository) DeleteTeam(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

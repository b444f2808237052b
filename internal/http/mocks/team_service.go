package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sales-crm-service/internal/model"
)

type TeamService struct {
	mock.Mock
}

func (m *TeamService) ListTeams(ctx context.Context) ([]model.Team, error) {
	args := m.Called(ctx)
	teams, _ := args.Get(0).([]model.Team)
	return teams, args.Error(1)
}

func (m *TeamService) GetTeam(ctx context.Context, id int64) (model.Team, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Team), args.Error(1)
}

func (m *TeamService) CreateTeam(ctx context.Context, t model.Team) (model.Team, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(model.Team), args.Error(1)
}

func (m *TeamService) UpdateTeam(ctx context.Context, id int64, patch model.TeamPatch) (model.Team, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(model.Team), args.Error(1)
}

func (m *TeamService) DeleteTeam(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *TeamService) TeamPerformance(ctx context.Context, id int64) (model.TeamPerformance, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.TeamPerformance), args.Error(1)
}

func (m *TeamService) MemberPerformance(ctx context.Context, id int64) ([]model.MemberPerformance, error) {
	args := m.Called(ctx, id)
	members, _ := args.Get(0).([]model.MemberPerformance)
	return members, args.Error(1)
}

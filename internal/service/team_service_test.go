package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sales-crm-service/internal/model"
	"sales-crm-service/internal/repository"
	"sales-crm-service/internal/service"
	"sales-crm-service/internal/service/mocks"
)

func newTeamService() *service.TeamService {
	teams := repository.NewMemoryTeamRepo([]model.Team{
		{ID: 1, Name: "Enterprise", LeaderID: 2, Members: []int64{2, 1}},
	})
	return service.NewTeamService(teams, repository.NewMemoryRepRepo(testReps()))
}

func TestTeamService_CreateTeam(t *testing.T) {
	tests := []struct {
		name     string
		in       model.Team
		wantCode string
	}{
		{name: "Success", in: model.Team{Name: "Growth", LeaderID: 3, Members: []int64{4}}},
		{name: "Empty name", in: model.Team{Name: "  ", LeaderID: 3}, wantCode: "BAD_REQUEST"},
		{name: "No leader", in: model.Team{Name: "Growth"}, wantCode: "BAD_REQUEST"},
		{name: "Unknown leader", in: model.Team{Name: "Growth", LeaderID: 42}, wantCode: "BAD_REQUEST"},
		{name: "Unknown member", in: model.Team{Name: "Growth", LeaderID: 3, Members: []int64{99}}, wantCode: "BAD_REQUEST"},
		{name: "Duplicate name", in: model.Team{Name: "enterprise", LeaderID: 3}, wantCode: "TEAM_EXISTS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newTeamService().CreateTeam(context.Background(), tt.in)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, appErr(t, err).Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(2), got.ID)
			assert.Equal(t, []int64{3, 4}, got.Members)
			assert.Equal(t, "Emily Rodriguez", got.LeaderName)
			assert.Equal(t, 2, got.Performance.MemberCount)
		})
	}
}

func TestTeamService_UpdateTeam(t *testing.T) {
	ctx := context.Background()
	svc := newTeamService()

	leader := int64(4)
	members := []int64{3}
	got, err := svc.UpdateTeam(ctx, 1, model.TeamPatch{LeaderID: &leader, Members: &members})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, []int64{4, 3}, got.Members)
	assert.Equal(t, "David Kim", got.LeaderName)

	_, err = svc.UpdateTeam(ctx, 9, model.TeamPatch{})
	assert.True(t, service.IsNotFound(err))
}

func TestTeamService_DeleteTeam(t *testing.T) {
	ctx := context.Background()
	svc := newTeamService()

	require.NoError(t, svc.DeleteTeam(ctx, 1))
	assert.True(t, service.IsNotFound(svc.DeleteTeam(ctx, 1)))
}

func TestTeamService_Performance(t *testing.T) {
	ctx := context.Background()
	svc := newTeamService()

	perf, err := svc.TeamPerformance(ctx, 1)
	require.NoError(t, err)
	// Участники 2 и 1: 277 контактов, 27 сделок, 1.105M выручки.
	assert.Equal(t, model.TeamPerformance{
		MemberCount:    2,
		TotalLeads:     277,
		TotalMeetings:  60,
		TotalDeals:     27,
		TotalRevenue:   1105000,
		ConversionRate: 9.7,
		AvgDealSize:    40926,
	}, perf)

	members, err := svc.MemberPerformance(ctx, 1)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, int64(1), members[0].ID)
	assert.Equal(t, 12*3+32*2+145, members[0].PerformanceScore)
}

func TestComputePerformance_Empty(t *testing.T) {
	assert.Equal(t, model.TeamPerformance{}, service.ComputePerformance(nil))
}

func TestTeamService_RepositoryError(t *testing.T) {
	teams := new(mocks.TeamRepository)
	teams.On("ListTeams", mock.Anything).Return(nil, errors.New("db down"))

	_, err := service.NewTeamService(teams, repository.NewMemoryRepRepo(testReps())).ListTeams(context.Background())
	assert.Equal(t, "INTERNAL", appErr(t, err).Code)
	teams.AssertExpectations(t)
}

func TestRepService_Leaderboard(t *testing.T) {
	board, err := service.NewRepService(repository.NewMemoryRepRepo(testReps())).Leaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, board, 4)

	wantOrder := []int64{1, 2, 4, 3}
	wantTier := []string{"Gold", "Silver", "Bronze", "Contender"}
	for i, e := range board {
		assert.Equal(t, i+1, e.Rank)
		assert.Equal(t, wantOrder[i], e.Rep.ID)
		assert.Equal(t, wantTier[i], e.Tier)
		assert.Equal(t, service.PerformanceScore(e.Rep), e.Score)
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"sales-crm-service/internal/model"
	"sales-crm-service/internal/repository"
)

// TeamRepository описывает контракт репозитория команд для бизнес-слоя.
type TeamRepository interface {
	ListTeams(ctx context.Context) ([]model.Team, error)
	GetTeam(ctx context.Context, id int64) (model.Team, error)
	CreateTeam(ctx context.Context, t model.Team) (model.Team, error)
	UpdateTeam(ctx context.Context, t model.Team) (model.Team, error)
	DeleteTeam(ctx context.Context, id int64) error
}

// TeamService содержит бизнес-логику команд: CRUD, состав и показатели.
type TeamService struct {
	teams TeamRepository
	reps  RepRepository
}

// NewTeamService создаёт новый сервис для операций над командами.
func NewTeamService(teams TeamRepository, reps RepRepository) *TeamService {
	return &TeamService{teams: teams, reps: reps}
}

// ListTeams возвращает команды с именем лидера и посчитанными показателями.
func (s *TeamService) ListTeams(ctx context.Context) ([]model.Team, error) {
	teams, err := s.teams.ListTeams(ctx)
	if err != nil {
		return nil, ErrInternal("failed to list teams", err)
	}
	roster, err := s.roster(ctx)
	if err != nil {
		return nil, err
	}
	for i := range teams {
		teams[i] = enrichTeam(teams[i], roster)
	}
	return teams, nil
}

func (s *TeamService) GetTeam(ctx context.Context, id int64) (model.Team, error) {
	team, err := s.teams.GetTeam(ctx, id)
	if err != nil {
		return model.Team{}, mapTeamError(err, "failed to get team")
	}
	roster, err := s.roster(ctx)
	if err != nil {
		return model.Team{}, err
	}
	return enrichTeam(team, roster), nil
}

// CreateTeam валидирует команду, добавляет лидера в состав и сохраняет.
// В случае конфликта по имени возвращает доменную ошибку TEAM_EXISTS.
func (s *TeamService) CreateTeam(ctx context.Context, t model.Team) (model.Team, error) {
	t.ID = 0
	t, err := s.prepare(ctx, t)
	if err != nil {
		return model.Team{}, err
	}

	created, err := s.teams.CreateTeam(ctx, t)
	if err != nil {
		return model.Team{}, mapTeamError(err, "failed to create team")
	}
	return s.GetTeam(ctx, created.ID)
}

// UpdateTeam накладывает патч на команду. ID команды не меняется.
func (s *TeamService) UpdateTeam(ctx context.Context, id int64, patch model.TeamPatch) (model.Team, error) {
	team, err := s.teams.GetTeam(ctx, id)
	if err != nil {
		return model.Team{}, mapTeamError(err, "failed to get team")
	}

	if patch.Name != nil {
		team.Name = *patch.Name
	}
	if patch.Description != nil {
		team.Description = *patch.Description
	}
	if patch.LeaderID != nil {
		team.LeaderID = *patch.LeaderID
	}
	if patch.Members != nil {
		team.Members = append([]int64(nil), (*patch.Members)...)
	}
	team.ID = id

	team, err = s.prepare(ctx, team)
	if err != nil {
		return model.Team{}, err
	}
	if _, err := s.teams.UpdateTeam(ctx, team); err != nil {
		return model.Team{}, mapTeamError(err, "failed to update team")
	}
	return s.GetTeam(ctx, id)
}

func (s *TeamService) DeleteTeam(ctx context.Context, id int64) error {
	if err := s.teams.DeleteTeam(ctx, id); err != nil {
		return mapTeamError(err, "failed to delete team")
	}
	return nil
}

// TeamPerformance считает показатели команды по счётчикам участников.
func (s *TeamService) TeamPerformance(ctx context.Context, id int64) (model.TeamPerformance, error) {
	team, err := s.GetTeam(ctx, id)
	if err != nil {
		return model.TeamPerformance{}, err
	}
	return team.Performance, nil
}

// MemberPerformance возвращает участников команды с PerformanceScore, лучшие первыми.
func (s *TeamService) MemberPerformance(ctx context.Context, id int64) ([]model.MemberPerformance, error) {
	team, err := s.teams.GetTeam(ctx, id)
	if err != nil {
		return nil, mapTeamError(err, "failed to get team")
	}
	roster, err := s.roster(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]model.MemberPerformance, 0, len(team.Members))
	for _, rep := range teamMembers(team, roster) {
		res = append(res, model.MemberPerformance{SalesRep: rep, PerformanceScore: PerformanceScore(rep)})
	}
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].PerformanceScore != res[j].PerformanceScore {
			return res[i].PerformanceScore > res[j].PerformanceScore
		}
		return res[i].ID < res[j].ID
	})
	return res, nil
}

// ComputePerformance суммирует счётчики участников.
// Конверсия считается как сделки к контактам в процентах с одним знаком, средний чек как выручка на сделку.
func ComputePerformance(members []model.SalesRep) model.TeamPerformance {
	p := model.TeamPerformance{MemberCount: len(members)}
	for _, m := range members {
		p.TotalLeads += m.LeadsContacted
		p.TotalMeetings += m.MeetingsBooked
		p.TotalDeals += m.DealsClosed
		p.TotalRevenue += m.TotalRevenue
	}
	if p.TotalLeads > 0 {
		p.ConversionRate = math.Round(float64(p.TotalDeals)/float64(p.TotalLeads)*1000) / 10
	}
	if p.TotalDeals > 0 {
		p.AvgDealSize = math.Round(p.TotalRevenue / float64(p.TotalDeals))
	}
	return p
}

// prepare проверяет имя, лидера и участников и нормализует состав.
func (s *TeamService) prepare(ctx context.Context, t model.Team) (model.Team, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return model.Team{}, ErrBadRequest("name is required")
	}
	if t.LeaderID <= 0 {
		return model.Team{}, ErrBadRequest("leader_id is required")
	}

	t.Members = model.EnsureLeaderMember(t.LeaderID, t.Members)
	for _, id := range t.Members {
		if _, err := s.reps.GetRep(ctx, id); err != nil {
			if errors.Is(err, repository.ErrRepNotFound) {
				return model.Team{}, ErrBadRequest(fmt.Sprintf("sales rep %d not found", id))
			}
			return model.Team{}, ErrInternal("failed to get sales rep", err)
		}
	}
	return t, nil
}

func (s *TeamService) roster(ctx context.Context) (map[int64]model.SalesRep, error) {
	reps, err := s.reps.ListReps(ctx)
	if err != nil {
		return nil, ErrInternal("failed to list sales reps", err)
	}
	res := make(map[int64]model.SalesRep, len(reps))
	for _, r := range reps {
		res[r.ID] = r
	}
	return res, nil
}

func teamMembers(t model.Team, roster map[int64]model.SalesRep) []model.SalesRep {
	res := make([]model.SalesRep, 0, len(t.Members))
	for _, id := range model.EnsureLeaderMember(t.LeaderID, t.Members) {
		if rep, ok := roster[id]; ok {
			res = append(res, rep)
		}
	}
	return res
}

func enrichTeam(t model.Team, roster map[int64]model.SalesRep) model.Team {
	t.Members = model.EnsureLeaderMember(t.LeaderID, t.Members)
	if leader, ok := roster[t.LeaderID]; ok {
		t.LeaderName = leader.Name
	}
	t.Performance = ComputePerformance(teamMembers(t, roster))
	return t
}

func mapTeamError(err error, msg string) *AppError {
	switch {
	case errors.Is(err, repository.ErrTeamNotFound):
		return ErrNotFound("team not found")
	case errors.Is(err, repository.ErrTeamExists):
		return ErrDomain("TEAM_EXISTS", "team name already exists")
	default:
		return ErrInternal(msg, err)
	}
}

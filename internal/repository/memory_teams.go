package repository

import (
	"context"
	"strings"
	"sync"

	"sales-crm-service/internal/model"
)

// MemoryTeamRepo хранит команды в памяти.
type MemoryTeamRepo struct {
	mu     sync.Mutex
	teams  []model.Team
	nextID int64
}

// NewMemoryTeamRepo создаёт хранилище команд из seed.
func NewMemoryTeamRepo(seed []model.Team) *MemoryTeamRepo {
	r := &MemoryTeamRepo{teams: make([]model.Team, 0, len(seed))}
	for _, t := range seed {
		t.Members = append([]int64(nil), t.Members...)
		r.teams = append(r.teams, t)
		if t.ID > r.nextID {
			r.nextID = t.ID
		}
	}
	r.nextID++
	return r
}

func (r *MemoryTeamRepo) ListTeams(_ context.Context) ([]model.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Team, 0, len(r.teams))
	for _, t := range r.teams {
		out = append(out, cloneTeam(t))
	}
	return out, nil
}

func (r *MemoryTeamRepo) GetTeam(_ context.Context, id int64) (model.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Team{}, ErrTeamNotFound
	}
	return cloneTeam(r.teams[i]), nil
}

// CreateTeam добавляет команду в начало списка. Имя уникально без учёта регистра.
func (r *MemoryTeamRepo) CreateTeam(_ context.Context, t model.Team) (model.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTaken(t.Name, 0) {
		return model.Team{}, ErrTeamExists
	}

	t.ID = r.nextID
	r.nextID++
	t = cloneTeam(t)
	r.teams = append([]model.Team{t}, r.teams...)
	return cloneTeam(t), nil
}

// UpdateTeam полностью заменяет команду с ID t.ID.
func (r *MemoryTeamRepo) UpdateTeam(_ context.Context, t model.Team) (model.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(t.ID)
	if i < 0 {
		return model.Team{}, ErrTeamNotFound
	}
	if r.nameTaken(t.Name, t.ID) {
		return model.Team{}, ErrTeamExists
	}
	r.teams[i] = cloneTeam(t)
	return cloneTeam(t), nil
}

func (r *MemoryTeamRepo) DeleteTeam(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrTeamNotFound
	}
	r.teams = append(r.teams[:i], r.teams[i+1:]...)
	return nil
}

func (r *MemoryTeamRepo) indexOf(id int64) int {
	for i, t := range r.teams {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (r *MemoryTeamRepo) nameTaken(name string, exceptID int64) bool {
	for _, t := range r.teams {
		if t.ID != exceptID && strings.EqualFold(t.Name, name) {
			return true
		}
	}
	return false
}

func cloneTeam(t model.Team) model.Team {
	t.Members = append([]int64(nil), t.Members...)
	return t
}

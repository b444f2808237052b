package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"sales-crm-service/internal/model"
)

// TeamRepo реализует хранилище команд на базе PostgreSQL.
// Состав команды хранится в team_members, порядок задаёт колонка position.
type TeamRepo struct {
	db *Postgres
	tm *TransactionManager
}

func NewTeamRepo(db *Postgres) *TeamRepo {
	return &TeamRepo{db: db, tm: NewTransactionManager(db)}
}

func (r *TeamRepo) ListTeams(ctx context.Context) ([]model.Team, error) {
	q := r.db.GetQueryExecutor(ctx)

	rows, err := q.Query(ctx, `SELECT id, name, description, leader_id FROM teams ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query teams: %w", err)
	}
	defer rows.Close()

	teams := make([]model.Team, 0)
	for rows.Next() {
		var t model.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.LeaderID); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	members, err := r.listMembers(ctx, q)
	if err != nil {
		return nil, err
	}
	for i := range teams {
		teams[i].Members = members[teams[i].ID]
		if teams[i].Members == nil {
			teams[i].Members = make([]int64, 0)
		}
	}
	return teams, nil
}

// GetTeam возвращает команду вместе с участниками. Если не найдена, ErrTeamNotFound.
func (r *TeamRepo) GetTeam(ctx context.Context, id int64) (model.Team, error) {
	q := r.db.GetQueryExecutor(ctx)

	var t model.Team
	err := q.QueryRow(ctx, `SELECT id, name, description, leader_id FROM teams WHERE id = $1`, id).
		Scan(&t.ID, &t.Name, &t.Description, &t.LeaderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Team{}, ErrTeamNotFound
		}
		return model.Team{}, fmt.Errorf("get team: %w", err)
	}

	rows, err := q.Query(ctx, `SELECT rep_id FROM team_members WHERE team_id = $1 ORDER BY position`, id)
	if err != nil {
		return model.Team{}, fmt.Errorf("query members: %w", err)
	}
	defer rows.Close()

	t.Members = make([]int64, 0)
	for rows.Next() {
		var repID int64
		if err := rows.Scan(&repID); err != nil {
			return model.Team{}, fmt.Errorf("scan member: %w", err)
		}
		t.Members = append(t.Members, repID)
	}
	if err := rows.Err(); err != nil {
		return model.Team{}, fmt.Errorf("rows error: %w", err)
	}
	return t, nil
}

// CreateTeam создаёт команду и её состав в одной транзакции.
// При конфликте по имени команды вернёт ErrTeamExists.
func (r *TeamRepo) CreateTeam(ctx context.Context, t model.Team) (model.Team, error) {
	err := r.tm.RunInTransaction(ctx, func(ctx context.Context) error {
		q := r.db.GetQueryExecutor(ctx)

		err := q.QueryRow(ctx, `
INSERT INTO teams (name, description, leader_id)
VALUES ($1, $2, $3)
RETURNING id
`, t.Name, t.Description, t.LeaderID).Scan(&t.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrTeamExists
			}
			return fmt.Errorf("insert team: %w", err)
		}

		return r.insertMembers(ctx, q, t.ID, t.Members)
	})
	if err != nil {
		return model.Team{}, err
	}
	return t, nil
}

// UpdateTeam перезаписывает поля команды и её состав.
func (r *TeamRepo) UpdateTeam(ctx context.Context, t model.Team) (model.Team, error) {
	err := r.tm.RunInTransaction(ctx, func(ctx context.Context) error {
		q := r.db.GetQueryExecutor(ctx)

		tag, err := q.Exec(ctx, `
UPDATE teams
SET name = $2, description = $3, leader_id = $4
WHERE id = $1
`, t.ID, t.Name, t.Description, t.LeaderID)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrTeamExists
			}
			return fmt.Errorf("update team: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrTeamNotFound
		}

		if _, err := q.Exec(ctx, `DELETE FROM team_members WHERE team_id = $1`, t.ID); err != nil {
			return fmt.Errorf("clear members: %w", err)
		}
		return r.insertMembers(ctx, q, t.ID, t.Members)
	})
	if err != nil {
		return model.Team{}, err
	}
	return t, nil
}

// DeleteTeam удаляет команду; участники удаляются каскадно.
func (r *TeamRepo) DeleteTeam(ctx context.Context, id int64) error {
	q := r.db.GetQueryExecutor(ctx)

	tag, err := q.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTeamNotFound
	}
	return nil
}

func (r *TeamRepo) insertMembers(ctx context.Context, q DBTX, teamID int64, members []int64) error {
	if len(members) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i, repID := range members {
		batch.Queue(`
INSERT INTO team_members (team_id, rep_id, position)
VALUES ($1, $2, $3)
`, teamID, repID, i)
	}
	br := q.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("insert members: %w", err)
	}
	return nil
}

func (r *TeamRepo) listMembers(ctx context.Context, q DBTX) (map[int64][]int64, error) {
	rows, err := q.Query(ctx, `SELECT team_id, rep_id FROM team_members ORDER BY team_id, position`)
	if err != nil {
		return nil, fmt.Errorf("query members: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]int64)
	for rows.Next() {
		var teamID, repID int64
		if err := rows.Scan(&teamID, &repID); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		result[teamID] = append(result[teamID], repID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

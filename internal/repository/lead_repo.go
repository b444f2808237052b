package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"sales-crm-service/internal/model"
)

const leadColumns = `id, website_url, team_size, arr, category, funding_type, status,
       added_by, added_by_name, follow_up_date, created_at`

// LeadRepo реализует хранилище лидов на базе PostgreSQL.
// Уникальность нормализованного URL обеспечивает индекс leads_normalized_url_uidx.
type LeadRepo struct {
	db *Postgres
	tm *TransactionManager
}

// NewLeadRepo создаёт новый экземпляр LeadRepo.
func NewLeadRepo(db *Postgres) *LeadRepo {
	return &LeadRepo{db: db, tm: NewTransactionManager(db)}
}

// ListLeads возвращает все лиды в порядке ID.
func (r *LeadRepo) ListLeads(ctx context.Context) ([]model.Lead, error) {
	q := r.db.GetQueryExecutor(ctx)

	rows, err := q.Query(ctx, `SELECT `+leadColumns+` FROM leads ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query leads: %w", err)
	}
	defer rows.Close()

	res := make([]model.Lead, 0)
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		res = append(res, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return res, nil
}

// GetLead возвращает лид по ID. Если лид не найден, возвращает ErrLeadNotFound.
func (r *LeadRepo) GetLead(ctx context.Context, id int64) (model.Lead, error) {
	q := r.db.GetQueryExecutor(ctx)

	l, err := scanLead(q.QueryRow(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Lead{}, ErrLeadNotFound
		}
		return model.Lead{}, fmt.Errorf("get lead: %w", err)
	}
	return l, nil
}

// CreateLead вставляет лид. При конфликте по нормализованному URL вернёт ErrLeadExists.
func (r *LeadRepo) CreateLead(ctx context.Context, lead model.Lead) (model.Lead, error) {
	q := r.db.GetQueryExecutor(ctx)

	row := q.QueryRow(ctx, `
INSERT INTO leads (website_url, team_size, arr, category, funding_type, status,
                   added_by, added_by_name, follow_up_date, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING `+leadColumns,
		lead.WebsiteURL, string(lead.TeamSize), lead.ARR, lead.Category, string(lead.FundingType),
		string(lead.Status), lead.AddedBy, lead.AddedByName, lead.FollowUpDate, lead.CreatedAt)

	created, err := scanLead(row)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Lead{}, ErrLeadExists
		}
		return model.Lead{}, fmt.Errorf("insert lead: %w", err)
	}
	return created, nil
}

// UpdateLead блокирует строку, накладывает патч и сохраняет результат в одной транзакции.
func (r *LeadRepo) UpdateLead(ctx context.Context, id int64, patch model.LeadPatch) (model.Lead, error) {
	var updated model.Lead

	err := r.tm.RunInTransaction(ctx, func(ctx context.Context) error {
		q := r.db.GetQueryExecutor(ctx)

		current, err := scanLead(q.QueryRow(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrLeadNotFound
			}
			return fmt.Errorf("lock lead: %w", err)
		}

		next := patch.Apply(current)
		row := q.QueryRow(ctx, `
UPDATE leads
SET website_url = $2, team_size = $3, arr = $4, category = $5, funding_type = $6,
    status = $7, added_by = $8, added_by_name = $9, follow_up_date = $10
WHERE id = $1
RETURNING `+leadColumns,
			id, next.WebsiteURL, string(next.TeamSize), next.ARR, next.Category, string(next.FundingType),
			string(next.Status), next.AddedBy, next.AddedByName, next.FollowUpDate)

		updated, err = scanLead(row)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrLeadExists
			}
			return fmt.Errorf("update lead: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Lead{}, err
	}
	return updated, nil
}

// DeleteLead удаляет лид. Если строки нет, возвращает ErrLeadNotFound.
func (r *LeadRepo) DeleteLead(ctx context.Context, id int64) error {
	q := r.db.GetQueryExecutor(ctx)

	tag, err := q.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLeadNotFound
	}
	return nil
}

// DeleteLeads массово удаляет лиды по списку ID.
func (r *LeadRepo) DeleteLeads(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	q := r.db.GetQueryExecutor(ctx)

	if _, err := q.Exec(ctx, `DELETE FROM leads WHERE id = ANY($1)`, ids); err != nil {
		return fmt.Errorf("mass delete leads: %w", err)
	}
	return nil
}

func scanLead(row pgx.Row) (model.Lead, error) {
	var l model.Lead
	var teamSize, funding, status string

	err := row.Scan(&l.ID, &l.WebsiteURL, &teamSize, &l.ARR, &l.Category, &funding, &status,
		&l.AddedBy, &l.AddedByName, &l.FollowUpDate, &l.CreatedAt)
	if err != nil {
		return model.Lead{}, err
	}

	l.TeamSize = model.TeamSize(teamSize)
	l.FundingType = model.FundingType(funding)
	l.Status = model.LeadStatus(status)
	return l, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

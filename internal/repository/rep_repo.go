package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"sales-crm-service/internal/model"
)

// RepRepo читает справочник менеджеров из PostgreSQL.
type RepRepo struct {
	db *Postgres
}

func NewRepRepo(db *Postgres) *RepRepo {
	return &RepRepo{db: db}
}

func (r *RepRepo) ListReps(ctx context.Context) ([]model.SalesRep, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT id, name, email, leads_contacted, meetings_booked, deals_closed, total_revenue
FROM sales_reps
ORDER BY id
`)
	if err != nil {
		return nil, fmt.Errorf("query reps: %w", err)
	}
	defer rows.Close()

	res := make([]model.SalesRep, 0)
	for rows.Next() {
		var s model.SalesRep
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.LeadsContacted, &s.MeetingsBooked, &s.DealsClosed, &s.TotalRevenue); err != nil {
			return nil, fmt.Errorf("scan rep: %w", err)
		}
		res = append(res, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return res, nil
}

// GetRep возвращает менеджера по ID. Если не найден, возвращает ErrRepNotFound.
func (r *RepRepo) GetRep(ctx context.Context, id int64) (model.SalesRep, error) {
	row := r.db.Pool.QueryRow(ctx, `
SELECT id, name, email, leads_contacted, meetings_booked, deals_closed, total_revenue
FROM sales_reps
WHERE id = $1
`, id)

	var s model.SalesRep
	if err := row.Scan(&s.ID, &s.Name, &s.Email, &s.LeadsContacted, &s.MeetingsBooked, &s.DealsClosed, &s.TotalRevenue); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.SalesRep{}, ErrRepNotFound
		}
		return model.SalesRep{}, fmt.Errorf("get rep: %w", err)
	}
	return s, nil
}

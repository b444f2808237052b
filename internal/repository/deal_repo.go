package repository

import (
	"context"
	"fmt"

	"sales-crm-service/internal/model"
)

// DealRepo читает сделки из PostgreSQL.
type DealRepo struct {
	db *Postgres
}

func NewDealRepo(db *Postgres) *DealRepo {
	return &DealRepo{db: db}
}

func (r *DealRepo) ListDeals(ctx context.Context) ([]model.Deal, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT id, name, value, stage, created_at, year
FROM deals
ORDER BY created_at
`)
	if err != nil {
		return nil, fmt.Errorf("query deals: %w", err)
	}
	defer rows.Close()

	res := make([]model.Deal, 0)
	for rows.Next() {
		var d model.Deal
		var stage string
		if err := rows.Scan(&d.ID, &d.Name, &d.Value, &stage, &d.CreatedAt, &d.Year); err != nil {
			return nil, fmt.Errorf("scan deal: %w", err)
		}
		d.Stage = model.DealStage(stage)
		res = append(res, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return res, nil
}

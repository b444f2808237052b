package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"sales-crm-service/internal/model"
)

// SeedData данные для начального заполнения базы.
type SeedData struct {
	Reps  []model.SalesRep
	Leads []model.Lead
	Deals []model.Deal
	Teams []model.Team
}

// Seed заливает стартовые данные с явными ID и сдвигает последовательности.
// Уже существующие строки не перезаписываются.
func Seed(ctx context.Context, db *Postgres, data SeedData) error {
	tm := NewTransactionManager(db).WithIsolation(pgx.Serializable)

	return tm.RunInTransaction(ctx, func(ctx context.Context) error {
		q := db.GetQueryExecutor(ctx)
		batch := &pgx.Batch{}

		for _, s := range data.Reps {
			batch.Queue(`
INSERT INTO sales_reps (id, name, email, leads_contacted, meetings_booked, deals_closed, total_revenue)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO NOTHING
`, s.ID, s.Name, s.Email, s.LeadsContacted, s.MeetingsBooked, s.DealsClosed, s.TotalRevenue)
		}
		for _, l := range data.Leads {
			batch.Queue(`
INSERT INTO leads (id, website_url, team_size, arr, category, funding_type, status,
                   added_by, added_by_name, follow_up_date, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT DO NOTHING
`, l.ID, l.WebsiteURL, string(l.TeamSize), l.ARR, l.Category, string(l.FundingType), string(l.Status),
				l.AddedBy, l.AddedByName, l.FollowUpDate, l.CreatedAt)
		}
		for _, d := range data.Deals {
			batch.Queue(`
INSERT INTO deals (id, name, value, stage, created_at, year)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO NOTHING
`, d.ID, d.Name, d.Value, string(d.Stage), d.CreatedAt, d.Year)
		}
		for _, t := range data.Teams {
			batch.Queue(`
INSERT INTO teams (id, name, description, leader_id)
VALUES ($1, $2, $3, $4)
ON CONFLICT DO NOTHING
`, t.ID, t.Name, t.Description, t.LeaderID)
			for i, repID := range model.EnsureLeaderMember(t.LeaderID, t.Members) {
				batch.Queue(`
INSERT INTO team_members (team_id, rep_id, position)
VALUES ($1, $2, $3)
ON CONFLICT DO NOTHING
`, t.ID, repID, i)
			}
		}

		for _, table := range []string{"sales_reps", "leads", "deals", "teams"} {
			batch.Queue(fmt.Sprintf(
				`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false)`,
				table))
		}

		br := q.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return fmt.Errorf("seed database: %w", err)
		}
		return nil
	})
}

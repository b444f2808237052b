package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-crm-service/internal/model"
	"sales-crm-service/internal/repository"
)

func seedLeads() []model.Lead {
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	return []model.Lead{
		{ID: 1, WebsiteURL: "https://a.com", AddedBy: 1, CreatedAt: base},
		{ID: 2, WebsiteURL: "https://b.com", AddedBy: 2, CreatedAt: base.Add(time.Hour)},
	}
}

func TestMemoryLeadRepo_CreateLead(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		url     string
		wantID  int64
		wantErr error
	}{
		{name: "Success: next id", url: "https://c.com", wantID: 3},
		{name: "Conflict: same url", url: "https://a.com", wantErr: repository.ErrLeadExists},
		{name: "Conflict: case and trailing slash", url: "HTTPS://B.COM/", wantErr: repository.ErrLeadExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository.NewMemoryLeadRepo(seedLeads())

			got, err := repo.CreateLead(ctx, model.Lead{WebsiteURL: tt.url})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestMemoryLeadRepo_IDsAreNotReused(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryLeadRepo(seedLeads())

	created, err := repo.CreateLead(ctx, model.Lead{WebsiteURL: "https://c.com"})
	require.NoError(t, err)
	require.Equal(t, int64(3), created.ID)

	require.NoError(t, repo.DeleteLead(ctx, 3))

	next, err := repo.CreateLead(ctx, model.Lead{WebsiteURL: "https://d.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), next.ID)
}

func TestMemoryLeadRepo_UpdateLead(t *testing.T) {
	ctx := context.Background()
	status := model.LeadStatusHotlist
	taken := "https://A.com/"
	fresh := "https://z.com"

	tests := []struct {
		name    string
		id      int64
		patch   model.LeadPatch
		wantErr error
	}{
		{name: "Success: status", id: 1, patch: model.LeadPatch{Status: &status}},
		{name: "Success: new url", id: 2, patch: model.LeadPatch{WebsiteURL: &fresh}},
		{name: "Success: own url in another case", id: 1, patch: model.LeadPatch{WebsiteURL: &taken}},
		{name: "Conflict: url of another lead", id: 2, patch: model.LeadPatch{WebsiteURL: &taken}, wantErr: repository.ErrLeadExists},
		{name: "Not found", id: 99, patch: model.LeadPatch{Status: &status}, wantErr: repository.ErrLeadNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository.NewMemoryLeadRepo(seedLeads())
			before, _ := repo.GetLead(ctx, tt.id)
			snapshot, err := repo.ListLeads(ctx)
			require.NoError(t, err)

			got, err := repo.UpdateLead(ctx, tt.id, tt.patch)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				after, err := repo.ListLeads(ctx)
				require.NoError(t, err)
				assert.Equal(t, snapshot, after)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, got.ID)
			assert.Equal(t, before.CreatedAt, got.CreatedAt)
		})
	}
}

func TestMemoryLeadRepo_Delete(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryLeadRepo(seedLeads())
	snapshot, err := repo.ListLeads(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, repo.DeleteLead(ctx, 42), repository.ErrLeadNotFound)
	unchanged, err := repo.ListLeads(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot, unchanged)

	require.NoError(t, repo.DeleteLeads(ctx, []int64{1, 42}))
	leads, err := repo.ListLeads(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, int64(2), leads[0].ID)

	_, err = repo.GetLead(ctx, 1)
	assert.ErrorIs(t, err, repository.ErrLeadNotFound)
}

func TestMemoryLeadRepo_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryLeadRepo(seedLeads())

	leads, err := repo.ListLeads(ctx)
	require.NoError(t, err)
	leads[0].WebsiteURL = "mutated"

	again, err := repo.GetLead(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "https://a.com", again.WebsiteURL)
}

package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-crm-service/internal/model"
	"sales-crm-service/internal/service"
)

func TestDeduplicate_KeepsLatest(t *testing.T) {
	t1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	res := service.Deduplicate([]model.Lead{
		{ID: 1, WebsiteURL: "https://a.com", CreatedAt: t1},
		{ID: 2, WebsiteURL: "https://a.com/", CreatedAt: t2},
	})

	require.Len(t, res.Unique, 1)
	assert.Equal(t, int64(2), res.Unique[0].ID)
	assert.Equal(t, 1, res.DuplicateCount)
	assert.Equal(t, int64(1), res.DuplicatesRemoved[0].ID)
}

func TestDeduplicate(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		leads       []model.Lead
		wantIDs     []int64
		wantRemoved int
	}{
		{name: "Empty", leads: nil, wantIDs: []int64{}, wantRemoved: 0},
		{
			name: "No duplicates, newest first",
			leads: []model.Lead{
				{ID: 1, WebsiteURL: "https://a.com", CreatedAt: base},
				{ID: 2, WebsiteURL: "https://b.com", CreatedAt: base.Add(time.Minute)},
			},
			wantIDs: []int64{2, 1},
		},
		{
			name: "Case-insensitive",
			leads: []model.Lead{
				{ID: 1, WebsiteURL: "https://EXAMPLE.com", CreatedAt: base.Add(2 * time.Hour)},
				{ID: 2, WebsiteURL: "https://example.com/", CreatedAt: base},
				{ID: 3, WebsiteURL: "https://example.COM", CreatedAt: base.Add(time.Hour)},
			},
			wantIDs:     []int64{1},
			wantRemoved: 2,
		},
		{
			name: "Equal timestamps keep input order",
			leads: []model.Lead{
				{ID: 5, WebsiteURL: "https://a.com", CreatedAt: base},
				{ID: 6, WebsiteURL: "https://a.com", CreatedAt: base},
			},
			wantIDs:     []int64{5},
			wantRemoved: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := service.Deduplicate(tt.leads)

			ids := make([]int64, 0, len(res.Unique))
			for _, l := range res.Unique {
				ids = append(ids, l.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantRemoved, res.DuplicateCount)

			again := service.Deduplicate(res.Unique)
			assert.Equal(t, res.Unique, again.Unique)
			assert.Zero(t, again.DuplicateCount)
		})
	}
}

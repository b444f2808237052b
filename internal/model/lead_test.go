package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sales-crm-service/internal/model"
)

func TestNormalizeWebsiteURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "https://Example.com/", want: "https://example.com"},
		{in: "https://example.com", want: "https://example.com"},
		{in: "https://example.com//", want: "https://example.com/"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, model.NormalizeWebsiteURL(tt.in))
		})
	}
}

func TestLeadPatch_Apply(t *testing.T) {
	created := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	lead := model.Lead{ID: 7, WebsiteURL: "https://a.com", ARR: 10, CreatedAt: created}

	arr := 25.0
	status := model.LeadStatusConnected
	got := model.LeadPatch{ARR: &arr, Status: &status}.Apply(lead)

	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, created, got.CreatedAt)
	assert.Equal(t, 25.0, got.ARR)
	assert.Equal(t, model.LeadStatusConnected, got.Status)
	assert.Equal(t, "https://a.com", got.WebsiteURL)
}

func TestLeadPatch_ApplyFollowUpDate(t *testing.T) {
	old := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	next := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	lead := model.Lead{ID: 3, FollowUpDate: &old}

	tests := []struct {
		name  string
		patch model.LeadPatch
		want  *time.Time
	}{
		{name: "absent keeps date", patch: model.LeadPatch{}, want: &old},
		{name: "set replaces date", patch: model.LeadPatch{FollowUpDate: &next}, want: &next},
		{name: "clear removes date", patch: model.LeadPatch{ClearFollowUpDate: true}, want: nil},
		{name: "clear wins over set", patch: model.LeadPatch{FollowUpDate: &next, ClearFollowUpDate: true}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.patch.Apply(lead)
			assert.Equal(t, tt.want, got.FollowUpDate)
		})
	}
	assert.Equal(t, &old, lead.FollowUpDate)
}

func TestEnsureLeaderMember(t *testing.T) {
	assert.Equal(t, []int64{3, 1, 2}, model.EnsureLeaderMember(3, []int64{1, 3, 2, 1}))
	assert.Equal(t, []int64{4}, model.EnsureLeaderMember(4, nil))
}

func TestEnumValid(t *testing.T) {
	assert.True(t, model.LeadStatusMeetingBooked.Valid())
	assert.False(t, model.LeadStatus("Won").Valid())
	assert.True(t, model.TeamSize1001Plus.Valid())
	assert.False(t, model.TeamSize("10-20").Valid())
	assert.True(t, model.FundingYCombinator.Valid())
	assert.False(t, model.FundingType("IPO").Valid())
}

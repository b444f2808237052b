package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "sales-crm-service/internal/http"
	"sales-crm-service/internal/model"
	"sales-crm-service/internal/repository"
	"sales-crm-service/internal/seed"
	"sales-crm-service/internal/service"
)

// newSeededServer поднимает роутер поверх in-memory хранилищ со встроенными данными.
func newSeededServer(t *testing.T) *httptest.Server {
	t.Helper()

	ds, err := seed.Load()
	require.NoError(t, err)

	settings := service.Settings{
		Location:                time.UTC,
		LowPerformanceThreshold: 5,
		MinimumDailyLeads:       10,
		RevenueYear:             2025,
		Now:                     func() time.Time { return time.Date(2025, 7, 30, 12, 0, 0, 0, time.UTC) },
	}
	log := testLogger()

	reps := repository.NewMemoryRepRepo(ds.Reps)
	leadSvc := service.NewLeadService(repository.NewMemoryLeadRepo(ds.Leads), settings, log)
	reportSvc := service.NewReportService(leadSvc, reps, settings)

	h := httpapi.NewHandler(httpapi.Services{
		Leads:     leadSvc,
		Reports:   reportSvc,
		Quota:     service.NewQuotaService(leadSvc, settings),
		Revenue:   service.NewRevenueService(repository.NewMemoryDealRepo(ds.Deals), settings),
		Dashboard: service.NewDashboardService(leadSvc, reportSvc, settings, log),
		Reps:      service.NewRepService(reps),
		Teams:     service.NewTeamService(repository.NewMemoryTeamRepo(ds.Teams), reps),
	}, httpapi.RouterConfig{Location: time.UTC}, log)

	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, body string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, url, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

func TestAPI_LeadLifecycle(t *testing.T) {
	srv := newSeededServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/leads",
		`{"website_url":"https://newco.dev","team_size":"1-10","arr":50000,"status":"Hotlist","added_by":1,"added_by_name":"Sarah Johnson"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var created struct {
		Lead model.Lead `json:"lead"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	assert.NotZero(t, created.Lead.ID)
	assert.Equal(t, 2025, created.Lead.CreatedAt.Year())

	// Регистр и завершающий слэш не делают URL уникальным.
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/leads", `{"website_url":"HTTPS://NEWCO.DEV/"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "LEAD_EXISTS", errorCode(t, body))

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/leads", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list model.LeadList
	require.NoError(t, json.Unmarshal(body, &list))
	found := false
	for _, l := range list.Leads {
		if l.ID == created.Lead.ID {
			found = true
		}
	}
	assert.True(t, found)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/leads/"+strconv.FormatInt(created.Lead.ID, 10), "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/leads/"+strconv.FormatInt(created.Lead.ID, 10), "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_ReadOnlyEndpoints(t *testing.T) {
	srv := newSeededServer(t)

	paths := []string{
		"/health",
		"/reports/daily",
		"/reports/users/1?period=month",
		"/reports/activity",
		"/reports/date-filters",
		"/alerts/quota",
		"/revenue/insights",
		"/revenue/overview",
		"/revenue/funnel",
		"/dashboard/lead-performance",
		"/dashboard/team-rankings",
		"/dashboard/recent-activity",
		"/reps",
		"/leaderboard",
		"/teams",
		"/teams/1/performance",
	}
	for _, p := range paths {
		resp, body := doJSON(t, http.MethodGet, srv.URL+p, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode, "%s: %s", p, body)
	}
}

func TestAPI_TeamCreateAddsLeader(t *testing.T) {
	srv := newSeededServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/teams", `{"name":"Outbound","leader_id":4,"members":[5]}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var created struct {
		Team model.Team `json:"team"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Contains(t, created.Team.Members, int64(4))
	assert.Contains(t, created.Team.Members, int64(5))

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/teams", `{"name":"outbound","leader_id":1}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "TEAM_EXISTS", errorCode(t, body))
}

func TestAPI_ActivityExportIsCSV(t *testing.T) {
	srv := newSeededServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/reports/activity/export", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	// Из двух лидов с одним нормализованным URL остаётся более новый.
	assert.Contains(t, string(body), "https://AcmeAnalytics.io/,")
	assert.NotContains(t, string(body), "https://acmeanalytics.io,")
}

func TestAPI_RecentActivity(t *testing.T) {
	srv := newSeededServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/dashboard/recent-activity", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var feed model.ActivityFeed
	require.NoError(t, json.Unmarshal(body, &feed))
	require.Len(t, feed.Items, 10)
	assert.False(t, feed.Placeholder)

	first := feed.Items[0]
	assert.Equal(t, int64(18), first.ID)
	assert.Equal(t, "New lead added: AcmeAnalytics.io", first.Title)
	assert.Equal(t, "09:55 AM", first.Time)
	assert.Equal(t, "7/28/2025", first.Date)
	assert.Equal(t, int64(17), feed.Items[1].ID)
}

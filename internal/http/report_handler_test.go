package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "sales-crm-service/internal/http"
	"sales-crm-service/internal/http/mocks"
	"sales-crm-service/internal/model"
)

func TestHandler_Activity_ParsesFilter(t *testing.T) {
	reportSvc := new(mocks.ReportService)
	reportSvc.On("WebsiteActivity", mock.Anything, mock.MatchedBy(func(f model.ActivityFilter) bool {
		return f.StartDate != nil && f.StartDate.Equal(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)) &&
			f.EndDate == nil && f.Date == nil &&
			f.AddedBy == 2 && f.SearchTerm == "acme"
	})).Return(model.ActivityReport{Data: []model.Lead{}}, nil)

	h := httpapi.NewHandler(httpapi.Services{Reports: reportSvc},
		httpapi.RouterConfig{Location: time.UTC}, testLogger())

	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/reports/activity?startDate=2025-07-01&addedBy=2&search=acme", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	reportSvc.AssertExpectations(t)
}

func TestHandler_Activity_BadDate(t *testing.T) {
	reportSvc := new(mocks.ReportService)
	h := httpapi.NewHandler(httpapi.Services{Reports: reportSvc}, httpapi.RouterConfig{}, testLogger())

	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/activity?date=07/01/2025", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	reportSvc.AssertNotCalled(t, "WebsiteActivity", mock.Anything, mock.Anything)
}

func TestHandler_ActivityExport(t *testing.T) {
	reportSvc := new(mocks.ReportService)
	reportSvc.On("ExportActivity", mock.Anything, mock.Anything, mock.Anything).
		Return("Website URL,Status\nhttps://x.io,Hotlist\n", nil)

	h := httpapi.NewHandler(httpapi.Services{Reports: reportSvc}, httpapi.RouterConfig{}, testLogger())

	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/activity/export?addedBy=all", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "website-activity.csv")
	assert.Equal(t, "Website URL,Status\nhttps://x.io,Hotlist\n", w.Body.String())
	reportSvc.AssertExpectations(t)
}

func TestHandler_UserReport_DefaultPeriod(t *testing.T) {
	reportSvc := new(mocks.ReportService)
	reportSvc.On("UserLeadsReport", mock.Anything, int64(4), model.PeriodToday).Return([]model.Lead{}, nil)

	h := httpapi.NewHandler(httpapi.Services{Reports: reportSvc}, httpapi.RouterConfig{}, testLogger())

	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/users/4", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"period":"today"`)
	reportSvc.AssertExpectations(t)
}

func TestHandler_UserReport_RepID(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		repID    int64
		wantCode int
	}{
		{name: "zero id gives empty list", path: "/reports/users/0", repID: 0, wantCode: http.StatusOK},
		{name: "negative id gives empty list", path: "/reports/users/-3", repID: -3, wantCode: http.StatusOK},
		{name: "not a number", path: "/reports/users/abc", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reportSvc := new(mocks.ReportService)
			if tt.wantCode == http.StatusOK {
				reportSvc.On("UserLeadsReport", mock.Anything, tt.repID, model.PeriodToday).Return([]model.Lead{}, nil)
			}

			h := httpapi.NewHandler(httpapi.Services{Reports: reportSvc}, httpapi.RouterConfig{}, testLogger())

			w := httptest.NewRecorder()
			h.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"leads":[]`)
			} else {
				assert.Equal(t, "BAD_REQUEST", errorCode(t, w.Body.Bytes()))
			}
			reportSvc.AssertExpectations(t)
		})
	}
}

func TestHandler_UnknownChartAndMetric(t *testing.T) {
	h := httpapi.NewHandler(httpapi.Services{}, httpapi.RouterConfig{}, testLogger())
	router := h.Router()

	for _, path := range []string{"/dashboard/pie", "/revenue/bogus"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

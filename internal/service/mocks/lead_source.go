package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sales-crm-service/internal/model"
)

// LeadSource мок service.LeadSource.
type LeadSource struct {
	mock.Mock
}

func (m *LeadSource) ListLeads(ctx context.Context) (model.LeadList, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.LeadList), args.Error(1)
}

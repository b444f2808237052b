package repository

import (
	"context"
	"sync"

	"sales-crm-service/internal/model"
)

// MemoryDealRepo сделки в памяти, только чтение.
type MemoryDealRepo struct {
	mu    sync.RWMutex
	deals []model.Deal
}

func NewMemoryDealRepo(seed []model.Deal) *MemoryDealRepo {
	return &MemoryDealRepo{deals: append([]model.Deal(nil), seed...)}
}

func (r *MemoryDealRepo) ListDeals(_ context.Context) ([]model.Deal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append(make([]model.Deal, 0, len(r.deals)), r.deals...), nil
}

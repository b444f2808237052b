package repository

import (
	"context"
	"sync"

	"sales-crm-service/internal/model"
)

// MemoryRepRepo справочник менеджеров в памяти.
type MemoryRepRepo struct {
	mu   sync.RWMutex
	reps []model.SalesRep
}

func NewMemoryRepRepo(seed []model.SalesRep) *MemoryRepRepo {
	return &MemoryRepRepo{reps: append([]model.SalesRep(nil), seed...)}
}

func (r *MemoryRepRepo) ListReps(_ context.Context) ([]model.SalesRep, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append(make([]model.SalesRep, 0, len(r.reps)), r.reps...), nil
}

func (r *MemoryRepRepo) GetRep(_ context.Context, id int64) (model.SalesRep, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rep := range r.reps {
		if rep.ID == id {
			return rep, nil
		}
	}
	return model.SalesRep{}, ErrRepNotFound
}

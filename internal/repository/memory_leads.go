package repository

import (
	"context"
	"sync"

	"sales-crm-service/internal/model"
)

// MemoryLeadRepo хранит лиды в памяти процесса. Все операции сериализуются одним мьютексом.
type MemoryLeadRepo struct {
	mu    sync.Mutex
	leads []model.Lead
	// lastID: максимальный когда-либо выданный ID, чтобы ID не переиспользовались после удаления.
	lastID int64
}

// NewMemoryLeadRepo создаёт хранилище, заполненное копией seed.
func NewMemoryLeadRepo(seed []model.Lead) *MemoryLeadRepo {
	r := &MemoryLeadRepo{}
	r.Reset(seed)
	return r
}

// Reset заменяет содержимое хранилища копией seed и сбрасывает счётчик ID.
func (r *MemoryLeadRepo) Reset(seed []model.Lead) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.leads = append(make([]model.Lead, 0, len(seed)), seed...)
	r.lastID = 0
	for _, l := range r.leads {
		if l.ID > r.lastID {
			r.lastID = l.ID
		}
	}
}

// ListLeads возвращает копию текущей коллекции лидов.
func (r *MemoryLeadRepo) ListLeads(_ context.Context) ([]model.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append(make([]model.Lead, 0, len(r.leads)), r.leads...), nil
}

// GetLead возвращает лид по ID или ErrLeadNotFound.
func (r *MemoryLeadRepo) GetLead(_ context.Context, id int64) (model.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Lead{}, ErrLeadNotFound
	}
	return r.leads[i], nil
}

// CreateLead проверяет уникальность URL, выдаёт следующий ID и добавляет лид в конец.
func (r *MemoryLeadRepo) CreateLead(_ context.Context, lead model.Lead) (model.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.urlTaken(lead.NormalizedURL(), 0) {
		return model.Lead{}, ErrLeadExists
	}

	next := r.lastID
	for _, l := range r.leads {
		if l.ID > next {
			next = l.ID
		}
	}
	next++

	lead.ID = next
	r.lastID = next
	r.leads = append(r.leads, lead)
	return lead, nil
}

// UpdateLead накладывает патч на лид. Смена URL на занятый другим лидом даёт ErrLeadExists.
func (r *MemoryLeadRepo) UpdateLead(_ context.Context, id int64, patch model.LeadPatch) (model.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Lead{}, ErrLeadNotFound
	}

	updated := patch.Apply(r.leads[i])
	if patch.WebsiteURL != nil && r.urlTaken(updated.NormalizedURL(), id) {
		return model.Lead{}, ErrLeadExists
	}

	r.leads[i] = updated
	return updated, nil
}

// DeleteLead удаляет лид по ID или возвращает ErrLeadNotFound.
func (r *MemoryLeadRepo) DeleteLead(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrLeadNotFound
	}
	r.leads = append(r.leads[:i], r.leads[i+1:]...)
	return nil
}

// DeleteLeads массово удаляет лиды по списку ID. Отсутствующие ID игнорируются.
func (r *MemoryLeadRepo) DeleteLeads(_ context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	drop := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := r.leads[:0]
	for _, l := range r.leads {
		if _, ok := drop[l.ID]; ok {
			continue
		}
		kept = append(kept, l)
	}
	r.leads = kept
	return nil
}

func (r *MemoryLeadRepo) indexOf(id int64) int {
	for i, l := range r.leads {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// urlTaken проверяет, занят ли нормализованный URL каким-либо лидом, кроме exceptID.
func (r *MemoryLeadRepo) urlTaken(normalized string, exceptID int64) bool {
	for _, l := range r.leads {
		if l.ID != exceptID && l.NormalizedURL() == normalized {
			return true
		}
	}
	return false
}

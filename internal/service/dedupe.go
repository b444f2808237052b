package service

import (
	"sort"

	"sales-crm-service/internal/model"
)

// Deduplicate оставляет по одному лиду на нормализованный URL, выбирая самый свежий по CreatedAt.
// Unique идёт в порядке убывания CreatedAt. Повторный вызов на Unique ничего не удаляет.
func Deduplicate(leads []model.Lead) model.DedupResult {
	sorted := append(make([]model.Lead, 0, len(leads)), leads...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	seen := make(map[string]struct{}, len(sorted))
	res := model.DedupResult{
		Unique:            make([]model.Lead, 0, len(sorted)),
		DuplicatesRemoved: make([]model.Lead, 0),
	}
	for _, l := range sorted {
		key := l.NormalizedURL()
		if _, ok := seen[key]; ok {
			res.DuplicatesRemoved = append(res.DuplicatesRemoved, l)
			continue
		}
		seen[key] = struct{}{}
		res.Unique = append(res.Unique, l)
	}
	res.DuplicateCount = len(res.DuplicatesRemoved)
	return res
}

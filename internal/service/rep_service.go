package service

import (
	"context"
	"sort"

	"sales-crm-service/internal/model"
)

// RepService отдаёт справочник менеджеров и лидерборд.
type RepService struct {
	reps RepRepository
}

func NewRepService(reps RepRepository) *RepService {
	return &RepService{reps: reps}
}

func (s *RepService) ListReps(ctx context.Context) ([]model.SalesRep, error) {
	reps, err := s.reps.ListReps(ctx)
	if err != nil {
		return nil, ErrInternal("failed to list sales reps", err)
	}
	return reps, nil
}

// Leaderboard сортирует менеджеров по PerformanceScore, при равенстве по ID.
func (s *RepService) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	reps, err := s.ListReps(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(reps, func(i, j int) bool {
		si, sj := PerformanceScore(reps[i]), PerformanceScore(reps[j])
		if si != sj {
			return si > sj
		}
		return reps[i].ID < reps[j].ID
	})

	res := make([]model.LeaderboardEntry, 0, len(reps))
	for i, rep := range reps {
		res = append(res, model.LeaderboardEntry{
			Rank:  i + 1,
			Tier:  Tier(i + 1),
			Score: PerformanceScore(rep),
			Rep:   rep,
		})
	}
	return res, nil
}

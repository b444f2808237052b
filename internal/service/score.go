package service

import "sales-crm-service/internal/model"

var tiers = []string{"Gold", "Silver", "Bronze"}

// PerformanceScore — единственная формула рейтинга менеджера.
func PerformanceScore(rep model.SalesRep) int {
	return rep.DealsClosed*3 + rep.MeetingsBooked*2 + rep.LeadsContacted
}

// Tier возвращает уровень для места rank (с единицы).
func Tier(rank int) string {
	if rank >= 1 && rank <= len(tiers) {
		return tiers[rank-1]
	}
	return "Contender"
}

package model

// TeamPerformance снапшот показателей команды, считается из счётчиков участников.
type TeamPerformance struct {
	MemberCount    int     `json:"member_count"`
	TotalLeads     int     `json:"total_leads"`
	TotalMeetings  int     `json:"total_meetings"`
	TotalDeals     int     `json:"total_deals"`
	TotalRevenue   float64 `json:"total_revenue"`
	ConversionRate float64 `json:"conversion_rate"`
	AvgDealSize    float64 `json:"avg_deal_size"`
}

// Team описывает команду продаж. Лидер всегда входит в Members.
type Team struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	LeaderID    int64           `json:"leader_id"`
	LeaderName  string          `json:"leader_name"`
	Members     []int64         `json:"members"`
	Performance TeamPerformance `json:"performance"`
}

// TeamPatch частичное обновление команды.
type TeamPatch struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	LeaderID    *int64   `json:"leader_id,omitempty"`
	Members     *[]int64 `json:"members,omitempty"`
}

// MemberPerformance описывает вклад участника команды.
type MemberPerformance struct {
	SalesRep
	PerformanceScore int `json:"performance_score"`
}

// EnsureLeaderMember добавляет лидера в список участников и убирает повторы,
// сохраняя порядок: лидер первым.
func EnsureLeaderMember(leaderID int64, members []int64) []int64 {
	seen := make(map[int64]struct{}, len(members)+1)
	out := make([]int64, 0, len(members)+1)
	for _, id := range append([]int64{leaderID}, members...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

package model

// SalesRep описывает менеджера по продажам и снапшот его счётчиков.
// Счётчики только читаются и не пересчитываются транзакционно.
type SalesRep struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email,omitempty"`
	LeadsContacted int     `json:"leads_contacted"`
	MeetingsBooked int     `json:"meetings_booked"`
	DealsClosed    int     `json:"deals_closed"`
	TotalRevenue   float64 `json:"total_revenue"`
}

// LeaderboardEntry строка лидерборда.
type LeaderboardEntry struct {
	Rank  int      `json:"rank"`
	Tier  string   `json:"tier"`
	Score int      `json:"score"`
	Rep   SalesRep `json:"rep"`
}

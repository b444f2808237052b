package model

import "time"

// DealStage стадия сделки в воронке.
type DealStage string

const (
	DealStageConnected     DealStage = "Connected"
	DealStageMeetingBooked DealStage = "Meeting Booked"
	DealStageNegotiation   DealStage = "Negotiation"
	DealStageClosed        DealStage = "Closed"
	DealStageRejected      DealStage = "Rejected"
	DealStageClosedLost    DealStage = "Closed Lost"
)

// Deal описывает сделку. Year == 0 означает, что год берётся из CreatedAt.
type Deal struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Value     float64   `json:"value"`
	Stage     DealStage `json:"stage"`
	CreatedAt time.Time `json:"created_at"`
	Year      int       `json:"year,omitempty"`
}

// EffectiveYear возвращает год сделки.
func (d Deal) EffectiveYear() int {
	if d.Year != 0 {
		return d.Year
	}
	return d.CreatedAt.Year()
}

// IsClosed сообщает, выиграна ли сделка.
func (d Deal) IsClosed() bool {
	return d.Stage == DealStageClosed
}

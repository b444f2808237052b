// Package model содержит доменные структуры CRM: лиды, сделки, менеджеров, команды и отчёты.
package model

import (
	"slices"
	"strings"
	"time"
)

// LeadStatus этап работы с лидом.
type LeadStatus string

const (
	LeadStatusLaunchedOnAppSumo   LeadStatus = "Launched on AppSumo"
	LeadStatusLaunchedOnPrimeClub LeadStatus = "Launched on Prime Club"
	LeadStatusKeepAnEye           LeadStatus = "Keep an Eye"
	LeadStatusRejected            LeadStatus = "Rejected"
	LeadStatusUnsubscribed        LeadStatus = "Unsubscribed"
	LeadStatusOutdated            LeadStatus = "Outdated"
	LeadStatusHotlist             LeadStatus = "Hotlist"
	LeadStatusOutOfLeague         LeadStatus = "Out of League"
	LeadStatusConnected           LeadStatus = "Connected"
	LeadStatusLocked              LeadStatus = "Locked"
	LeadStatusMeetingBooked       LeadStatus = "Meeting Booked"
	LeadStatusMeetingDone         LeadStatus = "Meeting Done"
	LeadStatusNegotiation         LeadStatus = "Negotiation"
	LeadStatusClosedLost          LeadStatus = "Closed Lost"
)

// TeamSize бакет размера команды компании-лида.
type TeamSize string

const (
	TeamSize1To10     TeamSize = "1-10"
	TeamSize11To50    TeamSize = "11-50"
	TeamSize51To100   TeamSize = "51-100"
	TeamSize101To500  TeamSize = "101-500"
	TeamSize501To1000 TeamSize = "501-1000"
	TeamSize1001Plus  TeamSize = "1001+"
)

// FundingType тип финансирования компании-лида.
type FundingType string

const (
	FundingBootstrapped FundingType = "Bootstrapped"
	FundingPreSeed      FundingType = "Pre-seed"
	FundingYCombinator  FundingType = "Y Combinator"
	FundingAngel        FundingType = "Angel"
	FundingSeriesA      FundingType = "Series A"
	FundingSeriesB      FundingType = "Series B"
	FundingSeriesC      FundingType = "Series C"
)

// Lead описывает компанию-лида, добавленную менеджером.
// CreatedAt выставляется при создании и дальше не меняется.
type Lead struct {
	ID           int64       `json:"id"`
	WebsiteURL   string      `json:"website_url"`
	TeamSize     TeamSize    `json:"team_size"`
	ARR          float64     `json:"arr"`
	Category     string      `json:"category"`
	FundingType  FundingType `json:"funding_type"`
	Status       LeadStatus  `json:"status"`
	AddedBy      int64       `json:"added_by"`
	AddedByName  string      `json:"added_by_name"`
	FollowUpDate *time.Time  `json:"follow_up_date,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

// LeadPatch частичное обновление лида: nil означает «не трогать поле».
// ClearFollowUpDate снимает дату follow-up, nil для этого не годится.
type LeadPatch struct {
	WebsiteURL   *string      `json:"website_url,omitempty"`
	TeamSize     *TeamSize    `json:"team_size,omitempty"`
	ARR          *float64     `json:"arr,omitempty"`
	Category     *string      `json:"category,omitempty"`
	FundingType  *FundingType `json:"funding_type,omitempty"`
	Status       *LeadStatus  `json:"status,omitempty"`
	AddedBy      *int64       `json:"added_by,omitempty"`
	AddedByName  *string      `json:"added_by_name,omitempty"`
	FollowUpDate *time.Time   `json:"follow_up_date,omitempty"`

	ClearFollowUpDate bool `json:"clear_follow_up_date,omitempty"`
}

// Apply накладывает заданные поля патча на лид. ID и CreatedAt не изменяются.
func (p LeadPatch) Apply(l Lead) Lead {
	if p.WebsiteURL != nil {
		l.WebsiteURL = *p.WebsiteURL
	}
	if p.TeamSize != nil {
		l.TeamSize = *p.TeamSize
	}
	if p.ARR != nil {
		l.ARR = *p.ARR
	}
	if p.Category != nil {
		l.Category = *p.Category
	}
	if p.FundingType != nil {
		l.FundingType = *p.FundingType
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
	if p.AddedBy != nil {
		l.AddedBy = *p.AddedBy
	}
	if p.AddedByName != nil {
		l.AddedByName = *p.AddedByName
	}
	switch {
	case p.ClearFollowUpDate:
		l.FollowUpDate = nil
	case p.FollowUpDate != nil:
		t := *p.FollowUpDate
		l.FollowUpDate = &t
	}
	return l
}

// NormalizeWebsiteURL приводит URL к ключу уникальности:
// нижний регистр и без одного завершающего слэша.
func NormalizeWebsiteURL(raw string) string {
	return strings.TrimSuffix(strings.ToLower(raw), "/")
}

// NormalizedURL возвращает ключ уникальности лида.
func (l Lead) NormalizedURL() string {
	return NormalizeWebsiteURL(l.WebsiteURL)
}

var (
	leadStatuses = []LeadStatus{
		LeadStatusLaunchedOnAppSumo, LeadStatusLaunchedOnPrimeClub, LeadStatusKeepAnEye,
		LeadStatusRejected, LeadStatusUnsubscribed, LeadStatusOutdated, LeadStatusHotlist,
		LeadStatusOutOfLeague, LeadStatusConnected, LeadStatusLocked, LeadStatusMeetingBooked,
		LeadStatusMeetingDone, LeadStatusNegotiation, LeadStatusClosedLost,
	}
	teamSizes = []TeamSize{
		TeamSize1To10, TeamSize11To50, TeamSize51To100, TeamSize101To500, TeamSize501To1000, TeamSize1001Plus,
	}
	fundingTypes = []FundingType{
		FundingBootstrapped, FundingPreSeed, FundingYCombinator, FundingAngel,
		FundingSeriesA, FundingSeriesB, FundingSeriesC,
	}
)

// Valid сообщает, входит ли статус в справочник.
func (s LeadStatus) Valid() bool { return slices.Contains(leadStatuses, s) }

func (s TeamSize) Valid() bool { return slices.Contains(teamSizes, s) }

func (f FundingType) Valid() bool { return slices.Contains(fundingTypes, f) }

// Package http реализует HTTP-обработчики и DTO поверх доменных сервисов.
package http

import (
	"time"

	"sales-crm-service/internal/model"
)

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type createLeadRequest struct {
	WebsiteURL   string     `json:"website_url"`
	TeamSize     string     `json:"team_size" validate:"omitempty,teamsize"`
	ARR          float64    `json:"arr" validate:"gte=0"`
	Category     string     `json:"category"`
	FundingType  string     `json:"funding_type" validate:"omitempty,fundingtype"`
	Status       string     `json:"status" validate:"omitempty,leadstatus"`
	AddedBy      int64      `json:"added_by" validate:"gte=0"`
	AddedByName  string     `json:"added_by_name"`
	FollowUpDate *time.Time `json:"follow_up_date"`
}

func (r createLeadRequest) toModel() model.Lead {
	return model.Lead{
		WebsiteURL:   r.WebsiteURL,
		TeamSize:     model.TeamSize(r.TeamSize),
		ARR:          r.ARR,
		Category:     r.Category,
		FundingType:  model.FundingType(r.FundingType),
		Status:       model.LeadStatus(r.Status),
		AddedBy:      r.AddedBy,
		AddedByName:  r.AddedByName,
		FollowUpDate: r.FollowUpDate,
	}
}

// updateLeadRequest: отсутствующие поля не меняются, created_at игнорируется.
type updateLeadRequest struct {
	WebsiteURL   *string    `json:"website_url"`
	TeamSize     *string    `json:"team_size" validate:"omitempty,teamsize"`
	ARR          *float64   `json:"arr" validate:"omitempty,gte=0"`
	Category     *string    `json:"category"`
	FundingType  *string    `json:"funding_type" validate:"omitempty,fundingtype"`
	Status       *string    `json:"status" validate:"omitempty,leadstatus"`
	AddedBy      *int64     `json:"added_by" validate:"omitempty,gte=0"`
	AddedByName  *string    `json:"added_by_name"`
	FollowUpDate *time.Time `json:"follow_up_date"`
	// Снять follow-up; вместе с follow_up_date не принимается.
	ClearFollowUpDate bool `json:"clear_follow_up_date" validate:"excluded_with=FollowUpDate"`
}

func (r updateLeadRequest) toModel() model.LeadPatch {
	p := model.LeadPatch{
		WebsiteURL:        r.WebsiteURL,
		ARR:               r.ARR,
		Category:          r.Category,
		AddedBy:           r.AddedBy,
		AddedByName:       r.AddedByName,
		FollowUpDate:      r.FollowUpDate,
		ClearFollowUpDate: r.ClearFollowUpDate,
	}
	if r.TeamSize != nil {
		v := model.TeamSize(*r.TeamSize)
		p.TeamSize = &v
	}
	if r.FundingType != nil {
		v := model.FundingType(*r.FundingType)
		p.FundingType = &v
	}
	if r.Status != nil {
		v := model.LeadStatus(*r.Status)
		p.Status = &v
	}
	return p
}

type leadResponse struct {
	Lead model.Lead `json:"lead"`
}

type leadsResponse struct {
	Leads []model.Lead `json:"leads"`
}

type dailyReportResponse struct {
	Reports []model.RepDailyReport `json:"reports"`
}

type userReportResponse struct {
	RepID  int64        `json:"rep_id"`
	Period model.Period `json:"period"`
	Leads  []model.Lead `json:"leads"`
}

type quotaAlertsResponse struct {
	Alerts []model.QuotaAlert `json:"alerts"`
}

type repsResponse struct {
	Reps []model.SalesRep `json:"reps"`
}

type leaderboardResponse struct {
	Leaderboard []model.LeaderboardEntry `json:"leaderboard"`
}

type createTeamRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description string  `json:"description" validate:"max=500"`
	LeaderID    int64   `json:"leader_id" validate:"required,gt=0"`
	Members     []int64 `json:"members" validate:"dive,gt=0"`
}

func (r createTeamRequest) toModel() model.Team {
	return model.Team{
		Name:        r.Name,
		Description: r.Description,
		LeaderID:    r.LeaderID,
		Members:     r.Members,
	}
}

type updateTeamRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	LeaderID    *int64   `json:"leader_id" validate:"omitempty,gt=0"`
	Members     *[]int64 `json:"members" validate:"omitempty,dive,gt=0"`
}

func (r updateTeamRequest) toModel() model.TeamPatch {
	return model.TeamPatch{
		Name:        r.Name,
		Description: r.Description,
		LeaderID:    r.LeaderID,
		Members:     r.Members,
	}
}

type teamResponse struct {
	Team model.Team `json:"team"`
}

type teamsResponse struct {
	Teams []model.Team `json:"teams"`
}

type teamPerformanceResponse struct {
	TeamID      int64                 `json:"team_id"`
	Performance model.TeamPerformance `json:"performance"`
}

type memberPerformanceResponse struct {
	TeamID  int64                     `json:"team_id"`
	Members []model.MemberPerformance `json:"members"`
}

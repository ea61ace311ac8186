package handlers

import (
	"github.com/tradesite/directory/internal/directory/models"
)

type tradeResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type paginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// subcontractorResponse is the summary shape used by search results.
type subcontractorResponse struct {
	ID     uint            `json:"id"`
	Name   string          `json:"name"`
	ABN    string          `json:"abn"`
	Mobile string          `json:"mobile"`
	Email  string          `json:"email"`
	Logo   string          `json:"logo"`
	Trades []tradeResponse `json:"trades"`
}

type employeeResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	JobTitle       string `json:"jobTitle"`
	Mobile         string `json:"mobile"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture"`
	IsMainContact  bool   `json:"isMainContact"`
}

// siteResponse is the full public profile.
type siteResponse struct {
	Name      string             `json:"name"`
	Logo      string             `json:"logo"`
	Mobile    string             `json:"mobile"`
	Email     string             `json:"email"`
	Trades    []string           `json:"trades"`
	Employees []employeeResponse `json:"employees"`
	Documents []models.Document  `json:"documents"`
}

func toTradeResponses(trades []models.Trade) []tradeResponse {
	out := make([]tradeResponse, 0, len(trades))
	for _, trade := range trades {
		out = append(out, tradeResponse{ID: trade.ID, Name: trade.Name})
	}
	return out
}

func toSubcontractorResponses(subs []models.Subcontractor) []subcontractorResponse {
	out := make([]subcontractorResponse, 0, len(subs))
	for i := range subs {
		sub := &subs[i]
		out = append(out, subcontractorResponse{
			ID:     sub.ID,
			Name:   sub.Name,
			ABN:    sub.ABN,
			Mobile: sub.Mobile,
			Email:  sub.Email,
			Logo:   sub.Logo,
			Trades: toTradeResponses(sub.Trades),
		})
	}
	return out
}

func toPagination(result *models.SearchResult) paginationResponse {
	return paginationResponse{
		Page:       result.Page,
		Limit:      result.Limit,
		Total:      result.Total,
		TotalPages: result.TotalPages(),
	}
}

func toSiteResponse(sub *models.Subcontractor) siteResponse {
	trades := make([]string, 0, len(sub.Trades))
	for _, trade := range sub.Trades {
		trades = append(trades, trade.Name)
	}

	employees := make([]employeeResponse, 0, len(sub.Employees))
	for i := range sub.Employees {
		emp := &sub.Employees[i]
		employees = append(employees, employeeResponse{
			ID:             emp.ID,
			Name:           emp.Name,
			JobTitle:       emp.JobTitle,
			Mobile:         emp.Mobile,
			Email:          emp.Email,
			ProfilePicture: emp.ProfilePicture,
			IsMainContact:  sub.IsMainContact(emp),
		})
	}

	documents := sub.Documents
	if documents == nil {
		documents = []models.Document{}
	}

	return siteResponse{
		Name:      sub.Name,
		Logo:      sub.Logo,
		Mobile:    sub.Mobile,
		Email:     sub.Email,
		Trades:    trades,
		Employees: employees,
		Documents: documents,
	}
}

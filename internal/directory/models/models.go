// Package models defines the core domain models for the subcontractor
// directory: the Subcontractor aggregate, its Employees, the Trade
// catalog, and the search filter/result types.
package models

import (
	"time"
)

// Document is a stored upload attached to a subcontractor. Filename is
// the generated name on disk; OriginalName is what the client uploaded.
type Document struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
}

// Trade is one category from the fixed construction-trade vocabulary.
type Trade struct {
	ID   uint
	Name string
}

// Employee belongs to exactly one subcontractor and is deleted with it.
type Employee struct {
	ID              uint
	SubcontractorID uint
	Name            string
	JobTitle        string
	Mobile          string
	Email           string
	ProfilePicture  string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Subcontractor is the aggregate root: the company record together with
// its owned employees and its trade links.
type Subcontractor struct {
	ID     uint
	Name   string
	ABN    string
	Slug   string
	Mobile string
	Email  string
	Logo   string
	// Documents holds stored uploads; never nil after load.
	Documents []Document
	// CurrentStep marks wizard progress. Completed aggregates carry 5.
	CurrentStep int
	// MainContactEmployeeID references one of Employees, if set.
	MainContactEmployeeID *uint
	Employees             []Employee
	Trades                []Trade
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// IsMainContact reports whether the given employee is the aggregate's
// designated main contact.
func (s *Subcontractor) IsMainContact(e *Employee) bool {
	return s.MainContactEmployeeID != nil && *s.MainContactEmployeeID == e.ID
}

// EmployeeSubmission is one employee as submitted through the wizard.
type EmployeeSubmission struct {
	Name           string `json:"name"`
	JobTitle       string `json:"jobTitle"`
	Mobile         string `json:"mobile"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture"`
	IsMainContact  bool   `json:"isMainContact"`
}

// Submission is the full wizard payload resubmitted on the final step.
type Submission struct {
	Name      string
	ABN       string
	Logo      string
	Mobile    string
	Email     string
	Employees []EmployeeSubmission
	TradeIDs  []uint
	Documents []Document
}

// SearchFilter describes a subcontractor search. Empty Query and
// TradeIDs turn it into a plain listing.
type SearchFilter struct {
	Query    string
	TradeIDs []uint
	Page     int
	Limit    int
}

// SearchResult is one page of matches plus the pre-pagination total.
type SearchResult struct {
	Items []Subcontractor
	Total int64
	Page  int
	Limit int
}

// TotalPages returns the number of pages covering Total at the result's
// page size.
func (r *SearchResult) TotalPages() int {
	if r.Limit <= 0 {
		return 0
	}
	return int((r.Total + int64(r.Limit) - 1) / int64(r.Limit))
}

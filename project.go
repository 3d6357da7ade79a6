package civic

import "strings"

// ProjectStatus lifecycle state of an infrastructure project
type ProjectStatus string

const (
	StatusPending    ProjectStatus = "pending"
	StatusInProgress ProjectStatus = "in-progress"
	StatusCompleted  ProjectStatus = "completed"
)

// ParseProjectStatus maps the status strings the backend has been seen to emit onto the
// three display states. Anything unrecognised is treated as pending.
func ParseProjectStatus(s string) ProjectStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "completed", "complete", "done":
		return StatusCompleted
	case "in-progress", "in_progress", "inprogress", "active", "ongoing":
		return StatusInProgress
	default:
		return StatusPending
	}
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Project is the display model of a tracked project. A collection of projects is replaced
// wholesale on every refetch and individual projects are never mutated in place.
type Project struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Location       string        `json:"location"`
	Status         ProjectStatus `json:"status"`
	BudgetNGN      Amount        `json:"total_budget_ngn"`
	BudgetETH      Amount        `json:"total_budget_eth"`
	BudgetCurrency Currency      `json:"budget_currency"`
	Coordinates    Coordinates   `json:"coordinates"`
	Progress       *float64      `json:"progress,omitempty"`
	Votes          *int          `json:"votes,omitempty"`
	AIConfidence   *float64      `json:"aiConfidence,omitempty"`
}

// Budget returns the project budget on its authoritative side.
func (p Project) Budget() MonetaryAmount {
	if p.BudgetCurrency == ETH {
		return MonetaryAmount{Value: p.BudgetETH, Currency: ETH}
	}
	return MonetaryAmount{Value: p.BudgetNGN, Currency: NGN}
}

// RawProject is a project record as returned by the backend.
type RawProject struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	Status         string   `json:"status"`
	TotalBudget    float64  `json:"total_budget"`
	TotalBudgetNGN float64  `json:"total_budget_ngn"`
	TotalBudgetETH float64  `json:"total_budget_eth"`
	BudgetCurrency string   `json:"budget_currency"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	Progress       *float64 `json:"progress"`
	Votes          *int     `json:"votes"`
	AIConfidence   *float64 `json:"ai_confidence"`
}

// StatusFilter selects projects by status; StatusAll disables the check.
type StatusFilter string

const (
	StatusAll StatusFilter = "all"
)

// ParseStatusFilter parses a status filter, falling back to StatusAll.
func ParseStatusFilter(s string) StatusFilter {
	switch ProjectStatus(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPending, StatusInProgress, StatusCompleted:
		return StatusFilter(strings.ToLower(strings.TrimSpace(s)))
	default:
		return StatusAll
	}
}

// ProjectFilters is view-selection state. It never changes the underlying collection.
type ProjectFilters struct {
	Status StatusFilter `json:"status"`
	Search string       `json:"search,omitempty"`
}

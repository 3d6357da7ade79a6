package project

import (
	"civic-sync"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUnexpectedStatus is returned when the backend answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected status from backend")

// Listing the backend's project collection together with the exchange rate it was priced at
type Listing struct {
	Projects     []civic.RawProject `json:"projects"`
	ExchangeRate civic.Rate         `json:"exchange_rate"`
}

// Service fetches projects from the backend and shapes them for display
type Service interface {
	GetAllProjects(ctx context.Context) (Listing, error)
	TransformProject(raw civic.RawProject) civic.Project
}

// service backend REST API
type service struct {
	// url base API url
	url string

	// client for HTTP requests
	client http.Client
}

// NewService constructs a valid project Service for the backend at url.
func NewService(url string) Service {
	return &service{
		url: url,
		client: http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// GetAllProjects loads every project the backend knows about.
func (s *service) GetAllProjects(ctx context.Context) (Listing, error) {
	url := fmt.Sprintf("%v/projects", s.url)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Listing{}, fmt.Errorf("building http request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	httpResponse, err := s.client.Do(request)
	if err != nil {
		return Listing{}, fmt.Errorf("http get: %w", err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode >= 300 {
		return Listing{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, httpResponse.StatusCode)
	}

	var listing Listing
	if err := json.NewDecoder(httpResponse.Body).Decode(&listing); err != nil {
		return Listing{}, fmt.Errorf("decoding json: %w", err)
	}
	return listing, nil
}

func (s *service) TransformProject(raw civic.RawProject) civic.Project {
	return Transform(raw)
}

// Transform converts a backend record into the display model. Both budgets are taken as
// the backend priced them; neither is recomputed here.
func Transform(raw civic.RawProject) civic.Project {
	title := raw.Title
	if title == "" {
		title = raw.Name
	}

	ngn := raw.TotalBudgetNGN
	if ngn == 0 {
		ngn = raw.TotalBudget
	}

	budgetCurrency, ok := civic.ParseCurrency(raw.BudgetCurrency)
	if !ok {
		budgetCurrency = civic.NGN
	}

	p := civic.Project{
		ID:             fmt.Sprintf("PRJ-%03d", raw.ID),
		Title:          title,
		Location:       raw.Location,
		Status:         civic.ParseProjectStatus(raw.Status),
		BudgetNGN:      civic.Amount(ngn),
		BudgetETH:      civic.Amount(raw.TotalBudgetETH),
		BudgetCurrency: budgetCurrency,
		Coordinates:    civic.Coordinates{Lat: raw.Latitude, Lng: raw.Longitude},
	}
	if raw.Progress != nil {
		v := clamp(*raw.Progress, 0, 100)
		p.Progress = &v
	}
	if raw.Votes != nil {
		v := *raw.Votes
		if v < 0 {
			v = 0
		}
		p.Votes = &v
	}
	if raw.AIConfidence != nil {
		v := clamp(*raw.AIConfidence, 0, 100)
		p.AIConfidence = &v
	}
	return p
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

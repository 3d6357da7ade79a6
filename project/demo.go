package project

import "civic-sync"

// Demo returns the fixed collection shown when the backend has nothing to offer.
func Demo() []civic.Project {
	confidence := 98.5
	progress := 45.0
	votes := 82
	return []civic.Project{
		{
			ID:             "DEMO-001",
			Title:          "Lagos-Ibadan Expressway Repair",
			Location:       "Lagos State",
			Status:         civic.StatusCompleted,
			BudgetNGN:      50000000,
			BudgetETH:      0.02,
			BudgetCurrency: civic.NGN,
			AIConfidence:   &confidence,
			Coordinates:    civic.Coordinates{Lat: 6.5244, Lng: 3.3792},
		},
		{
			ID:             "DEMO-002",
			Title:          "Abuja Metro Line Extension",
			Location:       "FCT Abuja",
			Status:         civic.StatusInProgress,
			BudgetNGN:      1200000000,
			BudgetETH:      0.48,
			BudgetCurrency: civic.NGN,
			Progress:       &progress,
			Coordinates:    civic.Coordinates{Lat: 9.0765, Lng: 7.3986},
		},
		{
			ID:             "DEMO-003",
			Title:          "Port Harcourt Bridge Construction",
			Location:       "Rivers State",
			Status:         civic.StatusPending,
			BudgetNGN:      3500000000,
			BudgetETH:      1.4,
			BudgetCurrency: civic.NGN,
			Votes:          &votes,
			Coordinates:    civic.Coordinates{Lat: 4.8156, Lng: 7.0498},
		},
	}
}

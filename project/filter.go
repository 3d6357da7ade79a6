package project

import (
	"civic-sync"
	"strings"
)

// Matches reports whether p passes f. The status and search conditions must both hold.
func Matches(p civic.Project, f civic.ProjectFilters) bool {
	if f.Status != "" && f.Status != civic.StatusAll && civic.ProjectStatus(f.Status) != p.Status {
		return false
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), search) ||
		strings.Contains(strings.ToLower(p.ID), search) ||
		strings.Contains(strings.ToLower(p.Location), search)
}

// Filter returns the projects passing f, in collection order.
func Filter(projects []civic.Project, f civic.ProjectFilters) []civic.Project {
	filtered := []civic.Project{}
	for _, p := range projects {
		if Matches(p, f) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

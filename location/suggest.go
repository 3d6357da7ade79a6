package location

import (
	"math/rand"
	"strings"
)

// UnknownLocation name used when a display name has no usable first segment.
const UnknownLocation = "Unknown Location"

// Categories infrastructure project categories used for title suggestions.
var Categories = []string{
	"Infrastructure Development",
	"Road Construction",
	"Bridge Repair",
	"Public Facility Upgrade",
	"Urban Development",
	"Transportation Hub",
	"Water Supply Project",
	"Power Grid Expansion",
	"Hospital Construction",
	"School Renovation",
}

// LocationName is the part of a display name before the first comma.
func LocationName(displayName string) string {
	name, _, _ := strings.Cut(displayName, ",")
	name = strings.TrimSpace(name)
	if name == "" {
		return UnknownLocation
	}
	return name
}

// Secondary is the part of a display name after the first comma.
func Secondary(displayName string) string {
	_, rest, _ := strings.Cut(displayName, ",")
	return strings.TrimSpace(rest)
}

// SuggestProjectTitle pairs locationName with a category picked uniformly using rng.
// The same rng state always yields the same title.
func SuggestProjectTitle(locationName string, rng *rand.Rand) string {
	return locationName + " " + Categories[rng.Intn(len(Categories))]
}

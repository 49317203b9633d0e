package model

import (
	"math"

	"github.com/secmon-lab/offboarding/pkg/domain/types"
)

// StatusCounts holds the number of cases per status
type StatusCounts map[types.CaseStatus]int

// Total returns the sum of all counts
func (c StatusCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// StatusPercentages holds rounded percentages for the sidebar segments.
// Values are rounded independently and may not sum to 100.
type StatusPercentages map[types.CaseStatus]int

// CountsFor counts cases by status. Every case is counted under its own
// status, known or not.
func CountsFor(cases []*EmployeeCase) StatusCounts {
	counts := make(StatusCounts)
	for _, c := range cases {
		counts[c.Status]++
	}
	return counts
}

// PercentagesFor derives the sidebar breakdown for the tracked statuses.
// An empty collection yields zero for each of them.
func PercentagesFor(cases []*EmployeeCase) StatusPercentages {
	counts := CountsFor(cases)
	total := len(cases)
	if total == 0 {
		total = 1
	}

	pct := make(StatusPercentages, len(types.TrackedCaseStatuses()))
	for _, status := range types.TrackedCaseStatuses() {
		pct[status] = int(math.Round(float64(counts[status]) / float64(total) * 100))
	}
	return pct
}

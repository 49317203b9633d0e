package model

import "github.com/secmon-lab/offboarding/pkg/domain/types"

// KPI is a headline number shown in the sidebar
type KPI struct {
	Number   int
	Label    string
	Subtitle string
}

// Sidebar is the derived status breakdown plus static alerts and KPIs
type Sidebar struct {
	Percentages StatusPercentages
	Alerts      []string
	KPIs        []KPI
}

// DashboardView is the filtered case table
type DashboardView struct {
	Filter types.StatusFilter
	Rows   []*EmployeeCase
}

// VisibleRows returns the cases passing filter in source order. The result
// shares elements with cases.
func VisibleRows(cases []*EmployeeCase, filter types.StatusFilter) []*EmployeeCase {
	rows := make([]*EmployeeCase, 0, len(cases))
	for _, c := range cases {
		if filter.Match(c.Status) {
			rows = append(rows, c)
		}
	}
	return rows
}

package model

// Seed is the hard-coded data the dashboard starts from
type Seed struct {
	Directory []*EmployeeRecord
	Cases     []*EmployeeCase
	Alerts    []string
	KPIs      []KPI
}

package types

// Offboarding types offered by the initiation form
const (
	OffboardingTypeResignation = "Resignation"
	OffboardingTypeTermination = "Termination"
	OffboardingTypeRetirement  = "Retirement"
	OffboardingTypeContractEnd = "Contract End"
	OffboardingTypeOther       = "Other"
)

// Reasons for leaving offered by the initiation form
const (
	ReasonPersonal     = "Personal"
	ReasonCareerChange = "Career Change"
	ReasonPerformance  = "Performance"
	ReasonLayoff       = "Layoff"
	ReasonOther        = "Other"
)

// Team is a group notified when an offboarding request is filed
type Team string

const (
	TeamHR         Team = "HR"
	TeamIT         Team = "IT"
	TeamPayroll    Team = "Payroll"
	TeamFacilities Team = "Facilities"
	TeamManager    Team = "Manager"
)

func (t Team) String() string {
	return string(t)
}

// OffboardingTypes returns the selectable offboarding types
func OffboardingTypes() []string {
	return []string{
		OffboardingTypeResignation,
		OffboardingTypeTermination,
		OffboardingTypeRetirement,
		OffboardingTypeContractEnd,
		OffboardingTypeOther,
	}
}

// Reasons returns the selectable reasons for leaving
func Reasons() []string {
	return []string{
		ReasonPersonal,
		ReasonCareerChange,
		ReasonPerformance,
		ReasonLayoff,
		ReasonOther,
	}
}

// NotifyTeams returns the teams that can be notified
func NotifyTeams() []Team {
	return []Team{TeamHR, TeamIT, TeamPayroll, TeamFacilities, TeamManager}
}

// DefaultNotifyTeams returns the teams preselected on a new draft
func DefaultNotifyTeams() []Team {
	return []Team{TeamHR, TeamIT, TeamPayroll, TeamManager}
}

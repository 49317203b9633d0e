package http

import (
	"time"

	"github.com/secmon-lab/offboarding/pkg/domain/model"
	"github.com/secmon-lab/offboarding/pkg/domain/types"
	"github.com/secmon-lab/offboarding/pkg/usecase"
)

type caseResponse struct {
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	ExitDate    string   `json:"exitDate"`
	Status      string   `json:"status"`
	StatusLabel string   `json:"statusLabel"`
	Progress    int      `json:"progress"`
	Tasks       []string `json:"tasks"`
}

type dashboardResponse struct {
	Filter string         `json:"filter"`
	Rows   []caseResponse `json:"rows"`
}

type kpiResponse struct {
	Number   int    `json:"number"`
	Label    string `json:"label"`
	Subtitle string `json:"subtitle"`
}

type sidebarResponse struct {
	Percentages map[string]int `json:"percentages"`
	Alerts      []string       `json:"alerts"`
	KPIs        []kpiResponse  `json:"kpis"`
}

type employeeResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Manager    string `json:"manager"`
}

type lookupResponse struct {
	Found    bool              `json:"found"`
	Employee *employeeResponse `json:"employee,omitempty"`
}

type draftResponse struct {
	ID               string    `json:"id"`
	State            string    `json:"state"`
	UseDirectory     bool      `json:"useDirectory"`
	EmployeeName     string    `json:"employeeName"`
	EmployeeID       string    `json:"employeeId"`
	JobTitle         string    `json:"jobTitle"`
	Department       string    `json:"department"`
	ManagerName      string    `json:"managerName"`
	OffboardingType  string    `json:"offboardingType"`
	ExitDate         string    `json:"exitDate"`
	Reason           string    `json:"reason"`
	NoticeDays       string    `json:"noticeDays"`
	OffboardingNotes string    `json:"offboardingNotes"`
	Comments         string    `json:"comments"`
	NotifyTeams      []string  `json:"notifyTeams"`
	Generation       int64     `json:"generation"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type notificationResponse struct {
	Message string     `json:"message"`
	Visible bool       `json:"visible"`
	Version uint64     `json:"version"`
	ShownAt *time.Time `json:"shownAt,omitempty"`
}

type confirmResponse struct {
	Submitted    bool                 `json:"submitted"`
	NavigateTo   string               `json:"navigateTo,omitempty"`
	Stale        bool                 `json:"stale"`
	Error        string               `json:"error,omitempty"`
	Draft        *draftResponse       `json:"draft,omitempty"`
	Notification notificationResponse `json:"notification"`
}

type formDefaults struct {
	OffboardingType string   `json:"offboardingType"`
	Reason          string   `json:"reason"`
	NotifyTeams     []string `json:"notifyTeams"`
	UseDirectory    bool     `json:"useDirectory"`
}

type formOptionsResponse struct {
	OffboardingTypes []string     `json:"offboardingTypes"`
	Reasons          []string     `json:"reasons"`
	NotifyTeams      []string     `json:"notifyTeams"`
	Defaults         formDefaults `json:"defaults"`
}

func toCaseResponse(c *model.EmployeeCase) caseResponse {
	tasks := c.Tasks
	if tasks == nil {
		tasks = []string{}
	}
	return caseResponse{
		Name:        c.Name,
		Role:        c.Role,
		ExitDate:    c.ExitDate,
		Status:      c.Status.String(),
		StatusLabel: c.Status.Label(),
		Progress:    c.Progress,
		Tasks:       tasks,
	}
}

func toDashboardResponse(v *model.DashboardView) dashboardResponse {
	rows := make([]caseResponse, len(v.Rows))
	for i, c := range v.Rows {
		rows[i] = toCaseResponse(c)
	}
	return dashboardResponse{
		Filter: v.Filter.String(),
		Rows:   rows,
	}
}

func toSidebarResponse(s *model.Sidebar) sidebarResponse {
	pct := make(map[string]int, len(s.Percentages))
	for status, p := range s.Percentages {
		pct[status.String()] = p
	}
	kpis := make([]kpiResponse, len(s.KPIs))
	for i, k := range s.KPIs {
		kpis[i] = kpiResponse{Number: k.Number, Label: k.Label, Subtitle: k.Subtitle}
	}
	alerts := s.Alerts
	if alerts == nil {
		alerts = []string{}
	}
	return sidebarResponse{
		Percentages: pct,
		Alerts:      alerts,
		KPIs:        kpis,
	}
}

func toEmployeeResponse(e *model.EmployeeRecord) employeeResponse {
	return employeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Role:       e.Role,
		Department: e.Department,
		Manager:    e.Manager,
	}
}

func teamNames(teams []types.Team) []string {
	names := make([]string, len(teams))
	for i, t := range teams {
		names[i] = t.String()
	}
	return names
}

func toDraftResponse(d *model.OffboardingDraft) *draftResponse {
	if d == nil {
		return nil
	}
	return &draftResponse{
		ID:               d.ID.String(),
		State:            d.State.String(),
		UseDirectory:     d.UseDirectory,
		EmployeeName:     d.EmployeeName,
		EmployeeID:       d.EmployeeID,
		JobTitle:         d.JobTitle,
		Department:       d.Department,
		ManagerName:      d.ManagerName,
		OffboardingType:  d.OffboardingType,
		ExitDate:         d.ExitDate,
		Reason:           d.Reason,
		NoticeDays:       d.NoticeDays,
		OffboardingNotes: d.OffboardingNotes,
		Comments:         d.Comments,
		NotifyTeams:      teamNames(d.Teams),
		Generation:       d.Generation,
		UpdatedAt:        d.UpdatedAt,
	}
}

func toNotificationResponse(n model.Notification) notificationResponse {
	resp := notificationResponse{
		Message: n.Message,
		Visible: n.Visible(),
		Version: n.Version,
	}
	if n.Visible() && !n.ShownAt.IsZero() {
		shownAt := n.ShownAt
		resp.ShownAt = &shownAt
	}
	return resp
}

func toConfirmResponse(r *usecase.ConfirmResult) confirmResponse {
	resp := confirmResponse{
		Submitted:    r.Submitted,
		NavigateTo:   r.NavigateTo,
		Stale:        r.Stale,
		Draft:        toDraftResponse(r.Draft),
		Notification: toNotificationResponse(r.Notification),
	}
	if r.Failure != nil {
		resp.Error = r.Failure.Error()
	}
	return resp
}

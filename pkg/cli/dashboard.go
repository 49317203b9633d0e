package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/offboarding/pkg/cli/config"
	"github.com/secmon-lab/offboarding/pkg/domain/model"
	"github.com/secmon-lab/offboarding/pkg/domain/types"
	"github.com/secmon-lab/offboarding/pkg/repository/memory"
	"github.com/secmon-lab/offboarding/pkg/service/report"
	"github.com/secmon-lab/offboarding/pkg/usecase"
	"github.com/secmon-lab/offboarding/pkg/utils/logging"
	"github.com/secmon-lab/offboarding/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdDashboard() *cli.Command {
	var status string
	var reportPath string
	var appCfg config.App

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "status",
			Aliases:     []string{"s"},
			Usage:       "Show only cases with this status (all, upcoming, in-progress, overdue, completed)",
			Value:       types.FilterAll.String(),
			Destination: &status,
		},
		&cli.StringFlag{
			Name:        "report",
			Usage:       "Also write the full case list as a PDF to this path",
			Destination: &reportPath,
		},
	}
	flags = append(flags, appCfg.Flags()...)

	return &cli.Command{
		Name:    "dashboard",
		Aliases: []string{"d"},
		Usage:   "Print the offboarding case table and status summary",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			filter, err := types.ParseStatusFilter(status)
			if err != nil {
				return goerr.Wrap(err, "invalid status filter", goerr.V("status", status))
			}

			app, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load configuration", goerr.V("config", appCfg.Path()))
			}

			repo := memory.New(app.ToSeed())
			defer safe.Close(ctx, repo)
			uc := usecase.New(repo)

			view, err := uc.Dashboard.ViewWith(ctx, filter)
			if err != nil {
				return err
			}
			sidebar, err := uc.Dashboard.Sidebar(ctx)
			if err != nil {
				return err
			}

			if err := renderDashboard(c.Root().Writer, view, sidebar); err != nil {
				return err
			}

			if reportPath != "" {
				cases, err := uc.Dashboard.Cases(ctx)
				if err != nil {
					return err
				}
				if err := writeReport(ctx, reportPath, cases); err != nil {
					return err
				}
				logging.Default().Info("Case report written", "path", reportPath, "cases", len(cases))
			}
			return nil
		},
	}
}

var statusColors = map[types.CaseStatus]*color.Color{
	types.CaseStatusUpcoming:   color.New(color.FgBlue),
	types.CaseStatusInProgress: color.New(color.FgYellow),
	types.CaseStatusOverdue:    color.New(color.FgRed, color.Bold),
	types.CaseStatusCompleted:  color.New(color.FgGreen),
}

func statusBadge(status types.CaseStatus) string {
	c, ok := statusColors[status]
	if !ok {
		return status.Label()
	}
	return c.Sprint(status.Label())
}

// renderDashboard writes the case table followed by the sidebar. The
// status badge is the last column so color codes don't skew alignment.
func renderDashboard(w io.Writer, view *model.DashboardView, sidebar *model.Sidebar) error {
	header := color.New(color.Bold)

	if _, err := header.Fprintf(w, "Offboarding cases (%s)\n", view.Filter); err != nil {
		return goerr.Wrap(err, "failed to write dashboard")
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "EMPLOYEE\tROLE\tEXIT DATE\tPROGRESS\tTASKS\tSTATUS")
	for _, row := range view.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d%%\t%s\t%s\n",
			row.Name,
			row.Role,
			row.ExitDate,
			row.Progress,
			strings.Join(row.Tasks, ","),
			statusBadge(row.Status),
		)
	}
	if len(view.Rows) == 0 {
		fmt.Fprintln(tw, "(no cases)")
	}
	if err := tw.Flush(); err != nil {
		return goerr.Wrap(err, "failed to write dashboard")
	}

	fmt.Fprintln(w)
	header.Fprintln(w, "Status")
	for _, s := range types.TrackedCaseStatuses() {
		fmt.Fprintf(w, "  %-12s %3d%%\n", s.Label(), sidebar.Percentages[s])
	}

	if len(sidebar.Alerts) > 0 {
		fmt.Fprintln(w)
		header.Fprintln(w, "Alerts")
		for _, a := range sidebar.Alerts {
			fmt.Fprintf(w, "  ! %s\n", a)
		}
	}

	if len(sidebar.KPIs) > 0 {
		fmt.Fprintln(w)
		header.Fprintln(w, "KPIs")
		for _, k := range sidebar.KPIs {
			fmt.Fprintf(w, "  %4d  %s (%s)\n", k.Number, k.Label, k.Subtitle)
		}
	}
	return nil
}

func writeReport(ctx context.Context, path string, cases []*model.EmployeeCase) error {
	f, err := os.Create(path) // #nosec G304 -- path comes from the operator
	if err != nil {
		return goerr.Wrap(err, "failed to create report file", goerr.V("path", path))
	}
	defer safe.Close(ctx, f)

	if err := report.New().Render(f, cases); err != nil {
		return goerr.Wrap(err, "failed to render report", goerr.V("path", path))
	}
	return nil
}

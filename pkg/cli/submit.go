package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/offboarding/pkg/cli/config"
	"github.com/secmon-lab/offboarding/pkg/domain/model"
	"github.com/secmon-lab/offboarding/pkg/domain/types"
	"github.com/secmon-lab/offboarding/pkg/repository/memory"
	"github.com/secmon-lab/offboarding/pkg/usecase"
	"github.com/secmon-lab/offboarding/pkg/utils/async"
	"github.com/secmon-lab/offboarding/pkg/utils/logging"
	"github.com/secmon-lab/offboarding/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

type fieldFlag struct {
	field model.DraftField
	name  string
	usage string
}

var submitFields = []fieldFlag{
	{model.FieldEmployeeName, "employee-name", "Full name of the departing employee"},
	{model.FieldEmployeeID, "employee-id", "Employee ID"},
	{model.FieldJobTitle, "job-title", "Job title"},
	{model.FieldDepartment, "department", "Department"},
	{model.FieldManagerName, "manager-name", "Manager"},
	{model.FieldOffboardingType, "offboarding-type", "Offboarding type"},
	{model.FieldExitDate, "exit-date", "Last working day (YYYY-MM-DD)"},
	{model.FieldReason, "reason", "Reason for leaving"},
	{model.FieldNoticeDays, "notice-days", "Notice period in days"},
	{model.FieldOffboardingNotes, "notes", "Offboarding notes"},
	{model.FieldComments, "comments", "Additional comments"},
}

func cmdSubmit() *cli.Command {
	var appCfg config.App
	var endpointCfg config.Endpoint
	var teams []string
	var noDirectory bool
	values := make(map[model.DraftField]*string, len(submitFields))

	flags := make([]cli.Flag, 0, len(submitFields)+2)
	for _, f := range submitFields {
		v := new(string)
		values[f.field] = v
		flags = append(flags, &cli.StringFlag{
			Name:        f.name,
			Usage:       f.usage,
			Category:    "Request",
			Destination: v,
		})
	}
	flags = append(flags,
		&cli.StringSliceFlag{
			Name:        "team",
			Usage:       "Team to notify, repeatable. Replaces the default selection",
			Category:    "Request",
			Destination: &teams,
		},
		&cli.BoolFlag{
			Name:        "no-directory",
			Usage:       "Do not fill identity fields from the employee directory",
			Category:    "Request",
			Destination: &noDirectory,
		},
	)
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, endpointCfg.Flags()...)

	return &cli.Command{
		Name:  "submit",
		Usage: "Submit one offboarding request to the configured endpoint",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			app, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load configuration", goerr.V("config", appCfg.Path()))
			}
			client, err := endpointCfg.Configure(app)
			if err != nil {
				return goerr.Wrap(err, "failed to configure submission endpoint")
			}

			repo := memory.New(app.ToSeed())
			defer safe.Close(ctx, repo)
			uc := usecase.New(repo,
				usecase.WithTransport(client),
				usecase.WithSource(endpointCfg.Source(app)),
			)

			fields := make(map[model.DraftField]string)
			for field, v := range values {
				if *v != "" {
					fields[field] = *v
				}
			}

			draft, err := buildDraft(ctx, uc.Draft, fields, teams, !noDirectory)
			if err != nil {
				return err
			}

			result, err := uc.Draft.Confirm(ctx, draft.ID)
			if err != nil {
				return err
			}
			if result.Failure != nil {
				return goerr.Wrap(result.Failure, result.Notification.Message)
			}

			// proxied posts run in the background and must finish before exit
			if err := async.Wait(ctx); err != nil {
				return err
			}

			logging.Default().Info("Offboarding request sent",
				"endpoint", endpointCfg.Summary(app),
				"employee_name", draft.EmployeeName,
			)
			_, _ = fmt.Fprintln(c.Root().Writer, result.Notification.Message)
			return nil
		},
	}
}

// buildDraft fills a new draft and moves it to reviewing
func buildDraft(ctx context.Context, uc *usecase.DraftUseCase, fields map[model.DraftField]string, teams []string, useDirectory bool) (*model.OffboardingDraft, error) {
	draft, err := uc.Create(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := uc.SetUseDirectory(ctx, draft.ID, useDirectory); err != nil {
		return nil, err
	}
	if _, err := uc.SetFields(ctx, draft.ID, fields); err != nil {
		return nil, err
	}

	if len(teams) > 0 {
		for _, t := range draft.Teams {
			if _, err := uc.RemoveTeam(ctx, draft.ID, t); err != nil {
				return nil, err
			}
		}
		for _, t := range teams {
			if _, err := uc.AddTeam(ctx, draft.ID, types.Team(t)); err != nil {
				return nil, err
			}
		}
	}

	return uc.Review(ctx, draft.ID)
}

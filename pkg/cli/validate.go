package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/offboarding/pkg/cli/config"
	"github.com/secmon-lab/offboarding/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var appCfg config.App
	var endpointCfg config.Endpoint

	var flags []cli.Flag
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, endpointCfg.Flags()...)

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate the configuration file and submission endpoint",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			app, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "configuration validation failed", goerr.V("config", appCfg.Path()))
			}

			logger.Info("Configuration validation passed",
				"config", appCfg,
				"directory_count", len(app.Directory),
				"case_count", len(app.Cases),
				"alert_count", len(app.Alerts),
				"kpi_count", len(app.KPIs),
			)

			client, err := endpointCfg.Configure(app)
			if err != nil {
				return goerr.Wrap(err, "endpoint validation failed")
			}
			if !client.Configured() {
				logger.Warn("No submission endpoint configured")
				return nil
			}

			logger.Info("Endpoint validation passed", "endpoint", endpointCfg.Summary(app))
			return nil
		},
	}
}

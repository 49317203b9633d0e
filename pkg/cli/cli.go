package cli

import (
	"context"
	"os"

	"github.com/secmon-lab/offboarding/pkg/cli/config"
	"github.com/secmon-lab/offboarding/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// EnvFileVar names the environment variable overriding the dotenv file path
const EnvFileVar = "OFFBOARDING_ENV_FILE"

func Run(ctx context.Context, args []string, version string) error {
	var loggerCfg config.Logger
	var closer func()

	envFile := os.Getenv(EnvFileVar)
	if envFile == "" {
		envFile = config.DefaultEnvFile
	}
	loaded, err := config.LoadEnvFile(envFile)
	if err != nil {
		logging.Default().Error("failed to load env file", "error", err)
		return err
	}

	app := &cli.Command{
		Name:    "offboarding",
		Usage:   "HR offboarding dashboard and request service",
		Version: version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closer = f

			logging.Default().Debug("Starting offboarding",
				"logger", loggerCfg,
				"env_file", envFile,
				"env_loaded", loaded,
			)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closer != nil {
				closer()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdDashboard(),
			cmdSubmit(),
			cmdValidate(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		logging.Default().Error("failed to run app", "error", err)
		return err
	}

	return nil
}

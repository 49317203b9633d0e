package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// App holds CLI flags for the application config file
type App struct {
	path string
}

// Flags returns CLI flags for the config file
func (x *App) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to config file (.toml, .yaml or .yml). The built-in seed is used if omitted",
			Sources:     cli.EnvVars("OFFBOARDING_CONFIG"),
			Destination: &x.path,
		},
	}
}

// Path returns the config file path
func (x *App) Path() string {
	return x.path
}

// Configure loads the config file, or the built-in seed if no path is set
func (x *App) Configure() (*AppConfig, error) {
	if x.path == "" {
		return DefaultAppConfig()
	}
	return LoadAppConfiguration(x.path)
}

func (x App) LogValue() slog.Value {
	if x.path == "" {
		return slog.StringValue("(built-in)")
	}
	return slog.StringValue(x.path)
}

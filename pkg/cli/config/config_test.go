package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/offboarding/pkg/cli/config"
	"github.com/secmon-lab/offboarding/pkg/domain/model"
	"github.com/secmon-lab/offboarding/pkg/domain/types"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o600)).Required()
	return path
}

func TestDefaultAppConfig(t *testing.T) {
	cfg, err := config.DefaultAppConfig()
	gt.NoError(t, err).Required()

	gt.A(t, cfg.Directory).Length(6)
	gt.A(t, cfg.Cases).Length(6)
	gt.A(t, cfg.Alerts).Length(3)
	gt.A(t, cfg.KPIs).Length(2)
	gt.S(t, cfg.EndpointURL).Equal("")

	seed := cfg.ToSeed()
	gt.S(t, seed.Directory[2].Manager).Equal("Sonia Rivera")
	gt.V(t, seed.Cases[1].Status).Equal(types.CaseStatusOverdue)
	gt.V(t, seed.Cases[0].Tasks).Equal([]string{"file-alt", "laptop", "key"})
	gt.N(t, seed.KPIs[1].Number).Equal(25)

	counts := model.CountsFor(seed.Cases)
	gt.N(t, counts.Total()).Equal(6)
	gt.N(t, counts[types.CaseStatusUpcoming]).Equal(2)
}

func TestLoadAppConfiguration(t *testing.T) {
	t.Run("TOML", func(t *testing.T) {
		path := writeConfig(t, "seed.toml", `
endpoint_url = "https://script.google.com/macros/s/abc/exec"
source = "hr-portal"
alerts = ["Check badge"]

[[directory]]
id = "E1"
name = "Ann Lee"
role = "Engineer"
department = "Platform"
manager = "Bo Kim"

[[cases]]
name = "Ann Lee"
role = "Engineer"
exit_date = "2026-01-31"
status = "completed"
progress = 100
tasks = ["laptop"]

[[kpis]]
number = 3
label = "DAYS"
subtitle = "AVG"
`)
		cfg, err := config.LoadAppConfiguration(path)
		gt.NoError(t, err).Required()
		gt.S(t, cfg.EndpointURL).Equal("https://script.google.com/macros/s/abc/exec")
		gt.S(t, cfg.Source).Equal("hr-portal")
		gt.S(t, cfg.Directory[0].Manager).Equal("Bo Kim")
		gt.S(t, cfg.Cases[0].ExitDate).Equal("2026-01-31")
		gt.A(t, cfg.KPIs).Length(1)
	})

	t.Run("YAML", func(t *testing.T) {
		path := writeConfig(t, "seed.yml", `
directory:
  - id: E1
    name: Ann Lee
    role: Engineer
    department: Platform
    manager: Bo Kim
cases:
  - name: Ann Lee
    role: Engineer
    exit_date: "2026-01-31"
    status: overdue
    progress: 20
    tasks: [laptop, key]
alerts:
  - Check badge
`)
		cfg, err := config.LoadAppConfiguration(path)
		gt.NoError(t, err).Required()
		gt.S(t, cfg.Cases[0].Status).Equal("overdue")
		gt.A(t, cfg.Cases[0].Tasks).Length(2)
		gt.S(t, cfg.Alerts[0]).Equal("Check badge")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadAppConfiguration(filepath.Join(t.TempDir(), "nope.toml"))
		gt.Error(t, err).Is(config.ErrConfigNotFound)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeConfig(t, "seed.json", `{}`)
		_, err := config.LoadAppConfiguration(path)
		gt.Error(t, err).Is(config.ErrUnsupportedFormat)
	})

	t.Run("invalid status", func(t *testing.T) {
		path := writeConfig(t, "seed.toml", `
[[cases]]
name = "Ann Lee"
status = "archived"
`)
		_, err := config.LoadAppConfiguration(path)
		gt.Error(t, err).Is(config.ErrInvalidStatus)
	})

	t.Run("progress out of range", func(t *testing.T) {
		path := writeConfig(t, "seed.toml", `
[[cases]]
name = "Ann Lee"
status = "upcoming"
progress = 120
`)
		_, err := config.LoadAppConfiguration(path)
		gt.Error(t, err).Is(config.ErrInvalidProgress)
	})

	t.Run("duplicate directory ID", func(t *testing.T) {
		path := writeConfig(t, "seed.toml", `
[[directory]]
id = "E1"
name = "Ann Lee"

[[directory]]
id = "E1"
name = "Bo Kim"
`)
		_, err := config.LoadAppConfiguration(path)
		gt.Error(t, err).Is(config.ErrDuplicateID)
	})

	t.Run("endpoint must be http", func(t *testing.T) {
		path := writeConfig(t, "seed.toml", `endpoint_url = "ftp://example.com/x"`)
		_, err := config.LoadAppConfiguration(path)
		gt.Error(t, err).Is(config.ErrInvalidEndpoint)
	})
}

func TestApp_Configure(t *testing.T) {
	var app config.App
	cfg, err := app.Configure()
	gt.NoError(t, err).Required()
	gt.A(t, cfg.Cases).Length(6)
}

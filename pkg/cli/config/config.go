package config

import (
	_ "embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/offboarding/pkg/domain/model"
	"github.com/secmon-lab/offboarding/pkg/domain/types"
	"gopkg.in/yaml.v3"
)

//go:embed default.toml
var defaultConfig []byte

// AppConfig represents the application configuration: the optional
// submission endpoint plus the seed data the dashboard starts from
type AppConfig struct {
	EndpointURL string     `toml:"endpoint_url" yaml:"endpoint_url"`
	Source      string     `toml:"source" yaml:"source"`
	Directory   []Employee `toml:"directory" yaml:"directory"`
	Cases       []Case     `toml:"cases" yaml:"cases"`
	Alerts      []string   `toml:"alerts" yaml:"alerts"`
	KPIs        []KPI      `toml:"kpis" yaml:"kpis"`
}

// Employee represents a directory entry
type Employee struct {
	ID         string `toml:"id" yaml:"id"`
	Name       string `toml:"name" yaml:"name"`
	Role       string `toml:"role" yaml:"role"`
	Department string `toml:"department" yaml:"department"`
	Manager    string `toml:"manager" yaml:"manager"`
}

// Validate checks if the Employee is valid
func (e *Employee) Validate() error {
	if e.ID == "" {
		return goerr.Wrap(ErrInvalidConfig, "employee ID is required", goerr.V(EmployeeKey, e.Name))
	}
	if e.Name == "" {
		return goerr.Wrap(ErrMissingName, "employee name is required", goerr.V(EmployeeIDKey, e.ID))
	}
	return nil
}

// Case represents a tracked offboarding row
type Case struct {
	Name     string   `toml:"name" yaml:"name"`
	Role     string   `toml:"role" yaml:"role"`
	ExitDate string   `toml:"exit_date" yaml:"exit_date"`
	Status   string   `toml:"status" yaml:"status"`
	Progress int      `toml:"progress" yaml:"progress"`
	Tasks    []string `toml:"tasks" yaml:"tasks"`
}

// Validate checks if the Case is valid
func (c *Case) Validate() error {
	if c.Name == "" {
		return goerr.Wrap(ErrMissingName, "case name is required")
	}
	if !types.CaseStatus(c.Status).IsValid() {
		return goerr.Wrap(ErrInvalidStatus, "unknown case status",
			goerr.V(EmployeeKey, c.Name), goerr.V(StatusKey, c.Status))
	}
	if c.Progress < 0 || c.Progress > 100 {
		return goerr.Wrap(ErrInvalidProgress, "case progress out of range",
			goerr.V(EmployeeKey, c.Name), goerr.V(ProgressKey, c.Progress))
	}
	return nil
}

// KPI represents a sidebar headline number
type KPI struct {
	Number   int    `toml:"number" yaml:"number"`
	Label    string `toml:"label" yaml:"label"`
	Subtitle string `toml:"subtitle" yaml:"subtitle"`
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	ids := make(map[string]bool)
	for _, emp := range a.Directory {
		if err := emp.Validate(); err != nil {
			return goerr.Wrap(err, "invalid directory entry")
		}
		if ids[emp.ID] {
			return goerr.Wrap(ErrDuplicateID, "duplicate directory entry", goerr.V(EmployeeIDKey, emp.ID))
		}
		ids[emp.ID] = true
	}

	for i, c := range a.Cases {
		if err := c.Validate(); err != nil {
			return goerr.Wrap(err, "invalid case", goerr.V(CaseIndexKey, i))
		}
	}

	for i, k := range a.KPIs {
		if k.Label == "" {
			return goerr.Wrap(ErrMissingName, "KPI label is required", goerr.V(KPIIndexKey, i))
		}
	}

	if a.EndpointURL != "" {
		if err := validateEndpointURL(a.EndpointURL); err != nil {
			return err
		}
	}

	return nil
}

// DefaultAppConfig returns the built-in seed
func DefaultAppConfig() (*AppConfig, error) {
	cfg, err := parseAppConfig(defaultConfig, ".toml")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse built-in config")
	}
	return cfg, nil
}

// LoadAppConfiguration loads the application configuration from a TOML or
// YAML file chosen by extension
func LoadAppConfiguration(path string) (*AppConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, "config file does not exist", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V(ConfigPathKey, path))
	}

	cfg, err := parseAppConfig(data, filepath.Ext(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load config", goerr.V(ConfigPathKey, path))
	}
	return cfg, nil
}

func parseAppConfig(data []byte, ext string) (*AppConfig, error) {
	var cfg AppConfig
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, goerr.Wrap(err, "failed to parse TOML config")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, goerr.Wrap(err, "failed to parse YAML config")
		}
	default:
		return nil, goerr.Wrap(ErrUnsupportedFormat, "config must be .toml, .yaml or .yml", goerr.V("extension", ext))
	}

	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed")
	}
	return &cfg, nil
}

// ToSeed converts AppConfig to the domain seed
func (a *AppConfig) ToSeed() *model.Seed {
	directory := make([]*model.EmployeeRecord, len(a.Directory))
	for i, emp := range a.Directory {
		directory[i] = &model.EmployeeRecord{
			ID:         emp.ID,
			Name:       emp.Name,
			Role:       emp.Role,
			Department: emp.Department,
			Manager:    emp.Manager,
		}
	}

	cases := make([]*model.EmployeeCase, len(a.Cases))
	for i, c := range a.Cases {
		tasks := make([]string, len(c.Tasks))
		copy(tasks, c.Tasks)
		cases[i] = &model.EmployeeCase{
			Name:     c.Name,
			Role:     c.Role,
			ExitDate: c.ExitDate,
			Status:   types.CaseStatus(c.Status),
			Progress: c.Progress,
			Tasks:    tasks,
		}
	}

	kpis := make([]model.KPI, len(a.KPIs))
	for i, k := range a.KPIs {
		kpis[i] = model.KPI{Number: k.Number, Label: k.Label, Subtitle: k.Subtitle}
	}

	alerts := make([]string, len(a.Alerts))
	copy(alerts, a.Alerts)

	return &model.Seed{
		Directory: directory,
		Cases:     cases,
		Alerts:    alerts,
		KPIs:      kpis,
	}
}

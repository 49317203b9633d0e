package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrConfigNotFound    = goerr.New("configuration file not found")
	ErrInvalidConfig     = goerr.New("invalid configuration")
	ErrUnsupportedFormat = goerr.New("unsupported configuration format")
	ErrDuplicateID       = goerr.New("duplicate employee ID")
	ErrInvalidStatus     = goerr.New("invalid case status")
	ErrInvalidProgress   = goerr.New("progress must be between 0 and 100")
	ErrMissingName       = goerr.New("name is required")
	ErrInvalidLogLevel   = goerr.New("invalid log level")
	ErrInvalidLogFormat  = goerr.New("invalid log format")
	ErrInvalidEndpoint   = goerr.New("invalid endpoint URL")
)

// Context keys for error values
const (
	ConfigPathKey  = "config_path"
	EmployeeIDKey  = "employee_id"
	CaseIndexKey   = "case_index"
	EmployeeKey    = "employee_name"
	StatusKey      = "status"
	ProgressKey    = "progress"
	KPIIndexKey    = "kpi_index"
	LogLevelKey    = "log_level"
	LogFormatKey   = "log_format"
	EndpointURLKey = "endpoint_url"
)

package config

import (
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/offboarding/pkg/service/transport"
	"github.com/urfave/cli/v3"
)

// Endpoint holds CLI flags for the submission endpoint. The flag and its
// environment variables take precedence over endpoint_url in the config
// file.
type Endpoint struct {
	url            string
	source         string
	proxiedTimeout time.Duration
}

// endpointLog is what gets logged about the endpoint. Script and webhook
// URLs carry their credential in the path, so the URL itself is masked.
type endpointLog struct {
	Configured bool
	Host       string
	Kind       string
	URL        string `masq:"secret"`
}

func (x *Endpoint) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "endpoint-url",
			Usage:       "Submission endpoint (webhook or spreadsheet script URL)",
			Category:    "Submission",
			Destination: &x.url,
			Sources: cli.EnvVars(
				"OFFBOARDING_ENDPOINT_URL",
				"OFFBOARDING_SHEETS_WEBAPP_URL",
				"OFFBOARDING_N8N_WEBHOOK_URL",
			),
		},
		&cli.StringFlag{
			Name:        "source",
			Usage:       "Source tag attached to every submission",
			Category:    "Submission",
			Destination: &x.source,
			Sources:     cli.EnvVars("OFFBOARDING_SOURCE"),
		},
		&cli.DurationFlag{
			Name:        "proxied-timeout",
			Usage:       "Deadline of background posts to spreadsheet script endpoints",
			Category:    "Submission",
			Value:       transport.DefaultProxiedTimeout,
			Destination: &x.proxiedTimeout,
			Sources:     cli.EnvVars("OFFBOARDING_PROXIED_TIMEOUT"),
		},
	}
}

// Resolve returns the endpoint URL from flags or environment, falling back
// to the config file. Empty means not configured.
func (x *Endpoint) Resolve(app *AppConfig) string {
	if v := strings.TrimSpace(x.url); v != "" {
		return v
	}
	if app != nil {
		return strings.TrimSpace(app.EndpointURL)
	}
	return ""
}

// Source returns the submission source tag, or "" to keep the default
func (x *Endpoint) Source(app *AppConfig) string {
	if x.source != "" {
		return x.source
	}
	if app != nil {
		return app.Source
	}
	return ""
}

// Configure builds the submission transport. An empty endpoint is valid;
// submissions then fail with a configuration error.
func (x *Endpoint) Configure(app *AppConfig, opts ...transport.Option) (*transport.Client, error) {
	endpoint := x.Resolve(app)
	if endpoint != "" {
		if err := validateEndpointURL(endpoint); err != nil {
			return nil, err
		}
	}

	timeout := x.proxiedTimeout
	if timeout <= 0 {
		timeout = transport.DefaultProxiedTimeout
	}
	opts = append([]transport.Option{transport.WithProxiedTimeout(timeout)}, opts...)
	return transport.New(endpoint, opts...), nil
}

// Summary returns a loggable description of the resolved endpoint
func (x *Endpoint) Summary(app *AppConfig) any {
	endpoint := x.Resolve(app)
	s := endpointLog{
		Configured: endpoint != "",
		URL:        endpoint,
	}
	if u, err := url.Parse(endpoint); err == nil && endpoint != "" {
		s.Host = u.Host
		s.Kind = transport.Classify(endpoint).String()
	}
	return s
}

func (x Endpoint) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("configured", x.url != ""),
		slog.Int("url.len", len(x.url)),
		slog.String("source", x.source),
		slog.Duration("proxied_timeout", x.proxiedTimeout),
	)
}

func validateEndpointURL(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return goerr.Wrap(ErrInvalidEndpoint, "failed to parse endpoint URL", goerr.V("error", err.Error()))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return goerr.Wrap(ErrInvalidEndpoint, "endpoint URL must be http or https", goerr.V("scheme", u.Scheme))
	}
	if u.Host == "" {
		return goerr.Wrap(ErrInvalidEndpoint, "endpoint URL has no host")
	}
	return nil
}

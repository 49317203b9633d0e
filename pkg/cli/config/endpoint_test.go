package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/offboarding/pkg/cli/config"
	"github.com/secmon-lab/offboarding/pkg/service/transport"
	"github.com/urfave/cli/v3"
)

func resolveWithArgs(t *testing.T, app *config.AppConfig, args ...string) string {
	t.Helper()
	var ep config.Endpoint
	var got string
	cmd := &cli.Command{
		Name:  "test",
		Flags: ep.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			got = ep.Resolve(app)
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...))).Required()
	return got
}

func TestEndpoint_Resolve(t *testing.T) {
	fileCfg := &config.AppConfig{EndpointURL: "https://file.example.com/hook"}

	t.Run("flag wins over config file", func(t *testing.T) {
		got := resolveWithArgs(t, fileCfg, "--endpoint-url", "https://flag.example.com/hook")
		gt.S(t, got).Equal("https://flag.example.com/hook")
	})

	t.Run("environment wins over config file", func(t *testing.T) {
		t.Setenv("OFFBOARDING_SHEETS_WEBAPP_URL", "https://script.google.com/macros/s/abc/exec")
		got := resolveWithArgs(t, fileCfg)
		gt.S(t, got).Equal("https://script.google.com/macros/s/abc/exec")
	})

	t.Run("config file is the fallback", func(t *testing.T) {
		got := resolveWithArgs(t, fileCfg)
		gt.S(t, got).Equal("https://file.example.com/hook")
	})

	t.Run("unset is empty", func(t *testing.T) {
		got := resolveWithArgs(t, nil)
		gt.S(t, got).Equal("")
	})
}

func TestEndpoint_Configure(t *testing.T) {
	t.Run("classifies endpoint", func(t *testing.T) {
		ep := config.NewEndpointForTest("https://script.googleusercontent.com/macros/echo", "", time.Second)
		client, err := ep.Configure(nil)
		gt.NoError(t, err).Required()
		gt.B(t, client.Configured()).True()
		gt.V(t, client.Kind()).Equal(transport.KindProxied)
	})

	t.Run("empty endpoint is allowed", func(t *testing.T) {
		ep := config.NewEndpointForTest("", "", 0)
		client, err := ep.Configure(&config.AppConfig{})
		gt.NoError(t, err).Required()
		gt.B(t, client.Configured()).False()
	})

	t.Run("invalid endpoint is rejected", func(t *testing.T) {
		ep := config.NewEndpointForTest("not a url", "", 0)
		_, err := ep.Configure(nil)
		gt.Error(t, err).Is(config.ErrInvalidEndpoint)
	})

	t.Run("source precedence", func(t *testing.T) {
		app := &config.AppConfig{Source: "from-file"}
		gt.S(t, config.NewEndpointForTest("", "from-flag", 0).Source(app)).Equal("from-flag")
		gt.S(t, config.NewEndpointForTest("", "", 0).Source(app)).Equal("from-file")
	})
}

func TestEndpoint_Summary(t *testing.T) {
	ep := config.NewEndpointForTest("https://hooks.example.com/webhook/secret-token", "", 0)
	s, ok := ep.Summary(nil).(config.EndpointLog)
	gt.B(t, ok).True()
	gt.B(t, s.Configured).True()
	gt.S(t, s.Host).Equal("hooks.example.com")
	gt.S(t, s.Kind).Equal("direct")
}

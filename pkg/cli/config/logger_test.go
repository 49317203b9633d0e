package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/offboarding/pkg/cli/config"
	"github.com/secmon-lab/offboarding/pkg/utils/logging"
)

func TestLogHandler_RedactsSecrets(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			h, err := config.NewLogHandler(&buf, format, slog.LevelInfo)
			gt.NoError(t, err).Required()

			ep := config.NewEndpointForTest("https://hooks.example.com/webhook/secret-token", "", 0)
			slog.New(h).Info("endpoint resolved", "endpoint", ep.Summary(nil))

			gt.S(t, buf.String()).Contains("hooks.example.com")
			gt.B(t, bytes.Contains(buf.Bytes(), []byte("secret-token"))).False()
		})
	}
}

func TestLogHandler_UnknownFormat(t *testing.T) {
	_, err := config.NewLogHandler(&bytes.Buffer{}, "xml", slog.LevelInfo)
	gt.Error(t, err).Is(config.ErrInvalidLogFormat)
}

func TestLogger_Configure(t *testing.T) {
	prev := logging.Default()
	defer logging.SetDefault(prev)

	t.Run("writes JSON to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		closer, err := config.NewLoggerForTest("debug", "json", path).Configure()
		gt.NoError(t, err).Required()

		logging.Default().Debug("hello", "key", "value")
		closer()

		data, err := os.ReadFile(path)
		gt.NoError(t, err).Required()
		gt.S(t, string(data)).Contains(`"msg":"hello"`)
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		_, err := config.NewLoggerForTest("verbose", "json", "stderr").Configure()
		gt.Error(t, err).Is(config.ErrInvalidLogLevel)
	})
}

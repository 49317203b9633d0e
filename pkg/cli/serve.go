package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/secmon-lab/offboarding/pkg/cli/config"
	httpctrl "github.com/secmon-lab/offboarding/pkg/controller/http"
	"github.com/secmon-lab/offboarding/pkg/repository/memory"
	"github.com/secmon-lab/offboarding/pkg/service/report"
	"github.com/secmon-lab/offboarding/pkg/usecase"
	"github.com/secmon-lab/offboarding/pkg/utils/async"
	"github.com/secmon-lab/offboarding/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var shutdownTimeout time.Duration
	var reportTitle string
	var appCfg config.App
	var endpointCfg config.Endpoint

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("OFFBOARDING_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "shutdown-timeout",
			Usage:       "Grace period for in-flight requests on shutdown",
			Value:       10 * time.Second,
			Sources:     cli.EnvVars("OFFBOARDING_SHUTDOWN_TIMEOUT"),
			Destination: &shutdownTimeout,
		},
		&cli.StringFlag{
			Name:        "report-title",
			Usage:       "Title printed on the PDF case report",
			Value:       report.DefaultTitle,
			Sources:     cli.EnvVars("OFFBOARDING_REPORT_TITLE"),
			Destination: &reportTitle,
		},
	}

	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, endpointCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			app, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load configuration", goerr.V("config", appCfg.Path()))
			}

			client, err := endpointCfg.Configure(app)
			if err != nil {
				return goerr.Wrap(err, "failed to configure submission endpoint")
			}
			if !client.Configured() {
				logging.Default().Warn("Submission endpoint not configured, confirmed requests will be rejected")
			}

			repo := memory.New(app.ToSeed())
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			uc := usecase.New(repo,
				usecase.WithTransport(client),
				usecase.WithSource(endpointCfg.Source(app)),
			)

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc, httpctrl.WithReport(report.New(report.WithTitle(reportTitle)))),
				ReadHeaderTimeout: 30 * time.Second,
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			eg, ctx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				logging.Default().Info("Starting HTTP server",
					"addr", addr,
					"config", appCfg,
					"endpoint", endpointCfg.Summary(app),
				)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return goerr.Wrap(err, "failed to start server", goerr.V("addr", addr))
				}
				return nil
			})
			eg.Go(func() error {
				<-ctx.Done()
				logging.Default().Info("Shutting down HTTP server")

				// parent ctx is already cancelled here
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}
				if err := async.Wait(shutdownCtx); err != nil {
					logging.Default().Warn("Abandoning in-flight proxied submissions", "error", err)
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			})

			return eg.Wait()
		},
	}
}

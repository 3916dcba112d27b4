package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/argus-lab/argus/pkg/cli/config"
	controller "github.com/argus-lab/argus/pkg/controller/http"
	"github.com/argus-lab/argus/pkg/domain/interfaces"
	"github.com/argus-lab/argus/pkg/domain/types"
	"github.com/argus-lab/argus/pkg/service/lang"
	"github.com/argus-lab/argus/pkg/service/pdf"
	"github.com/argus-lab/argus/pkg/service/report"
	"github.com/argus-lab/argus/pkg/service/review"
	"github.com/argus-lab/argus/pkg/usecase"
	"github.com/argus-lab/argus/pkg/utils/async"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

const sweepInterval = time.Hour

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		firestoreCfg config.Firestore
		geminiCfg    config.Gemini
		uploadCfg    config.Upload
		reportCfg    config.Report
	)

	flags := joinFlags(
		serverCfg.Flags(),
		firestoreCfg.Flags(),
		geminiCfg.Flags(),
		uploadCfg.Flags(),
		reportCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting argus server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("firestore", firestoreCfg),
				slog.Any("gemini", geminiCfg),
				slog.Any("upload", uploadCfg),
				slog.Any("report", reportCfg),
			)

			// Create repository using config
			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			// Language classifier, with optional extra mappings from file
			var extraLanguages map[string]types.Language
			if uploadCfg.LanguagesFile != "" {
				extraLanguages, err = config.LoadLanguagesFromFile(uploadCfg.LanguagesFile)
				if err != nil {
					return err
				}
			}
			classifier := lang.NewWithTable(extraLanguages)

			// LLM-backed analyzer when Gemini is configured, heuristic engine
			// otherwise. The LLM analyzer itself falls back to the engine on
			// per-request failures.
			engine := review.NewEngine(classifier)
			var analyzer interfaces.CodeAnalyzer = engine
			if llmClient := geminiCfg.ConfigureOptional(ctx, logger); llmClient != nil {
				remote, err := review.NewRemoteAnalyzer(llmClient, engine, classifier)
				if err != nil {
					return goerr.Wrap(err, "failed to create LLM analyzer")
				}
				analyzer = remote
			}

			// PDF renderer, unless disabled
			var renderer *pdf.Renderer
			var rendererIface interfaces.ReportRenderer
			if !reportCfg.Disabled {
				renderer, err = pdf.New(reportCfg.Dir)
				if err != nil {
					return goerr.Wrap(err, "failed to create PDF renderer",
						goerr.V("dir", reportCfg.Dir))
				}
				rendererIface = renderer

				// Periodic sweep of stale PDF files, stopped when the
				// serve context is cancelled
				serveCtx := ctx
				async.Dispatch(ctx, func(bgCtx context.Context) error {
					ticker := time.NewTicker(sweepInterval)
					defer ticker.Stop()
					for {
						select {
						case <-serveCtx.Done():
							return nil
						case <-ticker.C:
							removed, err := renderer.Sweep(bgCtx, reportCfg.Retention)
							if err != nil {
								ctxlog.From(bgCtx).Warn("PDF sweep failed", "error", err)
							} else if removed > 0 {
								ctxlog.From(bgCtx).Info("Swept stale PDF reports", "removed", removed)
							}
						}
					}
				})
			}

			// Create use cases
			reviewUC := usecase.NewReview(
				classifier,
				analyzer,
				report.New(),
				rendererIface,
				repo,
				usecase.WithMaxFileSizeKB(uploadCfg.MaxFileSizeKB),
			)
			historyUC := usecase.NewHistory(repo)

			// Create HTTP server
			server, err := controller.NewServer(
				ctx,
				serverCfg.Addr,
				classifier,
				reviewUC,
				historyUC,
				renderer,
				serverCfg.AllowedOrigins,
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}

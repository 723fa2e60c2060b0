package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tickctl/tickctl/internal/auth"
	"github.com/tickctl/tickctl/internal/instrumentation"
	"github.com/tickctl/tickctl/internal/logging"
	"github.com/tickctl/tickctl/internal/move"
	"github.com/tickctl/tickctl/internal/resolve"
	"github.com/tickctl/tickctl/internal/tags"
	"github.com/tickctl/tickctl/internal/ticktick"
)

var (
	flagVerbose bool
	flagMetrics bool
	flagBaseURL string
)

// rootCmd represents the base command for the tickctl application
var rootCmd = &cobra.Command{
	Use:   "tickctl",
	Short: "Manage tasks and projects on a TickTick-compatible service",
	Long: `tickctl manipulates tasks and task projects on a remote
TickTick-compatible service through its REST API.

Tasks can be addressed by their 24-character hex id or by name; names
are matched case- and punctuation-insensitively. The service has no
native cross-project move, so 'task move' runs a create-then-delete
protocol with consistency verification at each step.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "tickctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagMetrics, "metrics", false, "collect metrics and dump them on exit")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "service base URL (default: $TICKTICK_BASE_URL or "+ticktick.DefaultBaseURL+")")

	rootCmd.AddCommand(newTaskCmd())
	rootCmd.AddCommand(newProjectCmd())
	rootCmd.AddCommand(newAuthCmd())
}

// app bundles the wired-up collaborators a command needs.
type app struct {
	logger     *slog.Logger
	provider   *instrumentation.Provider
	client     *ticktick.Client
	resolver   *resolve.Resolver
	mover      *move.Orchestrator
	reconciler *tags.Reconciler
}

// newApp builds the client stack: credential, wire client, directory,
// resolver, orchestrator, reconciler.
func newApp(ctx context.Context) (*app, error) {
	logger := logging.New(os.Stderr, flagVerbose)

	provider, err := instrumentation.NewProvider(ctx, instrumentation.Config{
		ServiceName:    "tickctl",
		ServiceVersion: version,
		Enabled:        flagMetrics,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize instrumentation: %w", err)
	}

	httpClient, err := auth.HTTPClient(ctx)
	if err != nil {
		return nil, err
	}

	baseURL := flagBaseURL
	if baseURL == "" {
		baseURL = os.Getenv("TICKTICK_BASE_URL")
	}

	client := ticktick.NewClient(baseURL, httpClient,
		ticktick.WithLogger(logger),
		ticktick.WithMetrics(provider.Metrics()),
	)
	dir := resolve.NewDirectory(client, logger)
	resolver := resolve.NewResolver(dir, logger)

	return &app{
		logger:     logger,
		provider:   provider,
		client:     client,
		resolver:   resolver,
		mover:      move.NewOrchestrator(client, dir, logger, provider.Metrics()),
		reconciler: tags.NewReconciler(client, resolver, logger),
	}, nil
}

// close flushes metrics if they were collected.
func (a *app) close(ctx context.Context) {
	if err := a.provider.Shutdown(ctx); err != nil {
		a.logger.Warn("failed to flush metrics", logging.Err(err))
	}
}

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/drivepipe/drivepipe/internal/config"
	"github.com/drivepipe/drivepipe/internal/drive"
	"github.com/drivepipe/drivepipe/internal/google"
	"github.com/drivepipe/drivepipe/internal/instrumentation"
	"github.com/drivepipe/drivepipe/internal/logging"
	"github.com/drivepipe/drivepipe/internal/server"
	"github.com/drivepipe/drivepipe/internal/sheets"
)

// rootCmd represents the base command for the drivepipe application
var rootCmd = &cobra.Command{
	Use:   "drivepipe",
	Short: "Move files and tabular data between local disk and Google Drive",
	Long: `drivepipe is a small utility for working with Google Drive and Google
Sheets from the command line using a service account.

It can list and download Drive files, export Google-native spreadsheets to
xlsx, upload local files, sweep folders empty, and push local CSV or Excel
data into a Google Sheet.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

var (
	flagEnvFile     string
	flagCredentials string
	flagLogLevel    string
	flagLogFormat   string
	flagMetricsAddr string
)

// runtime holds the state shared by all commands after the persistent
// pre-run has executed.
type runtime struct {
	cfg           *config.Config
	logger        *slog.Logger
	provider      *instrumentation.Provider
	metricsServer *server.MetricsServer
}

var rt runtime

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "drivepipe version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", "", "path to a .env file ('.env' by default, missing file is ignored)")
	rootCmd.PersistentFlags().StringVar(&flagCredentials, "credentials", "", "path to the service account JSON key (overrides "+config.EnvCredentials+")")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "log format: text, json")
	rootCmd.PersistentFlags().StringVar(&flagMetricsAddr, "metrics-addr", "", "address for the Prometheus metrics listener (overrides "+config.EnvMetricsAddr+", empty disables it)")

	rootCmd.PersistentPreRunE = setupRuntime
	rootCmd.PersistentPostRunE = teardownRuntime

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newDownloadCmd())
	rootCmd.AddCommand(newUploadCmd())
	rootCmd.AddCommand(newEmptyFolderCmd())
	rootCmd.AddCommand(newPushCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// setupRuntime loads configuration, installs the logger, and brings up
// instrumentation before any command runs.
func setupRuntime(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagEnvFile)
	if err != nil {
		return err
	}
	if flagCredentials != "" {
		cfg.CredentialsPath = flagCredentials
	}
	if flagMetricsAddr != "" {
		cfg.MetricsAddr = flagMetricsAddr
	}
	rt.cfg = cfg

	logger, err := logging.Setup(cmd.ErrOrStderr(), flagLogLevel, flagLogFormat)
	if err != nil {
		return err
	}
	rt.logger = logger

	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(cmd.Context(), instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	rt.provider = provider

	if cfg.MetricsAddr != "" && provider.Enabled() && provider.UsesPrometheus() {
		metricsServer, err := server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    cfg.MetricsAddr,
			InstrumentationProvider: provider,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}

		// Use ready channel to confirm the listener bound successfully
		metricsReady := make(chan struct{})
		metricsErr := make(chan error, 1)
		go func() {
			if err := metricsServer.StartWithReadySignal(metricsReady); err != nil && err != http.ErrServerClosed {
				metricsErr <- err
			}
			close(metricsErr)
		}()

		select {
		case <-metricsReady:
			logger.Info("metrics server started", slog.String("addr", metricsServer.Addr()))
		case err := <-metricsErr:
			return fmt.Errorf("metrics server failed to start: %w", err)
		case <-time.After(5 * time.Second):
			return fmt.Errorf("metrics server startup timed out")
		}
		rt.metricsServer = metricsServer
	}

	return nil
}

// teardownRuntime stops the metrics server and flushes instrumentation.
func teardownRuntime(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if rt.metricsServer != nil {
		if err := rt.metricsServer.Shutdown(ctx); err != nil {
			rt.logger.Warn("error during metrics server shutdown", logging.Err(err))
		}
	}
	if rt.provider != nil {
		if err := rt.provider.Shutdown(ctx); err != nil {
			rt.logger.Warn("error during instrumentation shutdown", logging.Err(err))
		}
	}
	return nil
}

// credentialsProvider builds the provider for the configured key, failing
// early when no key is configured at all.
func credentialsProvider() (google.CredentialsProvider, error) {
	if err := rt.cfg.Validate(); err != nil {
		return nil, err
	}
	provider := google.NewFileCredentialsProvider(rt.cfg.CredentialsPath)
	rt.logger.Debug("using service account key", logging.Path(provider.Path()))
	return provider, nil
}

func newDriveClient(ctx context.Context) (*drive.Client, error) {
	creds, err := credentialsProvider()
	if err != nil {
		return nil, err
	}
	return drive.NewClient(ctx, drive.ClientConfig{
		Credentials: creds,
		Logger:      rt.logger,
		Metrics:     rt.provider.Metrics(),
	})
}

func newSheetsClient(ctx context.Context) (*sheets.Client, error) {
	creds, err := credentialsProvider()
	if err != nil {
		return nil, err
	}
	return sheets.NewClient(ctx, sheets.ClientConfig{
		Credentials: creds,
		Logger:      rt.logger,
		Metrics:     rt.provider.Metrics(),
	})
}

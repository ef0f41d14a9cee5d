package cli

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vietddude/bfhl/internal/control"
	"github.com/vietddude/bfhl/internal/core/config"
)

const defaultConfigPath = "config.yaml"

var (
	cfgPath string
	isDebug bool
)

var rootCmd = &cobra.Command{
	Use:           "bfhl",
	Short:         "BFHL token classification service",
	Long:          `bfhl classifies tokens into odd numbers, even numbers, alphabets and special characters over HTTP and gRPC.`,
	Run:           runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP and gRPC servers",
	Run:   runServe,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath, "config file")
	rootCmd.PersistentFlags().BoolVar(&isDebug, "debug", false, "enable debug logging")
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads .env and the config file. A missing default config file
// falls back to built-in defaults; an explicitly named one must exist.
func loadConfig() (*config.AppConfig, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && cfgPath == defaultConfigPath {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) {
	// Load Configuration
	cfg, err := loadConfig()
	if err != nil {
		setupLogging(config.LoggingConfig{Level: "info", Format: "text"}, isDebug)
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	setupLogging(cfg.Logging, isDebug)

	app, err := control.NewApp(control.ConfigFrom(cfg))
	if err != nil {
		slog.Error("Failed to initialize App", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	if err := app.Start(ctx); err != nil {
		slog.Error("Failed to start App", "error", err)
		os.Exit(1)
	}

	slog.Info("App started", "config", cfgPath)

	sig := <-sigChan
	slog.Info("Received signal, shutting down...", "signal", sig)
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.Stop(shutdownCtx); err != nil {
		slog.Error("Error during shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("App stopped gracefully")
}

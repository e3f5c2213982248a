package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentic-research/faceplate/internal/config"
	"github.com/agentic-research/faceplate/internal/telemetry"
)

// Version is stamped at build time.
var Version = "dev"

var (
	configPath string
	verbose    bool

	cfg     *config.Config
	logger  = slog.Default()
	tracing *telemetry.Tracing
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to faceplate.yaml (default ./faceplate.yaml or ~/.faceplate/faceplate.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

var rootCmd = &cobra.Command{
	Use:           "faceplate",
	Short:         "Faceplate: compile control-surface designs into web UI bundles",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = c

		level := parseLevel(cfg.LogLevel)
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		t, err := telemetry.Setup(cmd.Context())
		if err != nil {
			logger.Warn("tracing disabled", "error", err)
			return nil
		}
		tracing = t
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		err := tracing.Shutdown(cmd.Context())
		tracing = nil
		return err
	},
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

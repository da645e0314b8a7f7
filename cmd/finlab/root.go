package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/finlab/finance-lab/internal/app"
	"github.com/finlab/finance-lab/internal/config"
	"github.com/finlab/finance-lab/internal/domain"
	"github.com/finlab/finance-lab/internal/logging"
)

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	configPath string
	logLevel   string
}

// env is what every command needs once flags are parsed
type env struct {
	cfg     *domain.Configuration
	logger  *zap.Logger
	mounted app.Mounted
}

func rootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Educational finance lab",
		Long: `finlab is an educational finance lab: a compound-interest simulator with
pessimistic, median and optimistic scenarios, a mock market dashboard and a
FAQ chatbot with canned answers.

Serve the lab page with "finlab serve" or use the same features from the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	cmd.AddCommand(
		serveCmd(opts),
		simulateCmd(opts),
		marketsCmd(opts),
		chatCmd(opts),
		versionCmd(),
	)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}

// loadConfig returns the example configuration when no path is given
func loadConfig(path string) (*domain.Configuration, error) {
	parser := config.NewInputParser()
	if path == "" {
		return parser.CreateExampleConfiguration(), nil
	}
	return parser.LoadFromFile(path)
}

// setup loads the configuration, applies flag overrides and builds a logger writing to logs
func (o *globalOptions) setup(logs io.Writer) (*env, error) {
	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if o.logLevel != "" {
		cfg.Logging.Level = strings.ToLower(o.logLevel)
		if err := config.NewInputParser().ValidateConfiguration(cfg); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
	}
	logger, err := logging.New(logs, cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, logger: logger, mounted: app.Mount(app.Components, cfg.Surfaces)}, nil
}

// require reports whether a component is mounted; a skipped component does nothing.
func (rt *env) require(name app.ComponentName) bool {
	if rt.mounted.Enabled(name) {
		return true
	}
	rt.logger.Info("component skipped", zap.String("component", string(name)), zap.Any("missing", rt.mounted.Skipped[name]))
	return false
}

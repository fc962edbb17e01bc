// Package cli implements the spikefactor command line.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okian/spikefactor/internal/adapters/input"
	"github.com/okian/spikefactor/internal/config"
	"github.com/okian/spikefactor/pkg/logger"
	"github.com/okian/spikefactor/pkg/metrics"
)

// state is shared by the subcommands of one root command.
type state struct {
	cfg *config.Config
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	st := &state{}

	root := &cobra.Command{
		Use:           "spikefactor",
		Short:         "Score personality assessments and build reports",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return st.setup(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "YAML config file (overrides "+config.EnvFile+")")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().String("log-format", "", "log format: text or json")

	root.AddCommand(newQuestionsCmd(st))
	root.AddCommand(newScoreCmd(st))
	root.AddCommand(newBatchCmd(st))
	return root
}

// Execute runs the command line with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// setup loads configuration, applies flag overrides and initializes logging
// and metrics.
func (st *state) setup(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv(config.EnvFile)
	}
	cfg, err := config.LoadFile(ctx, path)
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		cfg.LogFormat = v
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.InitWithOptions(
		logger.WithWriter(cmd.ErrOrStderr()),
		logger.WithJSON(strings.EqualFold(cfg.LogFormat, config.LogFormatJSON)),
	); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		return err
	}
	metrics.Init(metrics.WithNamespace(cfg.MetricsNamespace))

	st.cfg = cfg
	logger.Get().Debug(ctx, "configuration loaded",
		logger.String("config", path),
		logger.Int("workers", cfg.WorkerCount),
		logger.Int("queue_size", cfg.QueueSize),
	)
	return nil
}

// openInput opens path for reading; "-" reads from the command's stdin.
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", input.ErrInvalidInput, err)
	}
	return f, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

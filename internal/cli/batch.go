package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/spikefactor/internal/adapters/input"
	"github.com/okian/spikefactor/internal/adapters/repository"
	service "github.com/okian/spikefactor/internal/app"
	"github.com/okian/spikefactor/internal/domain/model"
	"github.com/okian/spikefactor/pkg/logger"
	"github.com/okian/spikefactor/pkg/metrics"
)

const drainTimeout = 30 * time.Second

type batchOutput struct {
	Reports    []repository.Entry `json:"reports"`
	Failures   map[string]string  `json:"failures"`
	Duplicates []string           `json:"duplicates"`
}

func newBatchCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate reports for a file of completed attempts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("file")
			metricsOut, _ := cmd.Flags().GetString("metrics-out")

			rc, err := openInput(cmd, path)
			if err != nil {
				return err
			}
			defer rc.Close()
			attempts, err := input.DecodeAttempts(rc)
			if err != nil {
				return err
			}

			out, err := runBatch(cmd.Context(), st, attempts)
			if err != nil {
				return err
			}
			if metricsOut != "" {
				if err := writeMetrics(metricsOut); err != nil {
					return err
				}
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().String("file", "-", "attempts JSON file, - for stdin")
	cmd.Flags().String("metrics-out", "", "write Prometheus text metrics to this file after the run")
	return cmd
}

func runBatch(ctx context.Context, st *state, attempts []model.Attempt) (batchOutput, error) {
	svc := service.New(
		service.WithWorkerCount(st.cfg.WorkerCount),
		service.WithQueueSize(st.cfg.QueueSize),
		service.WithDedupeSize(st.cfg.DedupeSize),
		service.WithReportStoreSize(st.cfg.ReportStoreSize),
	)
	if err := svc.Start(ctx); err != nil {
		return batchOutput{}, err
	}

	out := batchOutput{Failures: map[string]string{}, Duplicates: []string{}}
	for _, a := range attempts {
		err := svc.Submit(ctx, a)
		switch {
		case err == nil:
		case errors.Is(err, service.ErrDuplicateAttempt):
			out.Duplicates = append(out.Duplicates, a.ID)
		default:
			out.Failures[a.ID] = err.Error()
		}
	}

	drainCtx, cancel := context.WithTimeout(ctx, drainTimeout)
	defer cancel()
	if err := svc.Drain(drainCtx); err != nil {
		return batchOutput{}, fmt.Errorf("drain: %w", err)
	}

	for id, err := range svc.Failures() {
		out.Failures[id] = err.Error()
	}
	out.Reports = svc.Reports(ctx)
	logger.Get().Info(ctx, "batch finished",
		logger.Int("attempts", len(attempts)),
		logger.Int("reports", len(out.Reports)),
		logger.Int("failures", len(out.Failures)),
		logger.Int("duplicates", len(out.Duplicates)),
	)
	return out, nil
}

func writeMetrics(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create metrics file: %w", err)
	}
	if err := metrics.WriteText(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

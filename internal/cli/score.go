package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/spikefactor/internal/adapters/input"
	service "github.com/okian/spikefactor/internal/app"
	"github.com/okian/spikefactor/internal/domain/assessment"
)

func newScoreCmd(_ *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score one answer set and print its report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tag, _ := cmd.Flags().GetString("product")
			path, _ := cmd.Flags().GetString("file")
			at, _ := cmd.Flags().GetString("at")

			pipeline, err := assessment.ForTag(tag)
			if err != nil {
				return err
			}

			opts := []service.Option{}
			if at != "" {
				ts, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("%w: --at: %v", input.ErrInvalidInput, err)
				}
				opts = append(opts, service.WithClock(func() time.Time { return ts }))
			}

			rc, err := openInput(cmd, path)
			if err != nil {
				return err
			}
			defer rc.Close()
			answers, err := input.DecodeAnswers(rc)
			if err != nil {
				return err
			}

			svc := service.New(opts...)
			r, err := svc.Generate(cmd.Context(), pipeline.Product(), answers)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), r)
		},
	}
	cmd.Flags().String("product", "", "product tag: simple or premium")
	cmd.Flags().String("file", "-", "answers JSON file, - for stdin")
	cmd.Flags().String("at", "", "report timestamp (RFC3339), defaults to now")
	_ = cmd.MarkFlagRequired("product")
	return cmd
}

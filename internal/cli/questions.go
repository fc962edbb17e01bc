package cli

import (
	"github.com/spf13/cobra"

	"github.com/okian/spikefactor/internal/domain/catalog"
	"github.com/okian/spikefactor/internal/domain/types"
)

type questionsOutput struct {
	Product    types.Product      `json:"product"`
	ScaleMin   int                `json:"scale_min"`
	ScaleMax   int                `json:"scale_max"`
	Questions  []catalog.Question `json:"questions"`
	Categories []catalog.Category `json:"categories,omitempty"`
}

func newQuestionsCmd(_ *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Print the question catalog of a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tag, _ := cmd.Flags().GetString("product")
			product, err := types.ParseProduct(tag)
			if err != nil {
				return err
			}
			questions, err := catalog.QuestionsFor(product)
			if err != nil {
				return err
			}
			categories, err := catalog.Categories(product)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), questionsOutput{
				Product:    product,
				ScaleMin:   catalog.ScaleMin,
				ScaleMax:   catalog.ScaleMax,
				Questions:  questions,
				Categories: categories,
			})
		},
	}
	cmd.Flags().String("product", string(types.ProductSimple), "product tag: simple or premium")
	return cmd
}

// Package assessment selects the scoring pipeline of a product and runs it
// end to end: catalog, normalizer, scorer, insights, recommendations, report.
package assessment

import (
	"fmt"
	"time"

	"github.com/okian/spikefactor/internal/domain/catalog"
	"github.com/okian/spikefactor/internal/domain/insight"
	"github.com/okian/spikefactor/internal/domain/model"
	"github.com/okian/spikefactor/internal/domain/recommend"
	"github.com/okian/spikefactor/internal/domain/report"
	"github.com/okian/spikefactor/internal/domain/scoring"
	"github.com/okian/spikefactor/internal/domain/types"
)

// Outcome is a generated report plus bookkeeping about the answer set.
type Outcome struct {
	Report      report.Report
	Answered    int // effective answers after resolution
	Overwritten int // answers discarded as resubmissions
}

// Pipeline turns one product's answers into a report. Implementations are
// stateless and safe for concurrent use.
type Pipeline interface {
	Product() types.Product
	Run(answers []model.Answer, at time.Time) (Outcome, error)
}

type simplePipeline struct{}

func (simplePipeline) Product() types.Product { return types.ProductSimple }

func (simplePipeline) Run(answers []model.Answer, at time.Time) (Outcome, error) {
	res, err := scoring.SpikeFactor(answers)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{
		Report:   report.ComposeSimple(res, answers, at),
		Answered: len(answers),
	}, nil
}

type premiumPipeline struct{}

func (premiumPipeline) Product() types.Product { return types.ProductPremium }

func (premiumPipeline) Run(answers []model.Answer, at time.Time) (Outcome, error) {
	resolved, overwritten := scoring.Resolve(answers)
	scores, err := scoring.ScoreResolved(resolved)
	if err != nil {
		return Outcome{}, err
	}
	bundle, err := insight.Premium(scores)
	if err != nil {
		return Outcome{}, err
	}
	rep, err := report.ComposePremium(scores, bundle, recommend.For(scores), resolved, at)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Report: rep, Answered: len(resolved), Overwritten: overwritten}, nil
}

var pipelines = map[types.Product]Pipeline{
	types.ProductSimple:  simplePipeline{},
	types.ProductPremium: premiumPipeline{},
}

// For returns the pipeline of product or an error wrapping
// catalog.ErrUnknownProduct.
func For(product types.Product) (Pipeline, error) {
	p, ok := pipelines[product]
	if !ok {
		return nil, fmt.Errorf("%w: %q", catalog.ErrUnknownProduct, string(product))
	}
	return p, nil
}

// ForTag is For over a user-supplied product tag.
func ForTag(tag string) (Pipeline, error) {
	product, err := types.ParseProduct(tag)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", catalog.ErrUnknownProduct, err)
	}
	return For(product)
}

// Generate runs the pipeline of product over answers.
func Generate(product types.Product, answers []model.Answer, at time.Time) (Outcome, error) {
	p, err := For(product)
	if err != nil {
		return Outcome{}, err
	}
	return p.Run(answers, at)
}

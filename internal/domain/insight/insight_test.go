package insight_test

import (
	"errors"
	"testing"

	"github.com/okian/spikefactor/internal/domain/catalog"
	"github.com/okian/spikefactor/internal/domain/insight"
	"github.com/okian/spikefactor/internal/domain/model"
	"github.com/okian/spikefactor/internal/domain/scoring"
	"github.com/okian/spikefactor/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func score(category string, pct float64) model.CategoryScore {
	return model.CategoryScore{Category: category, Percentage: pct, AnsweredCount: 1, MaxPossible: 5}
}

func allAt(pct float64) []model.CategoryScore {
	cats, _ := catalog.Categories(types.ProductPremium)
	out := make([]model.CategoryScore, len(cats))
	for i, c := range cats {
		out[i] = score(c.ID, pct)
	}
	return out
}

func categoriesOf(hs []insight.Highlight) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.Category
	}
	return out
}

func TestForTier(t *testing.T) {
	Convey("Given the simple tiers", t, func() {
		Convey("When looking up the high tier", func() {
			p := insight.ForTier(scoring.TierHigh)

			Convey("Then the fixed narrative should be returned", func() {
				So(p.Strengths, ShouldResemble, []string{
					"Strong leadership potential",
					"High energy and motivation",
					"Excellent at handling challenges",
				})
				So(len(p.GrowthAreas), ShouldEqual, 2)
				So(p.Recommendations[0], ShouldEqual, "Seek leadership roles")
			})
		})

		Convey("When looking up the developing tier", func() {
			p := insight.ForTier(scoring.TierDeveloping)

			Convey("Then it should carry three growth areas", func() {
				So(p.GrowthAreas, ShouldResemble, []string{
					"Build confidence in abilities",
					"Practice assertiveness",
					"Embrace calculated risks",
				})
			})
		})

		Convey("When a returned profile is modified", func() {
			p := insight.ForTier(scoring.TierModerate)
			p.Strengths[0] = "changed"

			Convey("Then the shared table should be unaffected", func() {
				So(insight.ForTier(scoring.TierModerate).Strengths[0], ShouldEqual, "Balanced approach to challenges")
			})
		})
	})
}

func TestPremium(t *testing.T) {
	Convey("Given premium category scores", t, func() {
		Convey("When all ten categories score 70.0", func() {
			b, err := insight.Premium(allAt(70.0))

			Convey("Then the first three in catalog order should be strengths", func() {
				So(err, ShouldBeNil)
				So(categoriesOf(b.Strengths), ShouldResemble, []string{
					catalog.CategoryOpenness,
					catalog.CategoryConscientiousness,
					catalog.CategoryExtraversion,
				})
				So(b.GrowthAreas, ShouldBeEmpty)
				So(b.OverallScore, ShouldEqual, 70.0)
			})

			Convey("And strength text should use the category name and description", func() {
				So(b.Strengths[0].Text, ShouldEqual,
					"Strong Openness to Experience - Reflects curiosity, creativity, and willingness to try new experiences.")
			})
		})

		Convey("When scores spread across the bands", func() {
			scores := []model.CategoryScore{
				score(catalog.CategoryOpenness, 90),
				score(catalog.CategoryConscientiousness, 30),
				score(catalog.CategoryExtraversion, 60),
				score(catalog.CategoryAgreeableness, 66),
				score(catalog.CategoryNeuroticism, 45),
				score(catalog.CategoryLeadership, 64.9),
				score(catalog.CategoryResilience, 50),
			}
			b, err := insight.Premium(scores)

			Convey("Then only qualifying candidates should be kept, in ranked order", func() {
				So(err, ShouldBeNil)
				So(categoriesOf(b.Strengths), ShouldResemble, []string{
					catalog.CategoryOpenness,
					catalog.CategoryAgreeableness,
				})
				So(categoriesOf(b.GrowthAreas), ShouldResemble, []string{
					catalog.CategoryNeuroticism,
					catalog.CategoryConscientiousness,
				})
				So(b.GrowthAreas[1].Text, ShouldEqual,
					"Conscientiousness development - Measures organization, discipline, and goal-oriented behavior.")
			})

			Convey("And the overall score should average every present category", func() {
				// (90+30+60+66+45+64.9+50)/7 = 57.985...
				So(b.OverallScore, ShouldEqual, 58.0)
			})
		})

		Convey("When scores arrive out of catalog order", func() {
			b, err := insight.Premium([]model.CategoryScore{
				score(catalog.CategoryConscientiousness, 33.3),
				score(catalog.CategoryOpenness, 20.0),
			})

			Convey("Then the overall score should round the mean of the stored values", func() {
				So(err, ShouldBeNil)
				So(b.OverallScore, ShouldEqual, 26.6)
			})
		})

		Convey("When fewer than six categories are present", func() {
			b, err := insight.Premium([]model.CategoryScore{
				score(catalog.CategoryLeadership, 40),
				score(catalog.CategoryOpenness, 80),
			})

			Convey("Then each category should land in at most one list", func() {
				So(err, ShouldBeNil)
				So(categoriesOf(b.Strengths), ShouldResemble, []string{catalog.CategoryOpenness})
				So(categoriesOf(b.GrowthAreas), ShouldResemble, []string{catalog.CategoryLeadership})
			})
		})

		Convey("When a single low category is present", func() {
			b, err := insight.Premium([]model.CategoryScore{score(catalog.CategoryInnovation, 20)})

			Convey("Then it should be a growth area only", func() {
				So(err, ShouldBeNil)
				So(b.Strengths, ShouldBeEmpty)
				So(len(b.GrowthAreas), ShouldEqual, 1)
				So(b.OverallScore, ShouldEqual, 20.0)
			})
		})

		Convey("When any mix of scores is generated", func() {
			values := []float64{10, 35, 49.9, 50, 64.9, 65, 70, 80, 100}
			Convey("Then strengths and growth areas should stay disjoint", func() {
				cats, _ := catalog.Categories(types.ProductPremium)
				for n := 1; n <= len(cats); n++ {
					for off := range values {
						scores := make([]model.CategoryScore, n)
						for i := 0; i < n; i++ {
							scores[i] = score(cats[i].ID, values[(i+off)%len(values)])
						}
						b, err := insight.Premium(scores)
						So(err, ShouldBeNil)
						seen := map[string]bool{}
						for _, h := range b.Strengths {
							seen[h.Category] = true
						}
						for _, h := range b.GrowthAreas {
							So(seen[h.Category], ShouldBeFalse)
						}
						So(len(b.Strengths), ShouldBeLessThanOrEqualTo, insight.MaxStrengths)
						So(len(b.GrowthAreas), ShouldBeLessThanOrEqualTo, insight.MaxGrowthAreas)
					}
				}
			})
		})

		Convey("When no category is present", func() {
			b, err := insight.Premium(nil)

			Convey("Then the bundle should be empty with a zero overall score", func() {
				So(err, ShouldBeNil)
				So(b.OverallScore, ShouldEqual, 0.0)
				So(b.Strengths, ShouldNotBeNil)
				So(b.Strengths, ShouldBeEmpty)
				So(b.GrowthAreas, ShouldBeEmpty)
			})
		})

		Convey("When a score references an unknown category", func() {
			_, err := insight.Premium([]model.CategoryScore{score("charisma", 50)})

			Convey("Then it should fail with ErrUnknownCategory", func() {
				So(errors.Is(err, insight.ErrUnknownCategory), ShouldBeTrue)
			})
		})
	})
}

func TestRank(t *testing.T) {
	Convey("Given tied scores supplied out of catalog order", t, func() {
		ranked, err := insight.Rank([]model.CategoryScore{
			score(catalog.CategoryInnovation, 50),
			score(catalog.CategoryOpenness, 50),
			score(catalog.CategoryLeadership, 75),
		})

		Convey("Then ties should fall back to catalog order", func() {
			So(err, ShouldBeNil)
			So(ranked[0].Category, ShouldEqual, catalog.CategoryLeadership)
			So(ranked[1].Category, ShouldEqual, catalog.CategoryOpenness)
			So(ranked[2].Category, ShouldEqual, catalog.CategoryInnovation)
		})
	})
}

package scoring_test

import (
	"errors"
	"testing"
	"time"

	"github.com/okian/spikefactor/internal/domain/catalog"
	"github.com/okian/spikefactor/internal/domain/model"
	scoring "github.com/okian/spikefactor/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCategoryScores(t *testing.T) {
	Convey("Given premium answers", t, func() {
		Convey("When a single category has two plain answers", func() {
			// 55 and 56 are leadership questions, not reverse scored
			scores, err := scoring.CategoryScores([]model.Answer{
				{QuestionID: 55, Raw: "4"},
				{QuestionID: 56, Raw: "2"},
			})

			Convey("Then only that category should be scored", func() {
				So(err, ShouldBeNil)
				So(len(scores), ShouldEqual, 1)
				So(scores[0], ShouldResemble, model.CategoryScore{
					Category:      catalog.CategoryLeadership,
					RawScore:      6,
					MaxPossible:   10,
					Percentage:    60.0,
					AnsweredCount: 2,
				})
			})

			Convey("And unanswered categories should be absent, not zero", func() {
				_, ok := scoring.Find(scores, catalog.CategoryOpenness)
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When a reverse-scored item is answered", func() {
			// question 4 (openness) is reverse scored, question 1 is not
			for v := 1; v <= 5; v++ {
				raw := string(rune('0' + v))
				rev, err := scoring.CategoryScores([]model.Answer{{QuestionID: 4, Raw: raw}})
				So(err, ShouldBeNil)
				plain, err := scoring.CategoryScores([]model.Answer{{QuestionID: 1, Raw: raw}})
				So(err, ShouldBeNil)

				So(rev[0].RawScore, ShouldEqual, 6-v)
				So(rev[0].RawScore+plain[0].RawScore, ShouldEqual, 6)
			}
		})

		Convey("When answers span several categories", func() {
			scores, err := scoring.CategoryScores([]model.Answer{
				{QuestionID: 84, Raw: "5"}, // innovation
				{QuestionID: 1, Raw: "5"},  // openness
				{QuestionID: 4, Raw: "5"},  // openness, reversed -> 1
				{QuestionID: 37, Raw: "3"}, // neuroticism
			})

			Convey("Then results should follow catalog category order", func() {
				So(err, ShouldBeNil)
				So(len(scores), ShouldEqual, 3)
				So(scores[0].Category, ShouldEqual, catalog.CategoryOpenness)
				So(scores[0].RawScore, ShouldEqual, 6)
				So(scores[0].Percentage, ShouldEqual, 60.0)
				So(scores[1].Category, ShouldEqual, catalog.CategoryNeuroticism)
				So(scores[2].Category, ShouldEqual, catalog.CategoryInnovation)
				So(scores[2].Percentage, ShouldEqual, 100.0)
			})
		})

		Convey("When a category percentage is not a whole number", func() {
			scores, err := scoring.CategoryScores([]model.Answer{
				{QuestionID: 79, Raw: "4"},
				{QuestionID: 80, Raw: "3"},
				{QuestionID: 81, Raw: "3"},
			})

			Convey("Then it should be rounded to one decimal", func() {
				So(err, ShouldBeNil)
				// 10 / 15 = 66.666...
				So(scores[0].Percentage, ShouldEqual, 66.7)
			})
		})

		Convey("When an answer is resubmitted", func() {
			t0 := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
			scores, err := scoring.CategoryScores([]model.Answer{
				{QuestionID: 55, Raw: "1", SubmittedAt: t0},
				{QuestionID: 55, Raw: "5", SubmittedAt: t0.Add(time.Minute)},
			})

			Convey("Then only the latest answer should count", func() {
				So(err, ShouldBeNil)
				So(scores[0].AnsweredCount, ShouldEqual, 1)
				So(scores[0].RawScore, ShouldEqual, 5)
			})
		})

		Convey("When an answer is not a valid Likert value", func() {
			_, err := scoring.CategoryScores([]model.Answer{{QuestionID: 10, Raw: "agree"}})

			Convey("Then it should fail with ErrInvalidAnswer", func() {
				So(errors.Is(err, scoring.ErrInvalidAnswer), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "question 10")
			})
		})

		Convey("When an answer references an unknown question", func() {
			_, err := scoring.CategoryScores([]model.Answer{{QuestionID: 85, Raw: "3"}})

			Convey("Then it should fail with ErrInvalidAnswer", func() {
				So(errors.Is(err, scoring.ErrInvalidAnswer), ShouldBeTrue)
			})
		})

		Convey("When there are no answers", func() {
			scores, err := scoring.CategoryScores(nil)

			Convey("Then the result should be empty without error", func() {
				So(err, ShouldBeNil)
				So(scores, ShouldBeEmpty)
			})
		})
	})
}

package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/okian/spikefactor/internal/adapters/repository"
	service "github.com/okian/spikefactor/internal/app"
	"github.com/okian/spikefactor/internal/domain/catalog"
	"github.com/okian/spikefactor/internal/domain/model"
	"github.com/okian/spikefactor/internal/domain/scoring"
	"github.com/okian/spikefactor/internal/domain/types"
	"github.com/okian/spikefactor/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

var fixed = time.Date(2025, 5, 4, 3, 2, 1, 0, time.UTC)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func answersFor(product types.Product, raw string) []model.Answer {
	qs, _ := catalog.QuestionsFor(product)
	out := make([]model.Answer, len(qs))
	for i, q := range qs {
		out[i] = model.Answer{QuestionID: q.ID, Raw: raw, SubmittedAt: fixed}
	}
	return out
}

func newService(opts ...service.Option) *service.Service {
	base := []service.Option{
		service.WithClock(func() time.Time { return fixed }),
		service.WithWorkerCount(2),
		service.WithQueueSize(100),
	}
	return service.New(append(base, opts...)...)
}

func TestService_Generate(t *testing.T) {
	Convey("Given a service", t, func() {
		ctx := context.Background()
		svc := newService()

		Convey("When generating a simple report", func() {
			r, err := svc.Generate(ctx, types.ProductSimple, answersFor(types.ProductSimple, "strongly agree"))

			Convey("Then the report should carry the injected timestamp", func() {
				So(err, ShouldBeNil)
				So(r.Score, ShouldEqual, 100.0)
				So(r.Tier, ShouldEqual, scoring.TierHigh)
				So(r.GeneratedAt, ShouldEqual, fixed)
			})
		})

		Convey("When the product is unknown", func() {
			_, err := svc.Generate(ctx, types.Product("gold"), nil)

			Convey("Then ErrUnknownProduct should surface", func() {
				So(errors.Is(err, catalog.ErrUnknownProduct), ShouldBeTrue)
			})
		})

		Convey("When a premium answer is malformed", func() {
			_, err := svc.Generate(ctx, types.ProductPremium, []model.Answer{{QuestionID: 3, Raw: "7"}})

			Convey("Then ErrInvalidAnswer should surface", func() {
				So(errors.Is(err, scoring.ErrInvalidAnswer), ShouldBeTrue)
			})
		})
	})
}

func TestService_Complete(t *testing.T) {
	Convey("Given a service", t, func() {
		ctx := context.Background()
		clock := fixed
		svc := service.New(service.WithClock(func() time.Time { return clock }))
		attempt := model.Attempt{ID: "att-1", Product: types.ProductPremium, Answers: answersFor(types.ProductPremium, "4")}

		Convey("When an attempt is completed twice", func() {
			first, err := svc.Complete(ctx, attempt)
			So(err, ShouldBeNil)
			clock = clock.Add(time.Hour)
			second, err := svc.Complete(ctx, attempt)

			Convey("Then the stored report should be returned unchanged", func() {
				So(err, ShouldBeNil)
				So(second, ShouldResemble, first)
				So(second.GeneratedAt, ShouldEqual, fixed)
				stored, err := svc.Report(ctx, "att-1")
				So(err, ShouldBeNil)
				So(stored.ID, ShouldEqual, first.ID)
			})
		})

		Convey("When the attempt has no id", func() {
			_, err := svc.Complete(ctx, model.Attempt{Product: types.ProductSimple})

			Convey("Then it should fail with ErrInvalidAttempt", func() {
				So(errors.Is(err, service.ErrInvalidAttempt), ShouldBeTrue)
			})
		})

		Convey("When the attempt is incomplete", func() {
			_, err := svc.Complete(ctx, model.Attempt{ID: "att-2", Product: types.ProductSimple})

			Convey("Then nothing should be stored", func() {
				So(errors.Is(err, scoring.ErrIncompleteAssessment), ShouldBeTrue)
				_, getErr := svc.Report(ctx, "att-2")
				So(errors.Is(getErr, repository.ErrNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestService_Lifecycle(t *testing.T) {
	Convey("Given a new service", t, func() {
		ctx := context.Background()
		svc := newService()

		Convey("When submitting before Start", func() {
			err := svc.Submit(ctx, model.Attempt{ID: "x"})

			Convey("Then it should fail with ErrNotStarted", func() {
				So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
			})
		})

		Convey("When started and stopped", func() {
			So(svc.Start(ctx), ShouldBeNil)
			So(svc.Start(ctx), ShouldBeNil)
			So(svc.GetStats()["started"], ShouldEqual, true)
			So(svc.Stop(ctx), ShouldBeNil)

			Convey("Then it should be marked as stopped", func() {
				So(svc.GetStats()["started"], ShouldEqual, false)
				So(svc.Stop(ctx), ShouldBeNil)
			})
		})
	})
}

func TestService_Batch(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		svc := newService(service.WithDedupeSize(100))
		So(svc.Start(ctx), ShouldBeNil)

		Convey("When attempts are submitted and drained", func() {
			for i := 0; i < 10; i++ {
				a := model.Attempt{
					ID:      fmt.Sprintf("att-%d", i),
					Product: types.ProductSimple,
					Answers: answersFor(types.ProductSimple, "neutral"),
				}
				So(svc.Submit(ctx, a), ShouldBeNil)
			}
			dup := svc.Submit(ctx, model.Attempt{ID: "att-3", Product: types.ProductSimple})
			bad := svc.Submit(ctx, model.Attempt{ID: "bad", Product: types.ProductSimple})
			So(svc.Drain(ctx), ShouldBeNil)

			Convey("Then every valid attempt should have a report", func() {
				So(errors.Is(dup, service.ErrDuplicateAttempt), ShouldBeTrue)
				So(bad, ShouldBeNil)
				So(len(svc.Reports(ctx)), ShouldEqual, 10)
				r, err := svc.Report(ctx, "att-3")
				So(err, ShouldBeNil)
				So(r.Score, ShouldEqual, 60.0)
				So(r.Tier, ShouldEqual, scoring.TierModerate)
			})

			Convey("Then the incomplete attempt should be listed as a failure", func() {
				failures := svc.Failures()
				So(len(failures), ShouldEqual, 1)
				So(errors.Is(failures["bad"], scoring.ErrIncompleteAssessment), ShouldBeTrue)
			})

			Convey("Then stats should reflect the run", func() {
				stats := svc.GetStats()
				So(stats["reports"], ShouldEqual, 10)
				So(stats["submitted"], ShouldEqual, 11)
				So(stats["failures"], ShouldEqual, 1)
				So(stats["started"], ShouldEqual, false)
			})
		})
	})
}

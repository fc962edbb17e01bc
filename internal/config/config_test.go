package config_test

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/okian/spikefactor/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	convey.Convey("Given default configuration", t, func() {
		cfg := config.New(context.Background())

		convey.Convey("Then defaults should be set and valid", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.LogFormat, convey.ShouldEqual, config.LogFormatText)
			convey.So(cfg.QueueSize, convey.ShouldEqual, 1024)
			convey.So(cfg.WorkerCount, convey.ShouldEqual, runtime.NumCPU())
			convey.So(cfg.DedupeSize, convey.ShouldEqual, 10_000)
			convey.So(cfg.ReportStoreSize, convey.ShouldEqual, 0)
			convey.So(cfg.MetricsNamespace, convey.ShouldEqual, "spikefactor")
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestValidate(t *testing.T) {
	convey.Convey("Given invalid configurations", t, func() {
		mutations := map[string]func(*config.Config){
			"zero queue":      func(c *config.Config) { c.QueueSize = 0 },
			"negative worker": func(c *config.Config) { c.WorkerCount = -1 },
			"empty namespace": func(c *config.Config) { c.MetricsNamespace = "" },
			"bad format":      func(c *config.Config) { c.LogFormat = "xml" },
			"bad level":       func(c *config.Config) { c.LogLevel = "verbose" },
		}

		convey.Convey("Then each should fail with ErrInvalidConfig", func() {
			for name, mutate := range mutations {
				cfg := config.New(context.Background())
				mutate(cfg)
				err := cfg.Validate()
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(name, convey.ShouldNotBeBlank)
			}
		})
	})
}

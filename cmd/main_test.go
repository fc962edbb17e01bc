package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/spikefactor/internal/cli"
	"github.com/okian/spikefactor/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When configuration comes from the environment", func() {
			_ = os.Setenv("SPIKE_QUEUE_SIZE", "64")
			_ = os.Setenv("SPIKE_WORKER_COUNT", "2")
			defer func() {
				_ = os.Unsetenv("SPIKE_QUEUE_SIZE")
				_ = os.Unsetenv("SPIKE_WORKER_COUNT")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.QueueSize, convey.ShouldEqual, 64)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 2)
			})
		})

		convey.Convey("When the config file named by the environment is invalid", func() {
			path := filepath.Join(t.TempDir(), "config.yaml")
			convey.So(os.WriteFile(path, []byte("worker_count: 0\n"), 0o600), convey.ShouldBeNil)
			_ = os.Setenv(config.EnvFile, path)
			defer func() { _ = os.Unsetenv(config.EnvFile) }()

			convey.Convey("Then the command line should refuse to run", func() {
				var out bytes.Buffer
				root := cli.NewRootCmd()
				root.SetOut(&out)
				root.SetErr(&out)
				root.SetArgs([]string{"questions"})
				err := root.ExecuteContext(context.Background())
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "worker_count")
			})
		})

		convey.Convey("When the command line runs with defaults", func() {
			var out bytes.Buffer
			root := cli.NewRootCmd()
			root.SetOut(&out)
			root.SetErr(&out)
			root.SetArgs([]string{"questions", "--product", "simple"})

			convey.Convey("Then it should print the catalog", func() {
				convey.So(root.ExecuteContext(context.Background()), convey.ShouldBeNil)
				convey.So(out.String(), convey.ShouldContainSubstring, `"questions"`)
			})
		})
	})
}

package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/ipldash/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.SeasonSource, convey.ShouldEqual, "field")
				convey.So(cfg.DefaultTopN, convey.ShouldEqual, 10)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("IPLDASH_ADDR", ":8080")
			_ = os.Setenv("IPLDASH_MATCHES_PATH", "/srv/ipl/matches.csv")
			_ = os.Setenv("IPLDASH_SEASON_SOURCE", "date")
			_ = os.Setenv("IPLDASH_MAX_TOP_N", "25")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.MatchesPath, convey.ShouldEqual, "/srv/ipl/matches.csv")
				convey.So(cfg.SeasonSource, convey.ShouldEqual, "date")
				convey.So(cfg.MaxTopN, convey.ShouldEqual, 25)
				convey.So(cfg.DeliveriesPath, convey.ShouldEqual, "data/deliveries.csv")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			tmpFile := createTempFile(t, "ipldash-*.yaml", `
addr: ":9090"
matches_path: "fixtures/m.csv"
deliveries_path: "fixtures/d.csv"
min_top_n: 3
default_top_n: 4
`)
			_ = os.Setenv("IPLDASH_CONFIG", tmpFile)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file and keep other defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.MatchesPath, convey.ShouldEqual, "fixtures/m.csv")
				convey.So(cfg.DeliveriesPath, convey.ShouldEqual, "fixtures/d.csv")
				convey.So(cfg.MinTopN, convey.ShouldEqual, 3)
				convey.So(cfg.DefaultTopN, convey.ShouldEqual, 4)
				convey.So(cfg.MaxTopN, convey.ShouldEqual, 20)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			tmpFile := createTempFile(t, "ipldash-*.yaml", `
addr: ":9090"
log_level: debug
`)
			_ = os.Setenv("IPLDASH_CONFIG", tmpFile)
			_ = os.Setenv("IPLDASH_ADDR", ":8080")

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
			})
		})

		convey.Convey("When loading config with a dotenv file", func() {
			envFile := createTempFile(t, "ipldash-*.env", "IPLDASH_DELIVERIES_PATH=/data/balls.csv\nIPLDASH_LOG_FORMAT=json\n")
			_ = os.Setenv("IPLDASH_ENV_FILE", envFile)
			_ = os.Setenv("IPLDASH_LOG_FORMAT", "text")

			cfg, err := config.Load(ctx)

			convey.Convey("Then dotenv values apply but real env wins", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.DeliveriesPath, convey.ShouldEqual, "/data/balls.csv")
				convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempFile(t, "ipldash-*.yaml", `invalid: yaml: content: [`)
			_ = os.Setenv("IPLDASH_CONFIG", tmpFile)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent files", func() {
			_ = os.Setenv("IPLDASH_CONFIG", "/non/existent/file.yaml")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with a missing dotenv file", func() {
			_ = os.Setenv("IPLDASH_ENV_FILE", "/non/existent/.env")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("IPLDASH_ADDR", "")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("IPLDASH_MAX_TOP_N", "not_a_number")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"IPLDASH_CONFIG",
		"IPLDASH_ENV_FILE",
		"IPLDASH_ADDR",
		"IPLDASH_LOG_LEVEL",
		"IPLDASH_LOG_FORMAT",
		"IPLDASH_MATCHES_PATH",
		"IPLDASH_DELIVERIES_PATH",
		"IPLDASH_SEASON_SOURCE",
		"IPLDASH_DEFAULT_TOP_N",
		"IPLDASH_MIN_TOP_N",
		"IPLDASH_MAX_TOP_N",
		"IPLDASH_MAX_LEADERBOARD_LIMIT",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempFile(t *testing.T, pattern, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp(t.TempDir(), pattern)
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	if _, err := tmpFile.WriteString(content); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	if err := tmpFile.Close(); err != nil {
		t.Fatalf("close temp file: %v", err)
	}
	return tmpFile.Name()
}

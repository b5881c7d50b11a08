package config_test

import (
	"errors"
	"testing"

	"github.com/okian/ipldash/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.MatchesPath, convey.ShouldEqual, "data/matches.csv")
			convey.So(cfg.DeliveriesPath, convey.ShouldEqual, "data/deliveries.csv")
			convey.So(cfg.SeasonSource, convey.ShouldEqual, config.SeasonFromField)
			convey.So(cfg.DefaultTopN, convey.ShouldEqual, 10)
			convey.So(cfg.MinTopN, convey.ShouldEqual, 5)
			convey.So(cfg.MaxTopN, convey.ShouldEqual, 20)
			convey.So(cfg.MaxLeaderboardLimit, convey.ShouldEqual, 100)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given invalid configurations", t, func() {
		cases := []struct {
			name   string
			mutate func(c *config.Config)
		}{
			{"empty addr", func(c *config.Config) { c.Addr = " " }},
			{"empty matches path", func(c *config.Config) { c.MatchesPath = "" }},
			{"empty deliveries path", func(c *config.Config) { c.DeliveriesPath = "" }},
			{"unknown season source", func(c *config.Config) { c.SeasonSource = "calendar" }},
			{"min above max", func(c *config.Config) { c.MinTopN = 30 }},
			{"zero min", func(c *config.Config) { c.MinTopN = 0 }},
			{"default out of range", func(c *config.Config) { c.DefaultTopN = 50 }},
			{"zero limit", func(c *config.Config) { c.MaxLeaderboardLimit = 0 }},
		}

		for _, tc := range cases {
			cfg := config.New()
			tc.mutate(cfg)

			convey.Convey("Then "+tc.name+" should be rejected as invalid config", func() {
				err := cfg.Validate()
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		}
	})
}

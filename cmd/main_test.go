package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/okian/ipldash/internal/adapters/http/api"
	"github.com/okian/ipldash/internal/config"
	"github.com/okian/ipldash/internal/sample"
	"github.com/okian/ipldash/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(logger.WithOutput(io.Discard)); err != nil {
		panic(err)
	}
}

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			t.Setenv("IPLDASH_ADDR", ":8080")
			t.Setenv("IPLDASH_SEASON_SOURCE", "date")

			convey.Convey("Then configuration should be loadable", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.SeasonSource, convey.ShouldEqual, "date")

				svc, err := newService(cfg, logger.Get())
				convey.So(err, convey.ShouldBeNil)
				convey.So(svc.GetStats()["seasonSource"], convey.ShouldEqual, "date")
			})
		})

		convey.Convey("When the season source is invalid", func() {
			cfg := config.New()
			cfg.SeasonSource = "calendar"

			convey.Convey("Then the service should not be built", func() {
				_, err := newService(cfg, logger.Get())
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestMainApplicationIntegration(t *testing.T) {
	convey.Convey("Given the full handler over the tiny fixture", t, func() {
		matches, deliveries := sample.Tiny()
		mp, dp, err := sample.WriteCSV(t.TempDir(), matches, deliveries)
		convey.So(err, convey.ShouldBeNil)

		cfg := config.New()
		cfg.MatchesPath, cfg.DeliveriesPath = mp, dp
		svc, err := newService(cfg, logger.Get())
		convey.So(err, convey.ShouldBeNil)
		convey.So(svc.Start(context.Background()), convey.ShouldBeNil)
		defer svc.Stop()

		h := newHandler(cfg, svc, logger.Get())
		get := func(path string) *httptest.ResponseRecorder {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			return w
		}

		convey.Convey("Then every surface answers", func() {
			for path, status := range map[string]int{
				"/":                      http.StatusOK,
				"/teams":                 http.StatusOK,
				"/players":               http.StatusOK,
				"/venues":                http.StatusOK,
				"/trends":                http.StatusOK,
				"/static/style.css":      http.StatusOK,
				"/healthz":               http.StatusOK,
				"/stats":                 http.StatusOK,
				"/metrics":               http.StatusOK,
				"/api-docs":              http.StatusOK,
				"/openapi.yaml":          http.StatusOK,
				"/api/v1/overview":       http.StatusOK,
				"/api/v1/boards/batters": http.StatusOK,
				"/missing":               http.StatusNotFound,
			} {
				convey.So(get(path).Code, convey.ShouldEqual, status)
			}
		})

		convey.Convey("Then every response carries a request id", func() {
			convey.So(get("/healthz").Header().Get(api.RequestIDHeader), convey.ShouldNotBeEmpty)
		})

		convey.Convey("Then metrics include the dashboard series", func() {
			get("/")
			body := get("/metrics").Body.String()
			convey.So(body, convey.ShouldContainSubstring, "page_renders_total")
		})
	})

	convey.Convey("Given a configuration pointing at missing files", t, func() {
		cfg := config.New()
		cfg.MatchesPath = os.DevNull + ".missing"
		svc, err := newService(cfg, logger.Get())
		convey.So(err, convey.ShouldBeNil)
		convey.So(svc.Start(context.Background()), convey.ShouldNotBeNil)

		h := newHandler(cfg, svc, logger.Get())

		convey.Convey("Then the server still answers with the load error", func() {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			convey.So(w.Code, convey.ShouldEqual, http.StatusServiceUnavailable)

			w = httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			convey.So(w.Code, convey.ShouldEqual, http.StatusServiceUnavailable)
		})
	})
}

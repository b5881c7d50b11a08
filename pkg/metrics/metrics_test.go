package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options on a fresh registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created with dashboard defaults", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "ipldash")
				So(manager.subsystem, ShouldEqual, "dashboard")
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test_ns"),
				WithSubsystem("test_sub"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithConstLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)
			manager.pageRenders.WithLabelValues("home", "ok").Inc()

			Convey("Then metric names should carry the namespace and labels", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				var found bool
				for _, f := range families {
					if f.GetName() == "test_ns_test_sub_page_renders_total" {
						found = true
						So(f.GetMetric()[0].GetLabel()[0].GetName(), ShouldEqual, "env")
					}
				}
				So(found, ShouldBeTrue)
				So(manager.histogramBuckets, ShouldResemble, []float64{0.1, 0.5, 1.0})
			})
		})

		Convey("When ignoring empty option values", func() {
			manager := NewManager(
				WithNamespace(""),
				WithSubsystem(""),
				WithHistogramBuckets(nil),
				WithPrometheusRegistry(prometheus.NewRegistry()),
			)

			Convey("Then defaults should be kept", func() {
				So(manager.namespace, ShouldEqual, "ipldash")
				So(manager.subsystem, ShouldEqual, "dashboard")
				So(len(manager.histogramBuckets), ShouldBeGreaterThan, 0)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording dataset metrics", func() {
			UpdateDatasetRows("matches", 3)
			UpdateDatasetRows("deliveries", 10)
			UpdateOrphanDeliveries(1)
			RecordDatasetLoad(12.5, 1_700_000_000)
			RecordDatasetLoadError("missing_column")

			Convey("Then gauges should hold the recorded values", func() {
				So(testutil.ToFloat64(globalManager.datasetRows.WithLabelValues("matches")), ShouldEqual, 3)
				So(testutil.ToFloat64(globalManager.datasetRows.WithLabelValues("deliveries")), ShouldEqual, 10)
				So(testutil.ToFloat64(globalManager.datasetOrphanDeliveries), ShouldEqual, 1)
				So(testutil.ToFloat64(globalManager.datasetLoadDurationMs), ShouldEqual, 12.5)
				So(testutil.ToFloat64(globalManager.datasetLoadErrors.WithLabelValues("missing_column")), ShouldBeGreaterThanOrEqualTo, 1)
			})
		})

		Convey("When recording presentation metrics", func() {
			before := testutil.ToFloat64(globalManager.chartRenders.WithLabelValues("bar", "empty"))
			RecordChartRender("bar", "empty")
			RecordPageRender("trends", "ok")

			Convey("Then counters should increase", func() {
				So(testutil.ToFloat64(globalManager.chartRenders.WithLabelValues("bar", "empty")), ShouldEqual, before+1)
			})
		})

		Convey("When recording aggregation and HTTP metrics", func() {
			So(func() {
				RecordAggregation("run_scorers", 0.4, 10)
				RecordHTTPRequest("boards", "GET", "200")
				RecordHTTPRequestDuration("boards", "GET", "200", 1.5)
				RecordErrorByType("client_error", "medium")
				RecordErrorByEndpoint("boards", "GET", "client_error")
			}, ShouldNotPanic)
		})
	})
}

func TestRegistryExposition(t *testing.T) {
	Convey("Given the custom registry", t, func() {
		UpdateDatasetRows("matches", 7)

		Convey("Then it should expose dashboard and runtime metrics", func() {
			families, err := GetRegistry().Gather()
			So(err, ShouldBeNil)
			var names []string
			for _, f := range families {
				names = append(names, f.GetName())
			}
			joined := strings.Join(names, ",")
			So(joined, ShouldContainSubstring, "ipldash_dashboard_dataset_rows")
			So(joined, ShouldContainSubstring, "go_goroutines")
		})
	})
}

package stats_test

import (
	"testing"

	"github.com/okian/ipldash/internal/domain/model"
	"github.com/okian/ipldash/internal/domain/stats"
	"github.com/okian/ipldash/internal/sample"
)

func benchmarkDataset(b *testing.B) *model.Dataset {
	b.Helper()
	matches, deliveries := sample.NewGenerator(sample.WithSeasons(2008, 2024), sample.WithMatchesPerSeason(60)).Generate()
	return model.NewDataset(matches, deliveries)
}

func BenchmarkRunScorers(b *testing.B) {
	ds := benchmarkDataset(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = stats.TopN(stats.RunScorers(ds), 10)
	}
}

func BenchmarkWinRates(b *testing.B) {
	ds := benchmarkDataset(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = stats.WinRates(ds)
	}
}

func BenchmarkRunsPerSeason(b *testing.B) {
	ds := benchmarkDataset(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = stats.Chronological(stats.RunsPerSeason(ds))
	}
}

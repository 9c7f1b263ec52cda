package impl

import (
	"io"
	"log/slog"

	"detailers/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Search: &config.SearchConfig{
			DefaultRadiusMiles: 50,
			MaxRadiusMiles:     500,
			DefaultPageSize:    20,
			MaxPageSize:        100,
			CandidateLimit:     1000,
		},
		Dashboard: &config.DashboardConfig{
			MaxLocations:  3,
			MaxMediaBytes: 1 << 20,
		},
	}
}

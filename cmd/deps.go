package cmd

import (
	"time"

	"github.com/cristianoliveira/holiday-explorer/internal/client"
	"github.com/cristianoliveira/holiday-explorer/internal/config"
	"github.com/cristianoliveira/holiday-explorer/internal/logging"
	"github.com/cristianoliveira/holiday-explorer/internal/render"
)

// defaultFetcher builds the HTTP client from the loaded configuration.
func defaultFetcher() client.Fetcher {
	return client.New(
		config.Get("endpoint", config.DefaultEndpoint),
		config.GetSeconds("request_timeout", client.DefaultTimeout),
		client.WithLogger(logging.GetGlobal()),
	)
}

// configuredStagger is the per-card reveal delay.
func configuredStagger() time.Duration {
	return config.GetMillis("stagger_ms", render.DefaultStagger)
}

// defaultCriteria returns the configured preselected country and year.
func defaultCriteria() (country, year string) {
	return config.Get("default_country", "US"), config.Get("default_year", time.Now().Format("2006"))
}

package providers

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/i474232898/weather-dashboard/internal/metrics"
	"github.com/i474232898/weather-dashboard/internal/upstream"
)

const (
	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"
)

func testUpstream(service string) *upstream.Client {
	return upstream.NewClient(
		service,
		&http.Client{Timeout: 5 * time.Second},
		upstream.BreakerConfig{},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics.NewForTesting(),
	)
}

package handler

import (
	"net/http"

	"github.com/daybook/daybook/internal/metrics"
)

// MetricsHandler exposes application counters.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(s metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: s}
}

// Metrics handles GET /metrics with a JSON snapshot of the counters.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.snapshotter.Snapshot())
}

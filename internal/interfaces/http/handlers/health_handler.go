package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/monitoring/prometheus"
)

// Checker probes one dependency. A nil error means healthy.
type Checker func(ctx context.Context) error

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	checkers map[string]Checker
	metrics  *prometheus.AppMetrics
	timeout  time.Duration
}

// NewHealthHandler builds the handler over named dependency checkers.
func NewHealthHandler(checkers map[string]Checker, metrics *prometheus.AppMetrics) *HealthHandler {
	return &HealthHandler{
		checkers: checkers,
		metrics:  metrics,
		timeout:  2 * time.Second,
	}
}

// Liveness handles GET /healthz. It answers OK whenever the process can
// serve requests at all; dependency state is a readiness concern.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz. It probes every registered checker and
// reports 503 when any dependency is down.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	components := make(map[string]string, len(h.checkers))
	ready := true
	for name, check := range h.checkers {
		if err := check(ctx); err != nil {
			components[name] = err.Error()
			ready = false
			h.setGauge(name, 0)
			continue
		}
		components[name] = "ok"
		h.setGauge(name, 1)
	}

	status := http.StatusOK
	state := "ready"
	if !ready {
		status = http.StatusServiceUnavailable
		state = "not ready"
	}
	c.JSON(status, gin.H{"status": state, "components": components})
}

func (h *HealthHandler) setGauge(component string, value float64) {
	if h.metrics == nil {
		return
	}
	h.metrics.HealthCheckStatus.WithLabelValues(component).Set(value)
}

//Personal.AI order the ending

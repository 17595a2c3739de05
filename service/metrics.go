package service

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	recalculationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vznx_progress_recalculations_total",
		Help: "Number of project progress recomputes performed.",
	})
	cascadeDeletesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vznx_cascade_deletes_total",
		Help: "Two-phase deletes performed, labelled by parent entity.",
	}, []string{"entity"})
)

// RegisterMetrics exposes the default prometheus registry.
func RegisterMetrics(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
)

var summarizeRuns = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "summarize_runs_total",
		Help: "Summarize workflow runs by outcome",
	},
	[]string{"outcome"},
)

func init() {
	prometheus.MustRegister(summarizeRuns)
}

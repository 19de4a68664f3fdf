package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	conversionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "outage_conversions_total",
		Help: "Conversion attempts by outcome (success, empty_input, empty_after_filter, error).",
	}, []string{"outcome"})

	recordsConverted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "outage_records_converted_total",
		Help: "Report records written across all successful conversions.",
	})
)

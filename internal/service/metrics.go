package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var salesRecorded = promauto.NewCounter(prometheus.CounterOpts{
	Name: "retail_sales_recorded_total",
	Help: "Total number of recorded sales.",
})

var salesRevenueCents = promauto.NewCounter(prometheus.CounterOpts{
	Name: "retail_sales_revenue_cents_total",
	Help: "Total revenue across recorded sales, in minor currency units.",
})

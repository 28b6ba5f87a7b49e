package application

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	uploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "uploads_total",
		Help: "Upload attempts by result.",
	}, []string{"result"})

	uploadSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "upload_size_bytes",
		Help:    "Size of accepted uploads in bytes.",
		Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
	})
)

package application

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var previewCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "preview_cache_total",
	Help: "Preview cache lookups by result.",
}, []string{"result"})

package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var rerankFallbackTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "recommender_rerank_fallback_total",
	Help: "Rerank calls that fell back to similarity order because the model output could not be parsed.",
})

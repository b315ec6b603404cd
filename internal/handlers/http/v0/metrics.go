package v0

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mapsGeneratedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mapgen_maps_generated_total",
		Help: "Total number of scenario maps generated, by template.",
	}, []string{"template"})

	mapRequestsRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mapgen_map_requests_rejected_total",
		Help: "Total number of map requests that failed, by error code.",
	}, []string{"code"})

	autocompleteRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mapgen_autocomplete_requests_total",
		Help: "Total number of autocomplete lookups, by catalog kind.",
	}, []string{"kind"})
)

// Package metrics defines Prometheus metrics for the route service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lvroute_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lvroute_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	RouteQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lvroute_route_queries_total",
			Help: "Route queries by outcome (reachable, unreachable, error)",
		},
		[]string{"outcome"},
	)

	RouteCoalesced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "lvroute_route_coalesced_total",
			Help: "Route queries answered by an identical in-flight query",
		},
	)

	NetworkNodes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "lvroute_network_nodes",
			Help: "Nodes in the served network",
		},
	)

	NetworkRoads = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "lvroute_network_roads",
			Help: "Roads in the served network",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal,
		RouteQueries, RouteCoalesced,
		NetworkNodes, NetworkRoads,
	)
}

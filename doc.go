// Package lvroute computes shortest routes on weighted, directed road
// networks with Dijkstra's algorithm.
//
// What is inside?
//
//	dijkstra/         — the Engine: integer-indexed graph storage, lazy-heap relaxation
//	                    loop with an injectable ordering strategy, path reconstruction
//	network/          — labelled networks on top of an Engine; YAML and HCL descriptions
//	internal/server/  — HTTP route service (gin, Prometheus metrics)
//	internal/config/  — viper-backed configuration
//	internal/logging/ — logrus setup
//	cmd/lvroute/      — CLI: route, demo, serve, version
//
// Quick ASCII example:
//
//	    [3]──239──▶[5]──322──▶[2]──299──▶[7]
//
// is the cheapest of the Palencia → Barcelona routes of the demo network (860).
//
//	go install github.com/katalvlaran/lvroute/cmd/lvroute@latest
package lvroute

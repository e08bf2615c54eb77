package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/katalvlaran/lvroute/internal/logging"
	"github.com/katalvlaran/lvroute/internal/server"
	"github.com/katalvlaran/lvroute/network"
)

var version = "dev"

// app carries the state shared by all subcommands.
type app struct {
	cfgFile   string
	logLevel  string
	logFormat string

	cfg *config.Config
	log *logrus.Logger
}

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "lvroute",
		Short:         "lvroute — shortest routes on weighted road networks",
		Long:          "Load a directed, weighted road network and query shortest routes with Dijkstra's algorithm.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = a.logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.Log.Format = a.logFormat
			}
			log, err := logging.NewWithOutput(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, log

			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./lvroute.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "log output format (text, json)")

	root.AddCommand(
		routeCmd(a),
		demoCmd(a),
		serveCmd(a),
		versionCmd(),
	)

	return root
}

// loadNetwork builds the network from --graph or graph.path.
func (a *app) loadNetwork(path string) (*network.Network, error) {
	if path == "" {
		path = a.cfg.Graph.Path
	}
	if path == "" {
		return nil, fmt.Errorf("no graph file: use --graph or set graph.path")
	}

	n, err := network.LoadFile(path, a.cfg.Engine.Options(a.log)...)
	if err != nil {
		return nil, err
	}
	a.log.WithFields(logrus.Fields{
		"path":  path,
		"nodes": len(n.Labels()),
		"roads": n.Engine().Graph().EdgeCount(),
	}).Debug("network loaded")

	return n, nil
}

// --- route ---

func routeCmd(a *app) *cobra.Command {
	var graphPath, from, to string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Print the shortest route between two nodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.loadNetwork(graphPath)
			if err != nil {
				return err
			}
			r, err := n.Route(from, to)
			if err != nil {
				return err
			}

			return printRoute(cmd.OutOrStdout(), r, asJSON)
		},
	}

	cmd.Flags().StringVar(&graphPath, "graph", "", "network description (.yaml, .yml or .hcl)")
	cmd.Flags().StringVar(&from, "from", "", "origin node label")
	cmd.Flags().StringVar(&to, "to", "", "destination node label")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the route as JSON")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// --- demo ---

func demoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the eight Spanish cities example (Palencia → Barcelona)",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := network.Spain(a.cfg.Engine.Options(a.log)...)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Each node of the graph is a city:")
			for i, l := range n.Labels() {
				fmt.Fprintf(w, "  %d - %s\n", i, l)
			}
			fmt.Fprintln(w)

			r, err := n.Route(network.Palencia, network.Barcelona)
			if err != nil {
				return err
			}

			return printRoute(w, r, false)
		},
	}
}

// --- serve ---

func serveCmd(a *app) *cobra.Command {
	var graphPath, listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve route queries over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				n   *network.Network
				err error
			)
			if graphPath == "" && a.cfg.Graph.Path == "" {
				a.log.Warn("no graph configured, serving the demo network")
				n, err = network.Spain(a.cfg.Engine.Options(a.log)...)
			} else {
				n, err = a.loadNetwork(graphPath)
			}
			if err != nil {
				return err
			}

			if listen == "" {
				listen = a.cfg.Server.Listen
			}
			srv := server.New(n, a.log, listen, version)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					a.log.WithError(err).Warn("shutdown")
				}
			}()

			return srv.Start()
		},
	}

	cmd.Flags().StringVar(&graphPath, "graph", "", "network description (.yaml, .yml or .hcl)")
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default from config or :8080)")

	return cmd
}

// --- version ---

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lvroute %s\n", version)
		},
	}
}

// routeJSON is the --json form of a route; Distance is null when unreachable.
type routeJSON struct {
	From      string   `json:"from"`
	To        string   `json:"to"`
	Distance  *float64 `json:"distance"`
	Reachable bool     `json:"reachable"`
	Stops     []string `json:"stops"`
}

func printRoute(w io.Writer, r network.Route, asJSON bool) error {
	if asJSON {
		out := routeJSON{From: r.From, To: r.To, Reachable: r.Reachable, Stops: r.Stops}
		if r.Reachable && !math.IsInf(r.Distance, 1) {
			d := r.Distance
			out.Distance = &d
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(out)
	}

	if !r.Reachable {
		_, err := fmt.Fprintf(w, "No route from %s to %s.\n", r.From, r.To)
		return err
	}
	if _, err := fmt.Fprintf(w, "Shortest route cost from %s to %s: %g\n", r.From, r.To, r.Distance); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Route: %s\n", strings.Join(r.Stops, " → "))

	return err
}

// Package server exposes a Network over HTTP: route queries, node listing,
// health and Prometheus metrics.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/lvroute/internal/metrics"
	"github.com/katalvlaran/lvroute/network"
)

// Server is the lvroute HTTP service.
type Server struct {
	net     *network.Network
	log     *logrus.Logger
	version string
	listen  string
	routes  singleflight.Group
	srv     *http.Server
}

// New creates a Server answering queries against n.
func New(n *network.Network, log *logrus.Logger, listen, version string) *Server {
	s := &Server{
		net:     n,
		log:     log,
		version: version,
		listen:  listen,
	}
	s.srv = &http.Server{
		Addr:              listen,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	metrics.NetworkNodes.Set(float64(len(n.Labels())))
	metrics.NetworkRoads.Set(float64(n.Engine().Graph().EdgeCount()))

	return s
}

// Handler returns the gin engine with all middleware and routes.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	setupMiddleware(r, s.log)
	s.registerRoutes(r)

	return r
}

// Start listens until Shutdown is called.
func (s *Server) Start() error {
	s.log.WithFields(logrus.Fields{
		"listen":  s.listen,
		"nodes":   len(s.net.Labels()),
		"version": s.version,
	}).Info("starting server")

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

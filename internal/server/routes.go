package server

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/lvroute/internal/metrics"
	"github.com/katalvlaran/lvroute/network"
)

// Error codes returned in JSON error bodies.
const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeNotFound       = "not_found"
	ErrCodeInternalError  = "internal_error"
)

// routeResponse is the body of GET /api/v1/route.
// Distance is null when the destination cannot be reached.
type routeResponse struct {
	From      string   `json:"from"`
	To        string   `json:"to"`
	Distance  *float64 `json:"distance"`
	Reachable bool     `json:"reachable"`
	Stops     []string `json:"stops"`
}

func (s *Server) registerRoutes(r *gin.Engine) {
	r.GET("/health", s.health)

	api := r.Group("/api/v1")
	api.GET("/nodes", s.nodes)
	api.GET("/route", s.route)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": s.version})
}

func (s *Server) nodes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"nodes": s.net.Labels()})
}

// route handles GET /api/v1/route?from=A&to=B.
func (s *Server) route(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "query parameters from and to are required")

		return
	}

	// Identical in-flight queries share one engine run.
	v, err, shared := s.routes.Do(from+"\x00"+to, func() (interface{}, error) {
		return s.net.Route(from, to)
	})
	if shared {
		metrics.RouteCoalesced.Inc()
	}
	if err != nil {
		metrics.RouteQueries.WithLabelValues("error").Inc()
		if errors.Is(err, network.ErrUnknownLabel) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, err.Error())

			return
		}

		s.log.WithError(err).Error("computing route")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	r := v.(network.Route)
	resp := routeResponse{From: r.From, To: r.To, Reachable: r.Reachable, Stops: r.Stops}
	if r.Reachable && !math.IsInf(r.Distance, 1) {
		d := r.Distance
		resp.Distance = &d
		metrics.RouteQueries.WithLabelValues("reachable").Inc()
	} else {
		metrics.RouteQueries.WithLabelValues("unreachable").Inc()
	}

	c.JSON(http.StatusOK, resp)
}

// respondError writes a standardized JSON error response and aborts the request.
func respondError(c *gin.Context, status int, code, message string) {
	resp := gin.H{
		"code":    code,
		"message": message,
	}
	if rid := c.GetString(requestIDKey); rid != "" {
		resp["request_id"] = rid
	}

	c.AbortWithStatusJSON(status, resp)
}

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"korea-realestate/models"
	"korea-realestate/services"
	"korea-realestate/utils"
)

const requestIDHeader = "X-Request-ID"

// Server exposes the aggregation and calculator operations as JSON routes.
type Server struct {
	agg    *services.Aggregator
	trend  *services.TrendService
	logger *utils.Logger
	engine *gin.Engine
	now    func() time.Time
}

func New(agg *services.Aggregator, trend *services.TrendService, logger *utils.Logger) *Server {
	s := &Server{
		agg:    agg,
		trend:  trend,
		logger: logger,
		engine: gin.New(),
		now:    time.Now,
	}
	s.engine.Use(gin.Recovery(), s.requestLogger())
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.engine
	r.GET("/health", s.health)

	api := r.Group("/api")
	api.GET("/regions", s.getRegions)
	api.GET("/deals", s.getDeals)
	api.GET("/trend", s.getTrend)
	api.GET("/subscriptions", s.getSubscriptions)
	api.GET("/subscriptions/stats/:kind", s.getSubscriptionStats)
	api.GET("/onbid", s.getOnbid)

	calc := api.Group("/calc")
	calc.POST("/loan", s.postLoan)
	calc.POST("/compound", s.postCompound)
	calc.POST("/cashflow", s.postCashflow)
}

// Handler returns the router, e.g. for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("[server] listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("[server] shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// requestLogger tags each request with an id and logs one line when done.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)

		start := time.Now()
		c.Next()

		s.logger.WithFields(map[string]any{
			"request_id": id,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
		}).Info("[server] request")
	}
}

// statusFor maps an error kind to the HTTP status of its envelope.
func statusFor(kind string) int {
	switch kind {
	case models.KindValidation:
		return http.StatusBadRequest
	case models.KindMissingKey:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

func writeError(c *gin.Context, err error) {
	fe := models.AsFetchError(err)
	c.JSON(statusFor(fe.Kind), fe.Envelope())
}

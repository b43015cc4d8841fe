// Package server exposes the generator over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ntauth/orderkey"
	"github.com/ntauth/orderkey/internal/logging"
)

// MaxBatch caps n on /v1/keys.
const MaxBatch = 10000

type Server struct {
	gen    *orderkey.Generator
	logger zerolog.Logger
	engine *gin.Engine
}

// New wires the routes. gen must be safe for concurrent use, i.e. built
// without a RandJitter, unless requests are serialized by the caller.
func New(gen *orderkey.Generator, logger zerolog.Logger) *Server {
	s := &Server{gen: gen, logger: logger, engine: gin.New()}
	s.engine.Use(gin.Recovery(), logging.GinMiddleware(logger))

	s.engine.GET("/healthz", func(c *gin.Context) {
		success(c, gin.H{"alphabet": s.gen.Alphabet().String()})
	})
	v1 := s.engine.Group("/v1/keys")
	v1.GET("", s.keys)
	v1.POST("/validate", s.validate)
	v1.GET("/approx", s.approx)
	return s
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type keysQuery struct {
	A string `form:"a"`
	B string `form:"b"`
	N *uint  `form:"n"`
}

type keysResponse struct {
	Keys []string `json:"keys"`
}

func (s *Server) keys(c *gin.Context) {
	var q keysQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "invalid query: "+err.Error())
		return
	}
	n := uint(1)
	if q.N != nil {
		n = *q.N
	}
	if n > MaxBatch {
		badRequest(c, "n exceeds batch limit")
		return
	}
	keys, err := s.gen.NKeysBetween(q.A, q.B, n)
	if err != nil {
		lg := logging.Ctx(c.Request.Context())
		lg.Debug().Err(err).Str("a", q.A).Str("b", q.B).Msg("key generation rejected")
		failure(c, err)
		return
	}
	success(c, keysResponse{Keys: keys})
}

type validateRequest struct {
	Keys []string `json:"keys" binding:"required"`
}

type validateResult struct {
	Key   string `json:"key"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func (s *Server) validate(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body: "+err.Error())
		return
	}
	results := make([]validateResult, 0, len(req.Keys))
	for _, k := range req.Keys {
		r := validateResult{Key: k, Valid: true}
		if err := s.gen.Validate(k); err != nil {
			r.Valid = false
			r.Error = err.Error()
		}
		results = append(results, r)
	}
	success(c, results)
}

type approxResponse struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

func (s *Server) approx(c *gin.Context) {
	key := c.Query("key")
	v, err := s.gen.Float64Approx(key)
	if err != nil {
		failure(c, err)
		return
	}
	success(c, approxResponse{Key: key, Value: v})
}

// Package server exposes the emotion engine over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/http"
	"time"

	"github.com/julienpequegnot/emolex/internal/config"
	"github.com/julienpequegnot/emolex/internal/emotion"
	"github.com/julienpequegnot/emolex/internal/history"
	"github.com/julienpequegnot/emolex/internal/verse"
)

// Analyzer is the engine surface the handlers need.
type Analyzer interface {
	Analyze(text string) emotion.Verdict
	AnalyzeBatch(texts []string) []emotion.Verdict
	Lexicon() *emotion.Lexicon
}

// Store persists analyses. A nil Store disables history.
type Store interface {
	Add(rec history.Record) (*history.Record, error)
	Journey() ([]history.JourneyEntry, error)
	Progress(now time.Time) (*history.Progress, error)
}

type Options struct {
	Store          Store
	Verses         *verse.Book
	Logger         *slog.Logger
	Version        string
	AllowedOrigins string
	MaxBatch       int
}

type Server struct {
	engine   Analyzer
	store    Store
	verses   *verse.Book
	logger   *slog.Logger
	version  string
	origins  string
	maxBatch int

	now  func() time.Time
	pick func(n int) int
}

func New(engine Analyzer, opts Options) *Server {
	s := &Server{
		engine:   engine,
		store:    opts.Store,
		verses:   opts.Verses,
		logger:   opts.Logger,
		version:  opts.Version,
		origins:  opts.AllowedOrigins,
		maxBatch: opts.MaxBatch,
		now:      time.Now,
		pick:     rand.IntN,
	}
	if s.verses == nil {
		s.verses = verse.Default()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.origins == "" {
		s.origins = "*"
	}
	if s.maxBatch <= 0 {
		s.maxBatch = 100
	}
	return s
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.health)
	mux.HandleFunc("POST /api/analyze-emotion", s.analyzeEmotion)
	mux.HandleFunc("POST /api/analyze-batch", s.analyzeBatch)
	mux.HandleFunc("GET /api/emotions", s.emotions)
	mux.HandleFunc("GET /api/journey", s.journey)
	mux.HandleFunc("GET /api/user-progress", s.userProgress)
	mux.HandleFunc("GET /api/daily-quote", s.dailyQuote)

	return Chain(
		Recovery(s.logger),
		RequestID,
		Logger(s.logger),
		CORS(s.origins),
	)(mux)
}

// ListenAndServe serves until ctx is done, then shuts down gracefully within
// cfg.ShutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, cfg config.ServerConfig) error {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln, cfg)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener, cfg config.ServerConfig) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

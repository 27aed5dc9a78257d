package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-pagerank/internal/config"
	"go-pagerank/internal/crawler"
	"go-pagerank/internal/parser"
	"go-pagerank/internal/pipeline"
	"go-pagerank/internal/rank"
	"go-pagerank/pkg/logger"
)

// rankParams override the server defaults for a single request.
type rankParams struct {
	Damping   *float64 `json:"damping,omitempty"`
	Samples   *int     `json:"samples,omitempty"`
	Seed      *uint64  `json:"seed,omitempty"`
	Reference bool     `json:"reference,omitempty"`
}

type rankReq struct {
	Pages map[string][]string `json:"pages"`
	rankParams
}

type crawlReq struct {
	URLs []string `json:"urls"`
	rankParams
}

type server struct {
	cfg    config.Config
	client *crawler.HTTPClient
	par    *parser.Parser
	l      *logger.Logger
}

func main() {
	l := logger.New()
	cfg := config.Default()
	if path := os.Getenv("PAGERANK_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			l.Errorf("load config %s: %v", path, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		l.Errorf("invalid config: %v", err)
		os.Exit(1)
	}

	s := &server{
		cfg:    cfg,
		client: crawler.NewHTTPClient(cfg.Timeout, 5*time.Second, cfg.MaxBodySize),
		par:    parser.New(),
		l:      l,
	}

	addr := ":8080"
	srv := &http.Server{
		Addr:         addr,
		Handler:      logRequest(l, s.routes()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		l.Infof("server listening on %s", addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			l.Errorf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	l.Infof("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	l.Infof("bye")
}

func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// POST /rank  { "pages": {"a.html": ["b.html"], ...}, "damping": 0.85 }
	mux.HandleFunc("/rank", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
			return
		}
		var req rankReq
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodySize)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Pages) == 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		s.rank(w, req.Pages, req.rankParams)
	})

	// POST /rank/crawl  { "urls": ["https://...", "..."] }
	mux.HandleFunc("/rank/crawl", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
			return
		}
		var req crawlReq
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodySize)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.URLs) == 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 45*time.Second)
		defer cancel()
		pages, err := crawler.Crawl(ctx, s.client, s.par, req.URLs, s.cfg.Concurrency, s.l)
		if err != nil {
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
			return
		}
		s.rank(w, pages, req.rankParams)
	})

	return mux
}

func (s *server) rank(w http.ResponseWriter, pages map[string][]string, p rankParams) {
	cfg := s.cfg
	if p.Damping != nil {
		cfg.Damping = *p.Damping
	}
	if p.Samples != nil {
		cfg.Samples = *p.Samples
	}
	if p.Seed != nil {
		cfg.Seed = *p.Seed
	}
	cfg.Reference = cfg.Reference || p.Reference
	if err := cfg.ValidateRequest(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	resp, err := pipeline.Run(pages, cfg, rank.NewRand(pipeline.Seed(cfg)), s.l)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func logRequest(l *logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		l.Infof("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

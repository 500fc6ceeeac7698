// Package api provides the HTTP REST API server for sectorwatch.
//
// It exposes the tagged news snapshot, per-sector gainers/losers,
// processing logs, article summarization, stock search, accounts,
// watchlists, and WebSocket streaming of refresh events.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/seenimoa/sectorwatch/internal/analysis/extract"
	"github.com/seenimoa/sectorwatch/internal/config"
	"github.com/seenimoa/sectorwatch/internal/datasource"
	"github.com/seenimoa/sectorwatch/internal/logbuf"
	"github.com/seenimoa/sectorwatch/internal/refdata"
	"github.com/seenimoa/sectorwatch/internal/report"
	"github.com/seenimoa/sectorwatch/internal/summarize"
	"github.com/seenimoa/sectorwatch/internal/user"
	"github.com/seenimoa/sectorwatch/internal/watchlist"
	"github.com/seenimoa/sectorwatch/pkg/utils"
	"github.com/seenimoa/sectorwatch/web"
)

// Version is stamped at build time.
var Version = "dev"

// Server is the HTTP API server.
type Server struct {
	router chi.Router
	cfg    *config.Config

	table      *refdata.Table
	cache      *datasource.NewsCache
	reporter   *report.Builder
	quotes     *datasource.QuoteSource
	summarizer *summarize.Service
	users      *user.Store
	watchlists *watchlist.Store
	sessions   *SessionStore
	logs       *logbuf.Buffer
	wsHub      *WSHub
}

// NewServer wires the full pipeline behind the HTTP surface.
func NewServer(cfg *config.Config) (*Server, error) {
	logs := logbuf.New(logbuf.DefaultCapacity)
	logs.SetEcho(true)

	table, err := loadTable(cfg)
	if err != nil {
		return nil, err
	}

	feeds, err := cfg.News.Feeds()
	if err != nil {
		return nil, err
	}

	extractor := extract.New(table)
	agg := datasource.NewAggregator(extractor, feeds, logs, cfg.News.FetchOptions())
	cache := datasource.NewNewsCache(agg, time.Duration(cfg.News.CacheTTLSec)*time.Second, logs)

	users, err := user.NewStore(cfg.Data.Dir)
	if err != nil {
		return nil, err
	}
	watchlists, err := watchlist.NewStore(cfg.Data.Dir)
	if err != nil {
		return nil, err
	}

	srv := &Server{
		cfg:        cfg,
		table:      table,
		cache:      cache,
		reporter:   report.NewBuilder(table, logs),
		quotes:     datasource.NewQuoteSource(uint64(time.Now().UnixNano())),
		summarizer: summarize.NewService(extractor, logs, cfg.News.SummarizePerSec),
		users:      users,
		watchlists: watchlists,
		sessions:   NewSessionStore(time.Duration(cfg.Auth.SessionTTLMin) * time.Minute),
		logs:       logs,
		wsHub:      NewWSHub(),
	}

	srv.router = srv.buildRouter()
	return srv, nil
}

// loadTable prefers an on-disk company CSV when configured and falls
// back to the embedded copy.
func loadTable(cfg *config.Config) (*refdata.Table, error) {
	if cfg.Data.CompanyCSV != "" {
		table, err := refdata.LoadFile(cfg.Data.CompanyCSV)
		if err != nil {
			return nil, fmt.Errorf("load company csv %s: %w", cfg.Data.CompanyCSV, err)
		}
		return table, nil
	}
	return refdata.Load()
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe starts the HTTP server with graceful shutdown.
func (s *Server) ListenAndServe(addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start WebSocket hub
	go s.wsHub.Run()

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return httpSrv.Shutdown(ctx)
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	// CORS
	origins := []string{"*"}
	if len(s.cfg.API.CORSOrigins) > 0 {
		origins = s.cfg.API.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", s.handleHealth)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		// News snapshot and sector reports
		r.Get("/news", s.handleNews)
		r.Post("/news/refresh", s.handleNewsRefresh)
		r.Get("/sectors", s.handleSectors)

		// Processing logs
		r.Get("/logs", s.handleLogs)

		// Article summarization
		r.Get("/summarize", s.handleSummarize)

		// Quotes and search
		r.Get("/quote/{symbol}", s.handleQuote)
		r.Get("/search/stocks", s.handleSearchStocks)

		// Accounts
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/logout", s.handleLogout)

		// Watchlist (authenticated)
		r.Group(func(r chi.Router) {
			r.Use(s.requireSession)
			r.Get("/watchlist", s.handleGetWatchlist)
			r.Post("/watchlist", s.handleAddToWatchlist)
			r.Delete("/watchlist/{symbol}", s.handleRemoveFromWatchlist)
			r.Get("/watchlist/sectors", s.handleWatchlistSectors)
		})

		// WebSocket
		r.Get("/ws", s.handleWebSocket)
	})

	// Embedded dashboard
	r.Handle("/*", http.FileServerFS(web.DistFS()))

	return r
}

// ============================================================
// Request / Response types
// ============================================================

// APIResponse is the standard JSON envelope.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RegisterRequest is the body for POST /api/v1/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

// LoginRequest is the body for POST /api/v1/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// WatchlistAddRequest is the body for POST /api/v1/watchlist.
type WatchlistAddRequest struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name,omitempty"`
	Sector string `json:"sector,omitempty"`
}

// ============================================================
// Handlers
// ============================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]any{
			"status":    "ok",
			"version":   Version,
			"companies": s.table.Len(),
			"feeds":     len(datasource.DefaultFeeds),
			"time_ist":  utils.FormatDateTimeIST(utils.NowIST()),
		},
	})
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	articles, err := s.cache.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]any{
			"sector_articles": articles,
			"total_articles":  articles.Total(),
			"last_updated":    utils.FormatDateTimeIST(utils.ToIST(s.cache.FetchedAt())),
		},
	})
}

func (s *Server) handleNewsRefresh(w http.ResponseWriter, r *http.Request) {
	articles, err := s.cache.Refresh(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	s.wsHub.Broadcast(WSMessage{
		Type: "news_refreshed",
		Data: map[string]any{"total_articles": articles.Total()},
	})

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    map[string]any{"total_articles": articles.Total()},
	})
}

func (s *Server) handleSectors(w http.ResponseWriter, r *http.Request) {
	articles, err := s.cache.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]any{
			"sector_data":    s.reporter.Build(articles),
			"total_articles": articles.Total(),
			"last_updated":   utils.FormatDateTimeIST(utils.ToIST(s.cache.FetchedAt())),
		},
	})
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    map[string]any{"logs": s.logs.Lines()},
	})
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := s.summarizer.Summarize(ctx, url)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: result})
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	if symbol == "" {
		writeError(w, http.StatusBadRequest, "symbol is required")
		return
	}

	symbol = utils.NormalizeTicker(symbol)
	if !s.table.HasSymbol(symbol) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown symbol %s", symbol))
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    s.quotes.Quote(symbol),
	})
}

func (s *Server) handleSearchStocks(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if len(query) < 2 {
		writeJSON(w, http.StatusOK, APIResponse{
			Success: true,
			Data:    map[string]any{"results": []any{}},
		})
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    map[string]any{"results": s.table.Search(query)},
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	u, err := s.users.Create(req.Username, req.Password, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrExists) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Every account starts with an empty watchlist.
	if _, err := s.watchlists.Load(u.ID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, APIResponse{
		Success: true,
		Data:    map[string]any{"username": u.Username},
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := s.users.Verify(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) || errors.Is(err, user.ErrBadPassword) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	sess := s.sessions.Create(u.ID, u.Username)
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]any{
			"token":      sess.Token,
			"username":   sess.Username,
			"expires_at": sess.ExpiresAt.Format(time.RFC3339),
		},
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := bearerToken(r); token != "" {
		s.sessions.Delete(token)
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true})
}

func (s *Server) handleGetWatchlist(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	wl, err := s.watchlists.Load(sess.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Attach demo quotes for display.
	type stockWithQuote struct {
		watchlist.Entry
		Quote any `json:"quote"`
	}
	stocks := make([]stockWithQuote, len(wl.Stocks))
	for i, e := range wl.Stocks {
		stocks[i] = stockWithQuote{Entry: e, Quote: s.quotes.Quote(e.Symbol)}
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]any{
			"stocks":       stocks,
			"total_stocks": len(stocks),
			"username":     sess.Username,
		},
	})
}

func (s *Server) handleAddToWatchlist(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	var req WatchlistAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Fill name/sector from the reference table when available.
	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))
	if req.Name == "" || req.Sector == "" {
		for _, rec := range s.table.Search(symbol) {
			if rec.Symbol == symbol {
				if req.Name == "" {
					req.Name = rec.Name
				}
				if req.Sector == "" {
					req.Sector = rec.Sector
				}
				break
			}
		}
	}

	wl, err := s.watchlists.Add(sess.UserID, req.Symbol, req.Name, req.Sector)
	if err != nil {
		switch {
		case errors.Is(err, watchlist.ErrEmptySymbol):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, watchlist.ErrAlreadyWatched):
			writeError(w, http.StatusConflict, fmt.Sprintf("%s already in watchlist", symbol))
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]any{
			"message":      fmt.Sprintf("%s added to watchlist", symbol),
			"total_stocks": len(wl.Stocks),
		},
	})
}

func (s *Server) handleRemoveFromWatchlist(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	symbol := chi.URLParam(r, "symbol")

	wl, err := s.watchlists.Remove(sess.UserID, symbol)
	if err != nil {
		switch {
		case errors.Is(err, watchlist.ErrEmptySymbol):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, watchlist.ErrNotWatched):
			writeError(w, http.StatusNotFound, fmt.Sprintf("%s not found", strings.ToUpper(symbol)))
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]any{
			"message":      fmt.Sprintf("%s removed", strings.ToUpper(symbol)),
			"total_stocks": len(wl.Stocks),
		},
	})
}

func (s *Server) handleWatchlistSectors(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	wl, err := s.watchlists.Load(sess.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	articles, err := s.cache.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	full := s.reporter.Build(articles)
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]any{
			"sector_data":     report.FilterWatchlist(full, wl.Symbols()),
			"watchlist_count": len(wl.Stocks),
		},
	})
}

// ============================================================
// Session middleware
// ============================================================

type sessionCtxKey struct{}

// requireSession rejects requests without a valid bearer token.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		sess, ok := s.sessions.Get(token)
		if !ok {
			writeError(w, http.StatusUnauthorized, "session expired")
			return
		}
		ctx := context.WithValue(r.Context(), sessionCtxKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFrom returns the session stored by requireSession.
func sessionFrom(r *http.Request) Session {
	sess, _ := r.Context().Value(sessionCtxKey{}).(Session)
	return sess
}

// ============================================================
// Helpers
// ============================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Error:   msg,
	})
}

// Package watchlist stores per-user stock watchlists as individual
// JSON files under <dir>/watchlists/. Loading a missing watchlist
// creates an empty one, so callers never see a not-found error.
package watchlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	ErrAlreadyWatched = errors.New("symbol already in watchlist")
	ErrNotWatched     = errors.New("symbol not in watchlist")
	ErrEmptySymbol    = errors.New("symbol is required")
)

// Entry is one watched stock.
type Entry struct {
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	Sector  string `json:"sector"`
	AddedAt string `json:"added_at"`
}

// Watchlist is the stored document for one user.
type Watchlist struct {
	UserID    string  `json:"user_id"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
	Stocks    []Entry `json:"stocks"`
}

// Symbols returns the watched symbols in stored order.
func (w *Watchlist) Symbols() []string {
	symbols := make([]string, len(w.Stocks))
	for i, s := range w.Stocks {
		symbols[i] = s.Symbol
	}
	return symbols
}

// Store reads and writes watchlist files.
type Store struct {
	mu  sync.Mutex
	dir string
	now func() time.Time
}

// NewStore ensures the watchlists directory exists under dir.
func NewStore(dir string) (*Store, error) {
	wdir := filepath.Join(dir, "watchlists")
	if err := os.MkdirAll(wdir, 0o755); err != nil {
		return nil, fmt.Errorf("create watchlists dir: %w", err)
	}
	return &Store{dir: wdir, now: time.Now}, nil
}

// Load returns the user's watchlist, creating an empty one on first use.
func (s *Store) Load(userID string) (*Watchlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(userID)
}

// Add appends a stock. The symbol is uppercased; duplicates are rejected.
func (s *Store) Add(userID, symbol, name, sector string) (*Watchlist, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, ErrEmptySymbol
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	for _, e := range w.Stocks {
		if e.Symbol == symbol {
			return nil, ErrAlreadyWatched
		}
	}

	w.Stocks = append(w.Stocks, Entry{
		Symbol:  symbol,
		Name:    name,
		Sector:  sector,
		AddedAt: s.now().Format(time.RFC3339),
	})
	if err := s.save(userID, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Remove drops a stock from the watchlist.
func (s *Store) Remove(userID, symbol string) (*Watchlist, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, ErrEmptySymbol
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.load(userID)
	if err != nil {
		return nil, err
	}

	kept := w.Stocks[:0]
	for _, e := range w.Stocks {
		if e.Symbol != symbol {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(w.Stocks) {
		return nil, ErrNotWatched
	}
	w.Stocks = kept

	if err := s.save(userID, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Store) path(userID string) string {
	return filepath.Join(s.dir, userID+"_watchlist.json")
}

func (s *Store) load(userID string) (*Watchlist, error) {
	data, err := os.ReadFile(s.path(userID))
	if errors.Is(err, os.ErrNotExist) {
		now := s.now().Format(time.RFC3339)
		w := &Watchlist{
			UserID:    userID,
			CreatedAt: now,
			UpdatedAt: now,
			Stocks:    []Entry{},
		}
		if err := s.save(userID, w); err != nil {
			return nil, err
		}
		return w, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read watchlist: %w", err)
	}

	var w Watchlist
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("parse watchlist: %w", err)
	}
	if w.Stocks == nil {
		w.Stocks = []Entry{}
	}
	return &w, nil
}

func (s *Store) save(userID string, w *Watchlist) error {
	w.UpdatedAt = s.now().Format(time.RFC3339)
	data, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return fmt.Errorf("encode watchlist: %w", err)
	}
	if err := os.WriteFile(s.path(userID), data, 0o600); err != nil {
		return fmt.Errorf("write watchlist: %w", err)
	}
	return nil
}

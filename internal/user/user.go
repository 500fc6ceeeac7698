// Package user manages dashboard accounts. Accounts live in a single
// users.json file under the data directory; passwords are stored as
// bcrypt hashes and never leave this package.
package user

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrExists      = errors.New("username already exists")
	ErrNotFound    = errors.New("user not found")
	ErrBadPassword = errors.New("invalid password")
)

// User is one registered account. PasswordHash is bcrypt.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password"`
	Email        string `json:"email"`
	CreatedAt    string `json:"created_at"`
}

// Store persists accounts to <dir>/users.json. All methods are safe
// for concurrent use; the file is rewritten whole on every change.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore ensures the data directory exists and returns a store.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create user data dir: %w", err)
	}
	return &Store{path: filepath.Join(dir, "users.json")}, nil
}

// Create registers a new account. The username must be unused.
func (s *Store) Create(username, password, email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return nil, err
	}
	if _, taken := users[username]; taken {
		return nil, ErrExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}
	users[username] = u

	if err := s.save(users); err != nil {
		return nil, err
	}
	return &u, nil
}

// Verify checks credentials and returns the account on success.
func (s *Store) Verify(username, password string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return nil, err
	}
	u, ok := users[username]
	if !ok {
		return nil, ErrNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrBadPassword
	}
	return &u, nil
}

// Get looks up an account by username.
func (s *Store) Get(username string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return nil, err
	}
	u, ok := users[username]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

// Count returns the number of registered accounts.
func (s *Store) Count() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return 0, err
	}
	return len(users), nil
}

// load reads users.json; a missing file means no accounts yet.
func (s *Store) load() (map[string]User, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]User{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read users file: %w", err)
	}

	users := map[string]User{}
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parse users file: %w", err)
	}
	return users, nil
}

func (s *Store) save(users map[string]User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write users file: %w", err)
	}
	return nil
}

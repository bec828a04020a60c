// Package config holds the filetype routing configuration and the
// per-document settings cache.
package config

import (
	"context"
	"sync"

	"github.com/acomagu/emmetls/langserver/internal/lsp"
	"github.com/sirupsen/logrus"
)

// Section is the configuration section requested from the client.
const Section = "emmet"

// Config routes documents to expansion grammars by language identifier.
// A language may appear in both lists.
type Config struct {
	HTMLFiletypes []string `json:"html_filetypes"`
	CSSFiletypes  []string `json:"css_filetypes"`
}

func Default() Config {
	return Config{
		HTMLFiletypes: []string{"html"},
		CSSFiletypes:  []string{"css"},
	}
}

// withFallback fills unset lists from base. A client that answers the
// configuration pull with a partial section keeps the pushed defaults for
// the rest.
func (c Config) withFallback(base Config) Config {
	if c.HTMLFiletypes == nil {
		c.HTMLFiletypes = base.HTMLFiletypes
	}
	if c.CSSFiletypes == nil {
		c.CSSFiletypes = base.CSSFiletypes
	}
	return c
}

//go:generate mockgen -destination mock_config/fetcher.go -package mock_config github.com/acomagu/emmetls/langserver/internal/config Fetcher

// Fetcher pulls document-scoped configuration from the client.
type Fetcher interface {
	Fetch(ctx context.Context, uri lsp.DocumentURI) (Config, error)
}

// Store resolves the effective configuration per document. Scoped values are
// cached until the document closes; a global configuration push only changes
// what documents without a cached value observe.
type Store struct {
	logger *logrus.Logger

	mu      sync.RWMutex
	global  Config
	scoped  map[lsp.DocumentURI]Config
	fetcher Fetcher
}

func NewStore(logger *logrus.Logger) *Store {
	return &Store{
		logger: logger,
		global: Default(),
		scoped: make(map[lsp.DocumentURI]Config),
	}
}

// SetFetcher enables document-scoped configuration pulls. Before it is
// called, and whenever f is nil, Get serves the process-wide value.
func (s *Store) SetFetcher(f Fetcher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetcher = f
}

// Get returns the effective configuration for uri. A scoped pull is awaited
// before answering, so the first request for a document pays the fetch
// round-trip and every later one hits the cache. A failed fetch falls back
// to the process-wide value and is not cached, so the next request retries.
func (s *Store) Get(ctx context.Context, uri lsp.DocumentURI) Config {
	s.mu.RLock()
	cfg, ok := s.scoped[uri]
	global := s.global
	fetcher := s.fetcher
	s.mu.RUnlock()
	if ok {
		return cfg
	}
	if fetcher == nil {
		return global
	}

	fetched, err := fetcher.Fetch(ctx, uri)
	if err != nil {
		s.logger.WithError(err).WithField("uri", uri).Debug("configuration pull failed, falling back to global")
		return global
	}
	cfg = fetched.withFallback(global)

	s.mu.Lock()
	s.scoped[uri] = cfg
	s.mu.Unlock()
	return cfg
}

// SetGlobal replaces the process-wide configuration. Cached scoped values
// are left alone until their documents close.
func (s *Store) SetGlobal(cfg Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.global = cfg.withFallback(Default())
}

// Forget drops the cached value for uri. Unknown URIs are a no-op.
func (s *Store) Forget(uri lsp.DocumentURI) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.scoped, uri)
}

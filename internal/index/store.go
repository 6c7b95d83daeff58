package index

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// Status tracks the lifecycle of the index snapshot.
type Status int

const (
	StatusUninitialized Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

var (
	// ErrFetch indicates the index endpoint could not be retrieved.
	ErrFetch = errors.New("index: fetch failed")
	// ErrParse indicates the endpoint responded with malformed JSON.
	ErrParse = errors.New("index: parse failed")
)

// Store lazily fetches and holds the searchable document collection. A
// store loads at most once: after the first Load call, later calls return
// the recorded outcome without issuing another fetch, so rapid widget
// toggling cannot stack requests and a failed load stays failed until the
// store is explicitly Reset.
type Store struct {
	client *http.Client

	mu     sync.Mutex
	status Status
	docs   []Document
	err    error
}

// NewStore constructs an empty store. A nil client falls back to
// http.DefaultClient.
func NewStore(client *http.Client) *Store {
	if client == nil {
		client = http.DefaultClient
	}
	return &Store{client: client}
}

// Load fetches the JSON index at url, normalizes each record, and moves the
// store to StatusReady or StatusFailed. It never panics past the store
// boundary; fetch and parse failures are recorded and returned wrapped in
// ErrFetch or ErrParse.
func (s *Store) Load(ctx context.Context, url string) error {
	s.mu.Lock()
	if s.status != StatusUninitialized {
		err := s.err
		s.mu.Unlock()
		return err
	}
	s.status = StatusLoading
	s.mu.Unlock()

	docs, err := s.fetch(ctx, url)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusFailed
		s.err = err
		return err
	}
	s.status = StatusReady
	s.docs = docs
	return nil
}

func (s *Store) fetch(ctx context.Context, url string) ([]Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrFetch, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	var docs []Document
	if err := json.Unmarshal(body, &docs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	for i := range docs {
		docs[i].normalize()
	}
	return docs, nil
}

// Status returns the current lifecycle state.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Documents returns a copy of the ready snapshot in source order. The order
// is the stable tie-break fallback for ranking. Before StatusReady it
// returns nil.
func (s *Store) Documents() []Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusReady {
		return nil
	}
	return append([]Document(nil), s.docs...)
}

// Err returns the recorded load error, nil unless StatusFailed.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Reset returns the store to StatusUninitialized so a future Load fetches
// again. Nothing inside the widget calls this; it exists for explicit
// resets by the embedding program.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusUninitialized
	s.docs = nil
	s.err = nil
}

package service

import (
	"context"
	"sync"
	"time"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/pkg/debounce"
)

// SearchQuietPeriod is how long a typing burst must pause before a live
// search actually executes.
const SearchQuietPeriod = 280 * time.Millisecond

// SearchSession is one visitor's live-search state: the active category plus
// a debounced query executor. Keystrokes fed to Type collapse into a single
// search once the quiet period elapses; result sets are delivered on Results.
type SearchSession struct {
	svc GalleryService

	mu       sync.Mutex
	category string
	gen      uint64
	closed   bool

	deb     *debounce.Debouncer[searchInput]
	results chan []*model.Project
}

// searchInput carries the query text together with the session generation it
// was typed under. A generation mismatch at run time means a filter switch
// happened in between, so the query is stale.
type searchInput struct {
	query string
	gen   uint64
}

func newSearchSession(svc GalleryService, quiet time.Duration) *SearchSession {
	s := &SearchSession{
		svc:      svc,
		category: model.CategoryAll,
		results:  make(chan []*model.Project, 16),
	}
	s.deb = debounce.New(s.run, quiet)
	return s
}

// Type feeds one keystroke's worth of query text into the session. The search
// runs only after the quiet period, with the latest text.
func (s *SearchSession) Type(query string) {
	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()
	s.deb.Call(searchInput{query: query, gen: gen})
}

// Filter switches the active category, clears any pending query and emits the
// category's full subset immediately. Bumping the generation invalidates a
// debounce timer that fired but has not searched yet.
func (s *SearchSession) Filter(category string) error {
	if !model.ValidCategory(category) {
		return ErrUnknownCategory
	}
	s.deb.Stop()

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.category = category
	s.mu.Unlock()

	s.run(searchInput{query: "", gen: gen})
	return nil
}

// Results is the stream of coalesced result sets.
func (s *SearchSession) Results() <-chan []*model.Project {
	return s.results
}

func (s *SearchSession) run(in searchInput) {
	s.mu.Lock()
	category := s.category
	stale := s.closed || in.gen != s.gen
	s.mu.Unlock()
	if stale {
		return
	}

	matches, err := s.svc.Search(context.Background(), category, in.query)
	if err != nil {
		return
	}
	if matches == nil {
		matches = []*model.Project{}
	}

	// A filter switch while the search ran makes these results stale too.
	s.mu.Lock()
	stale = s.closed || in.gen != s.gen
	s.mu.Unlock()
	if stale {
		return
	}

	// Drop the oldest pending set rather than block: only the freshest
	// results matter to a typeahead.
	select {
	case s.results <- matches:
	default:
		select {
		case <-s.results:
		default:
		}
		select {
		case s.results <- matches:
		default:
		}
	}
}

func (s *SearchSession) close() {
	s.deb.Stop()
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// LiveSearch manages search sessions by ID.
type LiveSearch struct {
	svc   GalleryService
	quiet time.Duration

	mu       sync.Mutex
	sessions map[string]*SearchSession
}

// NewLiveSearch creates a LiveSearch over the gallery with the given quiet
// period (SearchQuietPeriod in production).
func NewLiveSearch(svc GalleryService, quiet time.Duration) *LiveSearch {
	return &LiveSearch{
		svc:      svc,
		quiet:    quiet,
		sessions: make(map[string]*SearchSession),
	}
}

// Session returns the session with the given ID, creating it on first use.
func (l *LiveSearch) Session(id string) *SearchSession {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.sessions[id]
	if !ok {
		s = newSearchSession(l.svc, l.quiet)
		l.sessions[id] = s
	}
	return s
}

// Close tears down the session with the given ID.
func (l *LiveSearch) Close(id string) {
	l.mu.Lock()
	s, ok := l.sessions[id]
	delete(l.sessions, id)
	l.mu.Unlock()

	if ok {
		s.close()
	}
}

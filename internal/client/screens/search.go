package screens

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/papacapim/papacapim/internal/client/models"
	"github.com/papacapim/papacapim/internal/client/services"
	"github.com/papacapim/papacapim/internal/logging"
)

// SearchPosts searches as the user types. Every change of the query gets a
// sequence number; only the response to the latest one is shown and the
// request it replaced is cancelled.
type SearchPosts struct {
	posts  services.PostService
	alerts Alerter
	nav    Navigator
	logger logging.Logger

	mu      sync.Mutex
	query   string
	results []models.Post
	seq     uint64
	cancel  context.CancelFunc
	loading bool
}

func NewSearchPosts(posts services.PostService, alerts Alerter, nav Navigator, logger logging.Logger) *SearchPosts {
	return &SearchPosts{posts: posts, alerts: alerts, nav: nav, logger: logger.With("screen", "search_posts")}
}

// OnChange handles one edit of the query. An empty query clears the results
// locally; any other query issues exactly one search. It returns
// ErrSuperseded when a newer query was issued while this one was in flight.
func (s *SearchPosts) OnChange(ctx context.Context, query string) error {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.query = query
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if len(query) == 0 {
		s.results = nil
		s.loading = false
		s.mu.Unlock()
		return nil
	}
	reqCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.loading = true
	s.mu.Unlock()

	posts, err := s.posts.Search(reqCtx, query)
	cancel()

	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		return ErrSuperseded
	}
	s.cancel = nil
	s.loading = false
	if err == nil {
		s.results = posts
	}
	s.mu.Unlock()

	if errors.Is(err, context.Canceled) {
		return err
	}
	if err != nil {
		s.logger.Error(ctx, "search failed", "query", query, "error", err)
		s.alerts.Alert(TitleError, describe(err, MsgSessionExpired, MsgSearchFailed))
		return err
	}
	return nil
}

func (s *SearchPosts) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

func (s *SearchPosts) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Results returns a copy of the posts on display.
func (s *SearchPosts) Results() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Post(nil), s.results...)
}

// Select opens the comments of the i-th result.
func (s *SearchPosts) Select(i int) error {
	s.mu.Lock()
	if i < 0 || i >= len(s.results) {
		n := len(s.results)
		s.mu.Unlock()
		return fmt.Errorf("%w: no result #%d (have %d)", ErrValidation, i+1, n)
	}
	post := s.results[i]
	s.mu.Unlock()

	s.nav.OpenPost(post)
	return nil
}

// IsSuperseded reports whether err came from a dropped search.
func IsSuperseded(err error) bool {
	return errors.Is(err, ErrSuperseded)
}

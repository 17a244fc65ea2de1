// Package selector drives the searchable pickers used to attach rules,
// weapons and wargear. Searches are debounced, paged, and answered
// last-request-wins.
package selector

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/grimdank-editor/internal/clients/backend"
	"github.com/KirkDiggler/grimdank-editor/internal/errors"
	"github.com/KirkDiggler/grimdank-editor/internal/pagination"
	"github.com/KirkDiggler/grimdank-editor/internal/pkg/clock"
)

const (
	// DefaultDebounce is the quiet period after the last keystroke before a
	// search is sent
	DefaultDebounce = 300 * time.Millisecond
	// DefaultPageSize is how many candidates a page shows
	DefaultPageSize = 10
)

// Fetcher lists one page of candidates. backend.Client's List methods
// satisfy it.
type Fetcher[T any] func(ctx context.Context, input *backend.ListInput) (*backend.Page[T], error)

// Result is the page of candidates currently on display
type Result[T any] struct {
	Query      string
	Page       int
	Items      []T
	Total      int
	TotalPages int
	Generation uint64
}

// Config holds the dependencies for a selector
type Config[T any] struct {
	Fetch Fetcher[T]
	Clock clock.Clock

	// Debounce and PageSize default to DefaultDebounce and DefaultPageSize
	Debounce time.Duration
	PageSize int

	// OnResult is called with every result that lands (optional)
	OnResult func(Result[T])
}

// Validate ensures all required dependencies are provided
func (c *Config[T]) Validate() error {
	if c.Debounce == 0 {
		c.Debounce = DefaultDebounce
	}
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}

	vb := errors.NewValidationBuilder()
	if c.Fetch == nil {
		vb.RequiredField("Fetch")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	errors.ValidatePositive("Debounce", int64(c.Debounce), vb)
	errors.ValidatePositive("PageSize", int64(c.PageSize), vb)
	return vb.Build()
}

// Selector is one open picker. It is safe for concurrent use.
type Selector[T any] struct {
	fetch    Fetcher[T]
	clock    clock.Clock
	debounce time.Duration
	pageSize int
	onResult func(Result[T])

	mu         sync.Mutex
	timer      clock.Timer
	generation uint64
	query      string
	page       int
	result     Result[T]
}

// New opens a selector
func New[T any](cfg *Config[T]) (*Selector[T], error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Selector[T]{
		fetch:    cfg.Fetch,
		clock:    cfg.Clock,
		debounce: cfg.Debounce,
		pageSize: cfg.PageSize,
		onResult: cfg.OnResult,
		page:     1,
		result:   Result[T]{Page: 1},
	}, nil
}

// Search sets the name filter and returns to the first page. The fetch is
// sent once no further Search has arrived for the debounce period.
func (s *Selector[T]) Search(ctx context.Context, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = name
	s.page = 1
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = s.clock.AfterFunc(s.debounce, func() { s.issue(ctx) })
}

// SetPage moves to page and fetches it right away
func (s *Selector[T]) SetPage(ctx context.Context, page int) {
	s.mu.Lock()
	s.page = max(1, page)
	s.mu.Unlock()

	s.issue(ctx)
}

// Jump sets the name filter and page together and fetches right away,
// cancelling any pending debounced search
func (s *Selector[T]) Jump(ctx context.Context, name string, page int) {
	s.mu.Lock()
	s.query = name
	s.page = max(1, page)
	s.mu.Unlock()

	s.Refresh(ctx)
}

// Refresh fetches the current query and page right away, cancelling any
// pending debounced search
func (s *Selector[T]) Refresh(ctx context.Context) {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	s.issue(ctx)
}

// Result returns the page on display
func (s *Selector[T]) Result() Result[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.result
	r.Items = append([]T(nil), s.result.Items...)
	return r
}

// Close cancels a pending search. Responses still in flight are discarded.
func (s *Selector[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.generation++
}

func (s *Selector[T]) issue(ctx context.Context) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	query := s.query
	page := s.page
	s.mu.Unlock()

	q := pagination.Query{Limit: s.pageSize, Skip: pagination.Skip(page, s.pageSize)}
	out, err := s.fetch(ctx, &backend.ListInput{Name: query, Limit: q.Limit, Skip: q.Skip})

	result := Result[T]{Query: query, Page: page, Generation: gen}
	if err != nil {
		// a failed read shows as an empty list
		slog.WarnContext(ctx, "selector fetch failed", "query", query, "page", page, "error", err)
	} else {
		result.Items = out.Items
		result.Total = pagination.Total(q, len(out.Items), out.Total)
		result.TotalPages = pagination.TotalPages(result.Total, s.pageSize)
	}

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		slog.DebugContext(ctx, "discarding stale selector response", "generation", gen, "query", query)
		return
	}

	// the total shrank under the current page
	refetch := false
	if err == nil && result.Total > 0 {
		if clamped := pagination.ClampPage(page, result.Total, s.pageSize); clamped != page {
			s.page = clamped
			refetch = true
		}
	}
	s.result = result
	s.mu.Unlock()

	if refetch {
		s.issue(ctx)
		return
	}
	if s.onResult != nil {
		s.onResult(result)
	}
}

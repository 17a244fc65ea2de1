package drafts

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/grimdank-editor/internal/entities/wargame"
	"github.com/KirkDiggler/grimdank-editor/internal/errors"
	"github.com/KirkDiggler/grimdank-editor/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu       sync.RWMutex
	clock    clock.Clock
	ttl      time.Duration
	store    map[string]*wargame.Draft
	entities map[string]string
}

// NewInMemory creates a new in-memory repository. A zero ttl means DefaultTTL.
func NewInMemory(clk clock.Clock, ttl time.Duration) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &InMemoryRepository{
		clock:    clk,
		ttl:      ttl,
		store:    make(map[string]*wargame.Draft),
		entities: make(map[string]string),
	}
}

// Create stores a draft, replacing an earlier draft of the same entity
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateDraft(input.Draft); err != nil {
		return nil, err
	}
	if _, err := remaining(input.Draft, r.clock.Now(), r.ttl); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if input.Draft.EntityID != "" {
		key := entityKey("", input.Draft.Kind, input.Draft.EntityID)
		if previous, ok := r.entities[key]; ok && previous != input.Draft.ID {
			delete(r.store, previous)
		}
		r.entities[key] = input.Draft.ID
	}
	r.store[input.Draft.ID] = copyDraft(input.Draft)

	return &CreateOutput{Draft: input.Draft}, nil
}

// Get retrieves a draft by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.live(input.ID)
	if !ok {
		return nil, errors.NotFoundf("draft with ID %s not found", input.ID)
	}
	return &GetOutput{Draft: copyDraft(d)}, nil
}

// GetByEntity retrieves the draft editing an existing entity
func (r *InMemoryRepository) GetByEntity(_ context.Context, input GetByEntityInput) (*GetByEntityOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.entities[entityKey("", input.Kind, input.EntityID)]
	if !ok {
		return nil, errors.NotFoundf("no draft found for %s %s", input.Kind, input.EntityID)
	}
	d, ok := r.live(id)
	if !ok {
		return nil, errors.NotFoundf("no draft found for %s %s", input.Kind, input.EntityID)
	}
	return &GetByEntityOutput{Draft: copyDraft(d)}, nil
}

// Update overwrites an existing draft
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateDraft(input.Draft); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.live(input.Draft.ID); !ok {
		return nil, errors.NotFoundf("draft with ID %s not found", input.Draft.ID)
	}
	if _, err := remaining(input.Draft, r.clock.Now(), r.ttl); err != nil {
		return nil, err
	}

	r.store[input.Draft.ID] = copyDraft(input.Draft)
	if input.Draft.EntityID != "" {
		r.entities[entityKey("", input.Draft.Kind, input.Draft.EntityID)] = input.Draft.ID
	}
	return &UpdateOutput{Draft: input.Draft}, nil
}

// Delete removes a draft
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.live(input.ID)
	if !ok {
		return nil, errors.NotFoundf("draft with ID %s not found", input.ID)
	}
	delete(r.store, input.ID)
	if d.EntityID != "" {
		delete(r.entities, entityKey("", d.Kind, d.EntityID))
	}
	return &DeleteOutput{}, nil
}

// live returns an unexpired draft. Callers hold the lock.
func (r *InMemoryRepository) live(id string) (*wargame.Draft, bool) {
	d, ok := r.store[id]
	if !ok {
		return nil, false
	}
	if d.ExpiresAt > 0 && !r.clock.Now().Before(time.Unix(d.ExpiresAt, 0)) {
		return nil, false
	}
	return d, true
}

func copyDraft(d *wargame.Draft) *wargame.Draft {
	cp := *d
	cp.Payload = append([]byte(nil), d.Payload...)
	return &cp
}

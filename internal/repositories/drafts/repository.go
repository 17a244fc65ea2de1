// Package drafts persists editor working sets so an edit can be resumed
package drafts

//go:generate mockgen -destination=mock/mock_repository.go -package=draftsmock github.com/KirkDiggler/grimdank-editor/internal/repositories/drafts Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/grimdank-editor/internal/entities/wargame"
)

// DefaultTTL is how long a draft survives without being saved again
const DefaultTTL = 24 * time.Hour

const (
	errDraftNil      = "draft cannot be nil"
	errDraftIDEmpty  = "draft ID cannot be empty"
	errKindInvalid   = "draft kind is invalid"
	errEntityIDEmpty = "entity ID cannot be empty"
	errDraftExpired  = "draft has already expired"
)

// Repository defines the interface for draft persistence. An existing entity
// has at most one draft; saving a new draft for it replaces the old one.
type Repository interface {
	// Create stores a draft, replacing any earlier draft of the same entity
	// Returns errors.InvalidArgument for validation failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a draft by ID
	// Returns errors.NotFound if the draft doesn't exist or expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetByEntity retrieves the draft editing an existing entity
	// Returns errors.NotFound if the entity has no draft
	GetByEntity(ctx context.Context, input GetByEntityInput) (*GetByEntityOutput, error)

	// Update overwrites an existing draft
	// Returns errors.NotFound if the draft doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a draft
	// Returns errors.NotFound if the draft doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a draft
type CreateInput struct {
	Draft *wargame.Draft
}

// CreateOutput defines the output for creating a draft
type CreateOutput struct {
	Draft *wargame.Draft
}

// GetInput defines the input for getting a draft
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a draft
type GetOutput struct {
	Draft *wargame.Draft
}

// GetByEntityInput defines the input for finding an entity's draft
type GetByEntityInput struct {
	Kind     wargame.DraftKind
	EntityID string
}

// GetByEntityOutput defines the output for finding an entity's draft
type GetByEntityOutput struct {
	Draft *wargame.Draft
}

// UpdateInput defines the input for updating a draft
type UpdateInput struct {
	Draft *wargame.Draft
}

// UpdateOutput defines the output for updating a draft
type UpdateOutput struct {
	Draft *wargame.Draft
}

// DeleteInput defines the input for deleting a draft
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a draft
type DeleteOutput struct{}

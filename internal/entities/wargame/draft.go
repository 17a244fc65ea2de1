package wargame

import "encoding/json"

// DraftKind names the kind of entity a draft edits
type DraftKind string

// Draft kinds
const (
	DraftUnit    DraftKind = "unit"
	DraftWeapon  DraftKind = "weapon"
	DraftWarGear DraftKind = "wargear"
	DraftRule    DraftKind = "rule"
)

// Valid reports whether k is a known draft kind
func (k DraftKind) Valid() bool {
	switch k {
	case DraftUnit, DraftWeapon, DraftWarGear, DraftRule:
		return true
	}
	return false
}

// Draft is a saved editor working set that can be resumed later
type Draft struct {
	ID   string    `json:"id"`
	Kind DraftKind `json:"kind"`

	// EntityID is empty while the draft edits an entity not yet created
	EntityID string `json:"entityId,omitempty"`

	// Payload is the serialized working set
	Payload json.RawMessage `json:"payload"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
	ExpiresAt int64 `json:"expiresAt"`
}

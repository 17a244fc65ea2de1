package editor

import (
	"github.com/KirkDiggler/grimdank-editor/internal/entities/wargame"
	"github.com/KirkDiggler/grimdank-editor/internal/errors"
)

// OpenInput names the entity to open
type OpenInput struct {
	ID string
}

func (i *OpenInput) validate() error {
	if i == nil || i.ID == "" {
		return errors.InvalidArgument("ID is required")
	}
	return nil
}

// OpenUnitOutput holds a hydrated unit session
type OpenUnitOutput struct {
	Editor *UnitEditor
}

// OpenWeaponOutput holds a hydrated weapon session
type OpenWeaponOutput struct {
	Editor *WeaponEditor
}

// OpenWarGearOutput holds a hydrated wargear session
type OpenWarGearOutput struct {
	Editor *WarGearEditor
}

// OpenRuleOutput holds a rule session
type OpenRuleOutput struct {
	Editor *RuleEditor
}

// SubmitUnitInput defines the input for submitting a unit session. DraftID,
// when set, is discarded after a successful submit.
type SubmitUnitInput struct {
	Editor  *UnitEditor
	DraftID string
}

// SubmitUnitOutput holds the unit as the backend stored it
type SubmitUnitOutput struct {
	Unit *wargame.Unit
}

// SubmitWeaponInput defines the input for submitting a weapon session
type SubmitWeaponInput struct {
	Editor  *WeaponEditor
	DraftID string
}

// SubmitWeaponOutput holds the weapon as the backend stored it
type SubmitWeaponOutput struct {
	Weapon *wargame.Weapon
}

// SubmitWarGearInput defines the input for submitting a wargear session
type SubmitWarGearInput struct {
	Editor  *WarGearEditor
	DraftID string
}

// SubmitWarGearOutput holds the wargear as the backend stored it
type SubmitWarGearOutput struct {
	WarGear *wargame.WarGear
}

// SubmitRuleInput defines the input for submitting a rule session
type SubmitRuleInput struct {
	Editor  *RuleEditor
	DraftID string
}

// SubmitRuleOutput holds the rule as the backend stored it
type SubmitRuleOutput struct {
	Rule *wargame.Rule
}

// SaveDraftInput defines the input for saving a draft. An empty DraftID
// creates a new draft.
type SaveDraftInput struct {
	DraftID  string
	Snapshot *Snapshot
}

// SaveDraftOutput holds the stored draft
type SaveDraftOutput struct {
	Draft *wargame.Draft
}

// LoadDraftInput defines the input for loading a draft
type LoadDraftInput struct {
	DraftID string
}

// LoadDraftOutput holds the draft and its decoded snapshot
type LoadDraftOutput struct {
	Draft    *wargame.Draft
	Snapshot *Snapshot
}

// DiscardDraftInput defines the input for discarding a draft
type DiscardDraftInput struct {
	DraftID string
}

// DiscardDraftOutput is empty
type DiscardDraftOutput struct{}

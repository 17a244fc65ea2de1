package selector

import (
	"github.com/KirkDiggler/grimdank-editor/internal/entities/wargame"
	"github.com/KirkDiggler/grimdank-editor/internal/orchestrators/editor"
)

// Selection is the candidate a picker confirms, with the tier or quantity
// chosen alongside it
type Selection[T any] struct {
	Candidate T
	Tier      int
	Quantity  int
	Slot      wargame.SlotType
}

// ConfirmRule attaches a selected rule to a rule host
func ConfirmRule(host *editor.RuleHost, sel Selection[wargame.Rule]) editor.Decision {
	rule := sel.Candidate
	return host.AddRule(&rule, sel.Tier)
}

// ConfirmWeapon puts a selected weapon into the selection's slot. Without a
// slot the weapon's own type is used.
func ConfirmWeapon(unit *editor.UnitEditor, sel Selection[wargame.Weapon]) editor.Decision {
	weapon := sel.Candidate
	slot := sel.Slot
	if slot == "" {
		slot, _ = weapon.SlotType()
	}
	return unit.AddWeapon(&weapon, slot, sel.Quantity)
}

// ConfirmWarGear attaches selected wargear to a unit
func ConfirmWarGear(unit *editor.UnitEditor, sel Selection[wargame.WarGear]) editor.Decision {
	gear := sel.Candidate
	return unit.AddWarGear(&gear)
}

package editor

import (
	"github.com/KirkDiggler/grimdank-editor/internal/entities/wargame"
	"github.com/KirkDiggler/grimdank-editor/internal/points"
)

// RuleAttachment is a rule held by an entity under edit. Rule is nil when the
// reference could not be resolved; it then costs nothing.
type RuleAttachment struct {
	RuleID string
	Tier   int
	Rule   *wargame.Rule
}

// Points returns the cost of the attachment at its tier
func (a RuleAttachment) Points() int {
	return points.PointsOf(a.cost())
}

func (a RuleAttachment) cost() points.RuleCost {
	return points.RuleCost{Rule: a.Rule, Tier: a.Tier}
}

// WeaponAttachment is a weapon held in one of a unit's slots
type WeaponAttachment struct {
	WeaponID string
	Slot     wargame.SlotType
	Quantity int
	Weapon   *wargame.Weapon
}

// WarGearAttachment is a piece of wargear held by a unit
type WarGearAttachment struct {
	WarGearID string
	WarGear   *wargame.WarGear
}

func ruleKey(a RuleAttachment) string     { return a.RuleID }
func weaponKey(a WeaponAttachment) string { return a.WeaponID }
func gearKey(a WarGearAttachment) string  { return a.WarGearID }

// QuantityWarning reports a slot whose weapon quantities add up to more
// models than the unit has. It blocks a submit, not an edit.
type QuantityWarning struct {
	Slot     wargame.SlotType
	Quantity int
	Amount   int
}

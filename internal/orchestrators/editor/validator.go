package editor

import (
	"fmt"

	"github.com/KirkDiggler/grimdank-editor/internal/attachments"
	"github.com/KirkDiggler/grimdank-editor/internal/entities/wargame"
	"github.com/KirkDiggler/grimdank-editor/internal/errors"
	"github.com/KirkDiggler/grimdank-editor/internal/points"
)

// Outcome says what happened to a requested attachment mutation
type Outcome int

const (
	// Accepted: applied exactly as requested
	Accepted Outcome = iota
	// Clamped: applied with the value forced into range
	Clamped
	// Duplicate: the child is already attached; nothing changed
	Duplicate
	// Rejected: a constraint refused the mutation; nothing changed
	Rejected
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Clamped:
		return "clamped"
	case Duplicate:
		return "duplicate"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Reason explains a Duplicate or Rejected outcome
type Reason string

// Rejection reasons
const (
	ReasonNone         Reason = ""
	ReasonDuplicate    Reason = "duplicate"
	ReasonSlotMismatch Reason = "slot_mismatch"
	ReasonSlotFull     Reason = "slot_full"
	ReasonUnknown      Reason = "unknown"
)

// Decision is the validator's verdict on one mutation. Stored is the tier or
// quantity actually written when the mutation applied.
type Decision struct {
	Outcome   Outcome
	Reason    Reason
	Message   string
	Requested int
	Stored    int
}

// Applied reports whether the mutation changed the working set
func (d Decision) Applied() bool {
	return d.Outcome == Accepted || d.Outcome == Clamped
}

// Err converts a refusal into an error for callers that want one. It is nil
// for applied mutations.
func (d Decision) Err() error {
	if d.Applied() {
		return nil
	}

	var err *errors.Error
	switch d.Reason {
	case ReasonDuplicate:
		err = errors.AlreadyExists(d.Message)
	case ReasonSlotFull:
		err = errors.ResourceExhausted(d.Message)
	default:
		err = errors.InvalidArgument(d.Message)
	}
	return err.WithKind(errors.KindValidationRejection).WithMeta("reason", string(d.Reason))
}

func stored(requested, value int) Decision {
	if requested == value {
		return Decision{Outcome: Accepted, Requested: requested, Stored: value}
	}
	return Decision{Outcome: Clamped, Requested: requested, Stored: value}
}

func duplicate(kind, id string) Decision {
	return Decision{
		Outcome: Duplicate,
		Reason:  ReasonDuplicate,
		Message: fmt.Sprintf("%s %s is already attached", kind, id),
	}
}

func rejected(reason Reason, format string, args ...any) Decision {
	return Decision{
		Outcome: Rejected,
		Reason:  reason,
		Message: fmt.Sprintf(format, args...),
	}
}

// CheckRule decides whether rule may be attached at tier
func CheckRule(rules *attachments.Set[string, RuleAttachment], rule *wargame.Rule, tier int) Decision {
	if rule == nil || rule.ID == "" {
		return rejected(ReasonUnknown, "rule is required")
	}
	if rules.Has(rule.ID) {
		return duplicate("rule", rule.ID)
	}
	return stored(tier, points.ClampTier(tier))
}

// CheckTier decides the tier stored for a tier change
func CheckTier(rules *attachments.Set[string, RuleAttachment], ruleID string, tier int) Decision {
	if !rules.Has(ruleID) {
		return rejected(ReasonUnknown, "rule %s is not attached", ruleID)
	}
	return stored(tier, points.ClampTier(tier))
}

// CheckWeapon decides whether weapon may occupy slot with quantity models
func CheckWeapon(weapons *attachments.Set[string, WeaponAttachment], weapon *wargame.Weapon, slot wargame.SlotType, quantity, amount int) Decision {
	if weapon == nil || weapon.ID == "" {
		return rejected(ReasonUnknown, "weapon is required")
	}
	if weapons.Has(weapon.ID) {
		return duplicate("weapon", weapon.ID)
	}

	slot = normalizeSlot(slot)
	weaponSlot, ok := weapon.SlotType()
	if !ok || weaponSlot != slot {
		return rejected(ReasonSlotMismatch, "%s is a %s weapon and cannot fill a %s slot", weapon.Name, weapon.Type, slot)
	}

	held := weapons.Count(func(a WeaponAttachment) bool { return a.Slot == slot })
	if held >= wargame.MaxWeaponsPerSlot {
		return rejected(ReasonSlotFull, "unit already has %d %s weapons", wargame.MaxWeaponsPerSlot, slot)
	}

	return stored(quantity, ClampQuantity(quantity, amount))
}

// normalizeSlot folds case and padding; unknown slots are left as given
func normalizeSlot(slot wargame.SlotType) wargame.SlotType {
	if parsed, ok := wargame.ParseSlotType(string(slot)); ok {
		return parsed
	}
	return slot
}

// CheckQuantity decides the quantity stored for a quantity change
func CheckQuantity(weapons *attachments.Set[string, WeaponAttachment], weaponID string, quantity, amount int) Decision {
	if !weapons.Has(weaponID) {
		return rejected(ReasonUnknown, "weapon %s is not attached", weaponID)
	}
	return stored(quantity, ClampQuantity(quantity, amount))
}

// CheckWarGear decides whether gear may be attached
func CheckWarGear(gear *attachments.Set[string, WarGearAttachment], wg *wargame.WarGear) Decision {
	if wg == nil || wg.ID == "" {
		return rejected(ReasonUnknown, "wargear is required")
	}
	if gear.Has(wg.ID) {
		return duplicate("wargear", wg.ID)
	}
	return Decision{Outcome: Accepted}
}

// ClampQuantity forces a weapon quantity into [0, amount]
func ClampQuantity(quantity, amount int) int {
	return max(0, min(quantity, max(0, amount)))
}

// QuantityWarnings lists the slots whose quantities exceed amount
func QuantityWarnings(weapons *attachments.Set[string, WeaponAttachment], amount int) []QuantityWarning {
	var warnings []QuantityWarning
	for _, slot := range wargame.SlotTypes {
		total := 0
		for _, a := range weapons.Items() {
			if a.Slot == slot {
				total += a.Quantity
			}
		}
		if total > amount {
			warnings = append(warnings, QuantityWarning{Slot: slot, Quantity: total, Amount: amount})
		}
	}
	return warnings
}

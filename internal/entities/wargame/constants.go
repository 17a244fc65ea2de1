package wargame

import "strings"

// SlotType classifies weapons and the unit slots they may occupy
type SlotType string

// Slot types
const (
	SlotMelee  SlotType = "melee"
	SlotRanged SlotType = "ranged"
)

// SlotTypes lists every slot type in display order
var SlotTypes = []SlotType{SlotMelee, SlotRanged}

// ParseSlotType matches a weapon or slot type case-insensitively
func ParseSlotType(s string) (SlotType, bool) {
	switch SlotType(strings.ToLower(strings.TrimSpace(s))) {
	case SlotMelee:
		return SlotMelee, true
	case SlotRanged:
		return SlotRanged, true
	}
	return "", false
}

// Tier bounds for rule attachments
const (
	MinTier     = 1
	MaxTier     = 3
	DefaultTier = MinTier
)

// MaxWeaponsPerSlot caps how many weapons a unit holds per slot type
const MaxWeaponsPerSlot = 3

// MaxWeaponRange is the range ceiling in inches for ranged weapons
const MaxWeaponRange = 48

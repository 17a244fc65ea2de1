// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/grimdank-editor/internal/entities/wargame"
)

// Rule creates a rule with the given tier costs
func Rule(id string, points ...int) *wargame.Rule {
	return &wargame.Rule{
		ID:     id,
		Name:   "Rule " + id,
		Type:   "special",
		Points: points,
	}
}

// Weapon creates a weapon of the given type costing points
func Weapon(id, weaponType string, points int) *wargame.Weapon {
	return &wargame.Weapon{
		ID:      id,
		Name:    "Weapon " + id,
		Type:    weaponType,
		Attacks: "1",
		AP:      "0",
		Points:  points,
	}
}

// WarGear creates wargear costing points
func WarGear(id string, points int) *wargame.WarGear {
	return &wargame.WarGear{
		ID:     id,
		Name:   "Gear " + id,
		Type:   "equipment",
		Points: points,
	}
}

// UnitBuilder provides a fluent interface for building test Unit instances
type UnitBuilder struct {
	unit *wargame.Unit
}

// NewUnitBuilder creates a builder for a five-model squad
func NewUnitBuilder() *UnitBuilder {
	return &UnitBuilder{
		unit: &wargame.Unit{
			ID:      "unit-test-1",
			Name:    "Test Squad",
			Type:    "infantry",
			Faction: "Test Faction",
			Melee:   3,
			Ranged:  3,
			Morale:  7,
			Defense: 4,
			Amount:  5,
			Max:     10,
			Points:  50,
		},
	}
}

// WithID sets the unit ID
func (b *UnitBuilder) WithID(id string) *UnitBuilder {
	b.unit.ID = id
	return b
}

// WithModels sets the model count and cap
func (b *UnitBuilder) WithModels(amount, maxModels int) *UnitBuilder {
	b.unit.Amount = amount
	b.unit.Max = maxModels
	return b
}

// WithPoints sets the base points
func (b *UnitBuilder) WithPoints(points int) *UnitBuilder {
	b.unit.Points = points
	return b
}

// WithRule attaches a rule reference
func (b *UnitBuilder) WithRule(ruleID string, tier int) *UnitBuilder {
	b.unit.Rules = append(b.unit.Rules, wargame.RuleRef{RuleID: ruleID, Tier: tier})
	return b
}

// WithWeapon attaches a weapon reference
func (b *UnitBuilder) WithWeapon(weaponID string, slot wargame.SlotType, quantity int) *UnitBuilder {
	b.unit.Weapons = append(b.unit.Weapons, wargame.WeaponRef{
		WeaponID: weaponID,
		Quantity: quantity,
		Type:     slot,
	})
	return b
}

// WithWarGear attaches a wargear reference
func (b *UnitBuilder) WithWarGear(ids ...string) *UnitBuilder {
	b.unit.WarGear = append(b.unit.WarGear, ids...)
	return b
}

// Build returns the unit
func (b *UnitBuilder) Build() *wargame.Unit {
	return b.unit
}

package editor

import (
	"log/slog"

	"github.com/KirkDiggler/grimdank-editor/internal/attachments"
	"github.com/KirkDiggler/grimdank-editor/internal/entities/wargame"
	"github.com/KirkDiggler/grimdank-editor/internal/errors"
)

// UnitDetails are the scalar fields of a unit
type UnitDetails struct {
	Name    string
	Type    string
	Faction string
	Melee   int
	Ranged  int
	Morale  int
	Defense int
}

// UnitEditor is the working set of a unit: its rules plus weapon slots and
// wargear. Every mutation leaves amount <= max, at most three weapons per
// slot, and every quantity within [0, amount].
type UnitEditor struct {
	*RuleHost

	id      string
	details UnitDetails
	amount  int
	max     int
	weapons *attachments.Set[string, WeaponAttachment]
	gear    *attachments.Set[string, WarGearAttachment]
}

// NewUnitEditor hydrates a unit working set. References to children missing
// from catalog are kept at zero cost. A nil unit starts an empty one.
func NewUnitEditor(unit *wargame.Unit, catalog *wargame.Catalog) *UnitEditor {
	if unit == nil {
		unit = &wargame.Unit{}
	}

	e := &UnitEditor{
		RuleHost: NewRuleHost(unit.Points, unit.Rules, catalog),
		id:       unit.ID,
		details: UnitDetails{
			Name:    unit.Name,
			Type:    unit.Type,
			Faction: unit.Faction,
			Melee:   unit.Melee,
			Ranged:  unit.Ranged,
			Morale:  unit.Morale,
			Defense: unit.Defense,
		},
		amount:  max(0, unit.Amount),
		max:     max(0, unit.Max),
		weapons: attachments.New(weaponKey),
		gear:    attachments.New(gearKey),
	}
	if e.max < e.amount {
		e.max = e.amount
	}

	for _, ref := range unit.Weapons {
		e.hydrateWeapon(ref, catalog)
	}
	for _, id := range unit.WarGear {
		if id == "" {
			continue
		}
		e.gear.Add(WarGearAttachment{WarGearID: id, WarGear: lookupWarGear(catalog, id)})
	}

	return e
}

func (e *UnitEditor) hydrateWeapon(ref wargame.WeaponRef, catalog *wargame.Catalog) {
	if ref.WeaponID == "" || e.weapons.Has(ref.WeaponID) {
		return
	}

	weapon := lookupWeapon(catalog, ref.WeaponID)
	slot, ok := wargame.ParseSlotType(string(ref.Type))
	if !ok && weapon != nil {
		slot, ok = weapon.SlotType()
	}
	if !ok {
		slog.Warn("dropping weapon reference without a slot", "unit_id", e.id, "weapon_id", ref.WeaponID)
		return
	}

	if e.slotCount(slot) >= wargame.MaxWeaponsPerSlot {
		slog.Warn("dropping weapon reference beyond slot capacity",
			"unit_id", e.id,
			"weapon_id", ref.WeaponID,
			"slot", slot)
		return
	}

	e.weapons.Add(WeaponAttachment{
		WeaponID: ref.WeaponID,
		Slot:     slot,
		Quantity: ClampQuantity(ref.Quantity, e.amount),
		Weapon:   weapon,
	})
}

// ID returns the unit ID, empty for a unit not yet created
func (e *UnitEditor) ID() string {
	return e.id
}

// Details returns the scalar fields
func (e *UnitEditor) Details() UnitDetails {
	return e.details
}

// SetDetails replaces the scalar fields
func (e *UnitEditor) SetDetails(d UnitDetails) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Name", d.Name, vb)
	stats := []struct {
		field string
		value int
	}{
		{"Melee", d.Melee},
		{"Ranged", d.Ranged},
		{"Morale", d.Morale},
		{"Defense", d.Defense},
	}
	for _, st := range stats {
		if st.value < 0 {
			vb.Fieldf(st.field, "cannot be negative: %d", st.value)
		}
	}
	if err := vb.Build(); err != nil {
		return err
	}

	e.details = d
	return nil
}

// AddWeapon puts weapon into a slot with quantity models carrying it
func (e *UnitEditor) AddWeapon(weapon *wargame.Weapon, slot wargame.SlotType, quantity int) Decision {
	slot = normalizeSlot(slot)
	d := CheckWeapon(e.weapons, weapon, slot, quantity, e.amount)
	if !d.Applied() {
		return d
	}

	e.weapons.Add(WeaponAttachment{
		WeaponID: weapon.ID,
		Slot:     slot,
		Quantity: d.Stored,
		Weapon:   weapon,
	})
	return d
}

// RemoveWeapon frees a weapon's slot. Removing an absent weapon does nothing.
func (e *UnitEditor) RemoveWeapon(weaponID string) bool {
	_, ok := e.weapons.Remove(weaponID)
	return ok
}

// ChangeQuantity sets how many models carry a weapon, clamped to [0, amount]
func (e *UnitEditor) ChangeQuantity(weaponID string, quantity int) Decision {
	d := CheckQuantity(e.weapons, weaponID, quantity, e.amount)
	if !d.Applied() {
		return d
	}

	e.weapons.Update(weaponID, func(a WeaponAttachment) WeaponAttachment {
		a.Quantity = d.Stored
		return a
	})
	return d
}

// AddWarGear attaches wargear
func (e *UnitEditor) AddWarGear(gear *wargame.WarGear) Decision {
	d := CheckWarGear(e.gear, gear)
	if !d.Applied() {
		return d
	}

	e.gear.Add(WarGearAttachment{WarGearID: gear.ID, WarGear: gear})
	return d
}

// RemoveWarGear detaches wargear. Removing absent wargear does nothing.
func (e *UnitEditor) RemoveWarGear(gearID string) bool {
	_, ok := e.gear.Remove(gearID)
	return ok
}

// SetAmount sets the model count. Raising it above max raises max.
func (e *UnitEditor) SetAmount(n int) {
	n = max(0, n)
	if n > e.max {
		e.max = n
	}
	e.amount = n
	e.reflow()
}

// SetMax sets the model cap. Lowering it below the model count lowers the
// count as well.
func (e *UnitEditor) SetMax(n int) {
	n = max(0, n)
	e.max = n
	if e.amount > n {
		e.amount = n
	}
	e.reflow()
}

// Amount returns the model count
func (e *UnitEditor) Amount() int {
	return e.amount
}

// Max returns the model cap
func (e *UnitEditor) Max() int {
	return e.max
}

// Weapons returns the held weapons in attachment order
func (e *UnitEditor) Weapons() []WeaponAttachment {
	return e.weapons.Items()
}

// WeaponsIn returns the weapons held in one slot
func (e *UnitEditor) WeaponsIn(slot wargame.SlotType) []WeaponAttachment {
	var out []WeaponAttachment
	for _, a := range e.weapons.Items() {
		if a.Slot == slot {
			out = append(out, a)
		}
	}
	return out
}

// WarGear returns the attached wargear in attachment order
func (e *UnitEditor) WarGear() []WarGearAttachment {
	return e.gear.Items()
}

// Warnings lists slots whose quantities exceed the model count
func (e *UnitEditor) Warnings() []QuantityWarning {
	return QuantityWarnings(e.weapons, e.amount)
}

// Unit normalizes the working set into the body the backend stores
func (e *UnitEditor) Unit() *wargame.Unit {
	weapons := make([]wargame.WeaponRef, 0, e.weapons.Len())
	for _, a := range e.weapons.Items() {
		weapons = append(weapons, wargame.WeaponRef{
			WeaponID: a.WeaponID,
			Quantity: a.Quantity,
			Type:     a.Slot,
		})
	}

	return &wargame.Unit{
		ID:      e.id,
		Name:    e.details.Name,
		Type:    e.details.Type,
		Faction: e.details.Faction,
		Melee:   e.details.Melee,
		Ranged:  e.details.Ranged,
		Morale:  e.details.Morale,
		Defense: e.details.Defense,
		Amount:  e.amount,
		Max:     e.max,
		Points:  e.BasePoints(),
		Rules:   e.RuleRefs(),
		Weapons: weapons,
		WarGear: e.gear.Keys(),
	}
}

// Catalog returns the resolved children of the working set
func (e *UnitEditor) Catalog() *wargame.Catalog {
	c := NewCatalogFor(e.RuleHost)
	for _, a := range e.weapons.Items() {
		if a.Weapon != nil {
			c.AddWeapons(*a.Weapon)
		}
	}
	for _, a := range e.gear.Items() {
		if a.WarGear != nil {
			c.AddWarGear(*a.WarGear)
		}
	}
	return c
}

func (e *UnitEditor) reflow() {
	amount := e.amount
	e.weapons.UpdateAll(func(a WeaponAttachment) WeaponAttachment {
		a.Quantity = ClampQuantity(a.Quantity, amount)
		return a
	})
}

func (e *UnitEditor) slotCount(slot wargame.SlotType) int {
	return e.weapons.Count(func(a WeaponAttachment) bool { return a.Slot == slot })
}

// NewCatalogFor returns a catalog of the rules resolved in a working set
func NewCatalogFor(h *RuleHost) *wargame.Catalog {
	c := wargame.NewCatalog()
	for _, a := range h.Rules() {
		if a.Rule != nil {
			c.AddRules(*a.Rule)
		}
	}
	return c
}

func lookupWeapon(c *wargame.Catalog, id string) *wargame.Weapon {
	if c == nil {
		return nil
	}
	return c.Weapons[id]
}

func lookupWarGear(c *wargame.Catalog, id string) *wargame.WarGear {
	if c == nil {
		return nil
	}
	return c.WarGear[id]
}

package editor

import (
	"sort"

	"github.com/KirkDiggler/grimdank-editor/internal/entities/wargame"
	"github.com/KirkDiggler/grimdank-editor/internal/errors"
)

// Snapshot is a serializable working set. It carries the normalized entity
// plus every child the working set had resolved, so a restore does not
// need the backend.
type Snapshot struct {
	Unit    *wargame.Unit    `json:"unit,omitempty"`
	Weapon  *wargame.Weapon  `json:"weapon,omitempty"`
	WarGear *wargame.WarGear `json:"wargear,omitempty"`
	Rule    *wargame.Rule    `json:"rule,omitempty"`

	Rules          []wargame.Rule    `json:"rules,omitempty"`
	Weapons        []wargame.Weapon  `json:"weapons,omitempty"`
	WarGearCatalog []wargame.WarGear `json:"wargearCatalog,omitempty"`
}

// Kind names the entity the snapshot edits
func (s *Snapshot) Kind() wargame.DraftKind {
	switch {
	case s.Unit != nil:
		return wargame.DraftUnit
	case s.Weapon != nil:
		return wargame.DraftWeapon
	case s.WarGear != nil:
		return wargame.DraftWarGear
	case s.Rule != nil:
		return wargame.DraftRule
	}
	return ""
}

// EntityID returns the ID of the edited entity, empty when it is new
func (s *Snapshot) EntityID() string {
	switch {
	case s.Unit != nil:
		return s.Unit.ID
	case s.Weapon != nil:
		return s.Weapon.ID
	case s.WarGear != nil:
		return s.WarGear.ID
	case s.Rule != nil:
		return s.Rule.ID
	}
	return ""
}

// Catalog indexes the resolved children carried by the snapshot
func (s *Snapshot) Catalog() *wargame.Catalog {
	return wargame.NewCatalog().
		AddRules(s.Rules...).
		AddWeapons(s.Weapons...).
		AddWarGear(s.WarGearCatalog...)
}

func fromCatalog(c *wargame.Catalog, s *Snapshot) *Snapshot {
	for _, r := range c.Rules {
		s.Rules = append(s.Rules, *r)
	}
	for _, w := range c.Weapons {
		s.Weapons = append(s.Weapons, *w)
	}
	for _, g := range c.WarGear {
		s.WarGearCatalog = append(s.WarGearCatalog, *g)
	}
	sort.Slice(s.Rules, func(i, j int) bool { return s.Rules[i].ID < s.Rules[j].ID })
	sort.Slice(s.Weapons, func(i, j int) bool { return s.Weapons[i].ID < s.Weapons[j].ID })
	sort.Slice(s.WarGearCatalog, func(i, j int) bool { return s.WarGearCatalog[i].ID < s.WarGearCatalog[j].ID })
	return s
}

// Snapshot captures the unit working set
func (e *UnitEditor) Snapshot() *Snapshot {
	return fromCatalog(e.Catalog(), &Snapshot{Unit: e.Unit()})
}

// Snapshot captures the weapon working set
func (e *WeaponEditor) Snapshot() *Snapshot {
	return fromCatalog(NewCatalogFor(e.RuleHost), &Snapshot{Weapon: e.Weapon()})
}

// Snapshot captures the wargear working set
func (e *WarGearEditor) Snapshot() *Snapshot {
	return fromCatalog(NewCatalogFor(e.RuleHost), &Snapshot{WarGear: e.WarGear()})
}

// Snapshot captures the rule under edit
func (e *RuleEditor) Snapshot() *Snapshot {
	return &Snapshot{Rule: e.Rule()}
}

// RestoreUnit rebuilds a unit session from a snapshot
func (s *Snapshot) RestoreUnit() (*UnitEditor, error) {
	if s.Unit == nil {
		return nil, errors.InvalidArgumentf("snapshot holds a %s, not a unit", s.Kind())
	}
	return NewUnitEditor(s.Unit, s.Catalog()), nil
}

// RestoreWeapon rebuilds a weapon session from a snapshot
func (s *Snapshot) RestoreWeapon() (*WeaponEditor, error) {
	if s.Weapon == nil {
		return nil, errors.InvalidArgumentf("snapshot holds a %s, not a weapon", s.Kind())
	}
	return NewWeaponEditor(s.Weapon, s.Catalog()), nil
}

// RestoreWarGear rebuilds a wargear session from a snapshot
func (s *Snapshot) RestoreWarGear() (*WarGearEditor, error) {
	if s.WarGear == nil {
		return nil, errors.InvalidArgumentf("snapshot holds a %s, not wargear", s.Kind())
	}
	return NewWarGearEditor(s.WarGear, s.Catalog()), nil
}

// RestoreRule rebuilds a rule session from a snapshot
func (s *Snapshot) RestoreRule() (*RuleEditor, error) {
	if s.Rule == nil {
		return nil, errors.InvalidArgumentf("snapshot holds a %s, not a rule", s.Kind())
	}
	return NewRuleEditor(s.Rule), nil
}

package editor

import (
	"github.com/KirkDiggler/grimdank-editor/internal/entities/wargame"
	"github.com/KirkDiggler/grimdank-editor/internal/errors"
)

// WeaponDetails are the profile fields of a weapon
type WeaponDetails struct {
	Name    string
	Type    string
	Range   int
	Attacks string
	AP      string
}

// WeaponEditor is the working set of a weapon: its profile and rules
type WeaponEditor struct {
	*RuleHost

	id      string
	details WeaponDetails
}

// NewWeaponEditor hydrates a weapon working set. A nil weapon starts an
// empty one.
func NewWeaponEditor(weapon *wargame.Weapon, catalog *wargame.Catalog) *WeaponEditor {
	if weapon == nil {
		weapon = &wargame.Weapon{}
	}
	return &WeaponEditor{
		RuleHost: NewRuleHost(weapon.Points, weapon.Rules, catalog),
		id:       weapon.ID,
		details: WeaponDetails{
			Name:    weapon.Name,
			Type:    weapon.Type,
			Range:   weapon.Range,
			Attacks: weapon.Attacks.String(),
			AP:      weapon.AP.String(),
		},
	}
}

// ID returns the weapon ID, empty for a weapon not yet created
func (e *WeaponEditor) ID() string {
	return e.id
}

// Details returns the profile
func (e *WeaponEditor) Details() WeaponDetails {
	return e.details
}

// SetDetails replaces the profile. The type must name a slot.
func (e *WeaponEditor) SetDetails(d WeaponDetails) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Name", d.Name, vb)
	if _, ok := wargame.ParseSlotType(d.Type); !ok {
		vb.InvalidField("Type", "must be melee or ranged")
	}
	errors.ValidateRange("Range", d.Range, 0, wargame.MaxWeaponRange, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	slot, _ := wargame.ParseSlotType(d.Type)
	d.Type = string(slot)
	if slot == wargame.SlotMelee {
		d.Range = 0
	}
	e.details = d
	return nil
}

// Weapon normalizes the working set into the body the backend stores
func (e *WeaponEditor) Weapon() *wargame.Weapon {
	return &wargame.Weapon{
		ID:      e.id,
		Name:    e.details.Name,
		Type:    e.details.Type,
		Range:   e.details.Range,
		Attacks: wargame.Stat(e.details.Attacks),
		AP:      wargame.Stat(e.details.AP),
		Points:  e.BasePoints(),
		Rules:   e.RuleRefs(),
	}
}

// WarGearDetails are the descriptive fields of wargear
type WarGearDetails struct {
	Name        string
	Type        string
	Description string
}

// WarGearEditor is the working set of a piece of wargear
type WarGearEditor struct {
	*RuleHost

	id      string
	details WarGearDetails
}

// NewWarGearEditor hydrates a wargear working set. A nil gear starts an
// empty one.
func NewWarGearEditor(gear *wargame.WarGear, catalog *wargame.Catalog) *WarGearEditor {
	if gear == nil {
		gear = &wargame.WarGear{}
	}
	return &WarGearEditor{
		RuleHost: NewRuleHost(gear.Points, gear.Rules, catalog),
		id:       gear.ID,
		details: WarGearDetails{
			Name:        gear.Name,
			Type:        gear.Type,
			Description: gear.Description,
		},
	}
}

// ID returns the wargear ID, empty for wargear not yet created
func (e *WarGearEditor) ID() string {
	return e.id
}

// Details returns the descriptive fields
func (e *WarGearEditor) Details() WarGearDetails {
	return e.details
}

// SetDetails replaces the descriptive fields
func (e *WarGearEditor) SetDetails(d WarGearDetails) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Name", d.Name, vb)
	if err := vb.Build(); err != nil {
		return err
	}
	e.details = d
	return nil
}

// WarGear normalizes the working set into the body the backend stores
func (e *WarGearEditor) WarGear() *wargame.WarGear {
	return &wargame.WarGear{
		ID:          e.id,
		Name:        e.details.Name,
		Type:        e.details.Type,
		Description: e.details.Description,
		Points:      e.BasePoints(),
		Rules:       e.RuleRefs(),
	}
}

// RuleEditor is the working copy of a rule and its tier costs
type RuleEditor struct {
	rule wargame.Rule
}

// NewRuleEditor starts editing rule. A nil rule starts an empty one.
func NewRuleEditor(rule *wargame.Rule) *RuleEditor {
	e := &RuleEditor{}
	if rule != nil {
		e.rule = *rule
		e.rule.Points = append([]int(nil), rule.Points...)
	}
	return e
}

// ID returns the rule ID, empty for a rule not yet created
func (e *RuleEditor) ID() string {
	return e.rule.ID
}

// SetDetails replaces the descriptive fields
func (e *RuleEditor) SetDetails(name, description, ruleType string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Name", name, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	e.rule.Name = name
	e.rule.Description = description
	e.rule.Type = ruleType
	return nil
}

// SetPoints replaces the tier costs. At most three non-negative costs are
// allowed.
func (e *RuleEditor) SetPoints(costs []int) error {
	if len(costs) > wargame.MaxTier {
		return errors.InvalidArgumentf("a rule has at most %d tiers, got %d", wargame.MaxTier, len(costs))
	}
	for i, c := range costs {
		if c < 0 {
			return errors.InvalidArgumentf("tier %d cost cannot be negative: %d", i+1, c)
		}
	}
	e.rule.Points = append([]int(nil), costs...)
	return nil
}

// Points returns the tier costs
func (e *RuleEditor) Points() []int {
	return append([]int(nil), e.rule.Points...)
}

// Rule returns the body the backend stores
func (e *RuleEditor) Rule() *wargame.Rule {
	r := e.rule
	r.Points = append([]int{}, e.rule.Points...)
	return &r
}

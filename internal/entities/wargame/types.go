// Package wargame holds the army-building entities exchanged with the content backend
package wargame

// Rule is a special rule with up to three tier costs
type Rule struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`

	// Points holds 0-3 tier costs; index 0 is tier 1
	Points []int `json:"points"`
}

// TierCost returns the cost of the rule at tier, or 0 when the rule has no
// cost recorded for that tier
func (r *Rule) TierCost(tier int) int {
	if r == nil || tier < MinTier || tier > len(r.Points) {
		return 0
	}
	return r.Points[tier-1]
}

// RuleRef attaches a rule to a parent at a tier
type RuleRef struct {
	RuleID string `json:"ruleId"`
	Tier   int    `json:"tier"`
}

// WeaponRef attaches a weapon to a unit slot
type WeaponRef struct {
	WeaponID string   `json:"weaponId"`
	Quantity int      `json:"quantity"`
	Type     SlotType `json:"type"`
}

// Weapon is a melee or ranged weapon profile
type Weapon struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Type    string    `json:"type"`
	Range   int       `json:"range"`
	Attacks Stat      `json:"attacks"`
	AP      Stat      `json:"ap"`
	Points  int       `json:"points"`
	Rules   []RuleRef `json:"rules"`
}

// SlotType returns the weapon's slot, if its type names one
func (w *Weapon) SlotType() (SlotType, bool) {
	return ParseSlotType(w.Type)
}

// WarGear is equipment without a profile of its own
type WarGear struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Points      int       `json:"points"`
	Rules       []RuleRef `json:"rules"`
}

// Unit is a squad of identical models
type Unit struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Faction string `json:"faction,omitempty"`

	// Combat stats
	Melee   int `json:"melee"`
	Ranged  int `json:"ranged"`
	Morale  int `json:"morale"`
	Defense int `json:"defense"`

	// Amount is the current model count, Max the model cap
	Amount int `json:"amount"`
	Max    int `json:"max"`

	Points  int         `json:"points"`
	Rules   []RuleRef   `json:"rules"`
	Weapons []WeaponRef `json:"weapons"`
	WarGear []string    `json:"warGear"`
}

// ArmyBook collects the units and army-wide rules of a faction
type ArmyBook struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Faction     string    `json:"faction"`
	Description string    `json:"description"`
	Units       []string  `json:"unitIds"`
	Rules       []RuleRef `json:"rules"`
}

// ArmyList is a player's roster
type ArmyList struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Player      string   `json:"player"`
	Faction     string   `json:"faction"`
	Points      int      `json:"points"`
	Units       []string `json:"unitIds"`
	Description string   `json:"description"`
}

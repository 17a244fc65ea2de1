package wargame

// RuleWithTier is a resolved rule as the backend returns it inside populated entities
type RuleWithTier struct {
	Rule
	Tier int `json:"tier"`
}

// PopulatedWeapon is a weapon with its rule references resolved
type PopulatedWeapon struct {
	Weapon
	PopulatedRules []RuleWithTier `json:"populatedRules"`
}

// PopulatedWarGear is wargear with its rule references resolved
type PopulatedWarGear struct {
	WarGear
	PopulatedRules []RuleWithTier `json:"populatedRules"`
}

// PopulatedUnit is a unit with every attachment resolved
type PopulatedUnit struct {
	Unit
	PopulatedRules   []RuleWithTier `json:"populatedRules"`
	PopulatedWeapons []Weapon       `json:"populatedWeapons"`
	PopulatedWarGear []WarGear      `json:"populatedWarGear"`
}

// Catalog resolves attachment references to the entities they point at
type Catalog struct {
	Rules   map[string]*Rule
	Weapons map[string]*Weapon
	WarGear map[string]*WarGear
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		Rules:   make(map[string]*Rule),
		Weapons: make(map[string]*Weapon),
		WarGear: make(map[string]*WarGear),
	}
}

// AddRules indexes rules by ID
func (c *Catalog) AddRules(rules ...Rule) *Catalog {
	for i := range rules {
		r := rules[i]
		c.Rules[r.ID] = &r
	}
	return c
}

// AddWeapons indexes weapons by ID
func (c *Catalog) AddWeapons(weapons ...Weapon) *Catalog {
	for i := range weapons {
		w := weapons[i]
		c.Weapons[w.ID] = &w
	}
	return c
}

// AddWarGear indexes wargear by ID
func (c *Catalog) AddWarGear(gear ...WarGear) *Catalog {
	for i := range gear {
		g := gear[i]
		c.WarGear[g.ID] = &g
	}
	return c
}

// FromPopulatedUnit builds a catalog from the resolved children of a unit
func FromPopulatedUnit(u *PopulatedUnit) *Catalog {
	c := NewCatalog()
	if u == nil {
		return c
	}
	for _, r := range u.PopulatedRules {
		c.AddRules(r.Rule)
	}
	c.AddWeapons(u.PopulatedWeapons...)
	c.AddWarGear(u.PopulatedWarGear...)
	return c
}

// FromPopulatedRules builds a catalog from resolved rules
func FromPopulatedRules(rules []RuleWithTier) *Catalog {
	c := NewCatalog()
	for _, r := range rules {
		c.AddRules(r.Rule)
	}
	return c
}

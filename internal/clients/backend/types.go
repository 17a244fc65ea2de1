package backend

import (
	"github.com/KirkDiggler/grimdank-editor/internal/entities/wargame"
)

// Resource names a backend collection
type Resource string

// Backend collections
const (
	ResourceRules     Resource = "rules"
	ResourceWeapons   Resource = "weapons"
	ResourceWarGear   Resource = "wargear"
	ResourceUnits     Resource = "units"
	ResourceArmyBooks Resource = "armybooks"
	ResourceArmyLists Resource = "armylists"
)

// Page is one page of a list query. Total is nil when the backend answered
// with a bare array.
type Page[T any] struct {
	Items []T
	Total *int
}

// ListInput filters a list query
type ListInput struct {
	Name  string
	Limit int
	Skip  int
}

// CalculateRulePointsInput asks the backend to analyze a rule's text
type CalculateRulePointsInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// CalculateRulePointsOutput is the backend's analysis of a rule
type CalculateRulePointsOutput struct {
	Points      []int          `json:"calculated_points"`
	Breakdown   map[string]any `json:"breakdown"`
	Explanation string         `json:"explanation"`
}

// UnitPointsBreakdown itemizes a unit cost computed by the backend
type UnitPointsBreakdown struct {
	BaseCost        int `json:"base_cost"`
	UnitRulesCost   int `json:"unit_rules_cost"`
	WeaponsCost     int `json:"weapons_cost"`
	WeaponRulesCost int `json:"weapon_rules_cost"`
	WarGearCost     int `json:"wargear_cost"`
	TotalPoints     int `json:"total_points"`
}

// CalculateUnitPointsOutput is the backend's costing of a unit
type CalculateUnitPointsOutput struct {
	TotalPoints int                  `json:"total_points"`
	Breakdown   *UnitPointsBreakdown `json:"breakdown"`
}

type calculateUnitPointsRequest struct {
	Unit *wargame.Unit `json:"unit"`
}

type pageEnvelope[T any] struct {
	Data  []T  `json:"data"`
	Total *int `json:"total"`
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

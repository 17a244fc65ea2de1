package estimation

import (
	"github.com/KirkDiggler/grimdank-editor/internal/clients/backend"
	"github.com/KirkDiggler/grimdank-editor/internal/entities/wargame"
	"github.com/KirkDiggler/grimdank-editor/internal/estimator"
)

// Mode selects how a rule is estimated
type Mode int

const (
	// ModeManual scores the sliders of the manual form locally
	ModeManual Mode = iota
	// ModeAutomatic sends the rule's text to the backend for analysis
	ModeAutomatic
)

// String returns the mode name
func (m Mode) String() string {
	if m == ModeAutomatic {
		return "automatic"
	}
	return "manual"
}

// EstimateRuleInput defines the input for estimating a rule. Manual is read
// in manual mode, the text fields in automatic mode.
type EstimateRuleInput struct {
	Mode        Mode
	Manual      estimator.RuleInput
	Name        string
	Description string
	Type        string
}

// AutomaticInput builds an automatic-mode input from a rule's text
func AutomaticInput(rule *wargame.Rule) *EstimateRuleInput {
	return &EstimateRuleInput{
		Mode:        ModeAutomatic,
		Name:        rule.Name,
		Description: rule.Description,
		Type:        rule.Type,
	}
}

// RuleResult is a suggested tier triple
type RuleResult struct {
	Mode        Mode
	Points      [3]int
	Breakdown   map[string]any
	Explanation string
}

// EstimateRuleOutput holds a rule estimate
type EstimateRuleOutput struct {
	Result *RuleResult
}

// EstimateWeaponInput defines the input for estimating a weapon
type EstimateWeaponInput struct {
	Profile estimator.WeaponInput
}

// EstimateWeaponOutput holds a weapon estimate
type EstimateWeaponOutput struct {
	Estimate *estimator.WeaponEstimate
}

// EstimateUnitInput defines the input for costing a unit
type EstimateUnitInput struct {
	Unit *wargame.Unit
}

// EstimateUnitOutput holds the backend's costing of a unit
type EstimateUnitOutput struct {
	Result *backend.CalculateUnitPointsOutput
}

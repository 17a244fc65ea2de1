package estimator

import (
	"fmt"
	"math"
)

// Rule input bounds
const (
	MinBaseValue  = 1.0
	MaxBaseValue  = 10.0
	MinMultiplier = 0.1
	MaxMultiplier = 2.0
	MinComplexity = 1.0
	MaxComplexity = 5.0
	MinGameImpact = 1.0
	MaxGameImpact = 5.0

	minRuleBase = 2.0
	maxRuleBase = 150.0

	complexityWeight = 0.2
	gameImpactWeight = 0.3
	tier2Scale       = 1.1
	tier3Scale       = 1.21
)

// RuleInput is the manual-mode description of a rule's strength
type RuleInput struct {
	BaseValue  float64 `json:"baseValue"`
	Multiplier float64 `json:"multiplier"`
	Complexity float64 `json:"complexity"`
	GameImpact float64 `json:"gameImpact"`
}

// DefaultRuleInput is what a fresh estimator dialog starts from
func DefaultRuleInput() RuleInput {
	return RuleInput{
		BaseValue:  5,
		Multiplier: 1,
		Complexity: 3,
		GameImpact: 3,
	}
}

// Clamped returns the input with every field forced into its range
func (in RuleInput) Clamped() RuleInput {
	return RuleInput{
		BaseValue:  clamp(in.BaseValue, MinBaseValue, MaxBaseValue),
		Multiplier: clamp(in.Multiplier, MinMultiplier, MaxMultiplier),
		Complexity: clamp(in.Complexity, MinComplexity, MaxComplexity),
		GameImpact: clamp(in.GameImpact, MinGameImpact, MaxGameImpact),
	}
}

// RuleEstimate is a suggested tier triple with its working
type RuleEstimate struct {
	Input    RuleInput `json:"input"`
	Combined float64   `json:"combined"`
	Final    float64   `json:"final"`
	Base     float64   `json:"base"`
	Points   [3]int    `json:"points"`
}

// Explanation renders the estimate as a one-line summary
func (e *RuleEstimate) Explanation() string {
	return fmt.Sprintf(
		"base value %.1f + complexity %.0f×%.1f + impact %.0f×%.1f = %.2f; ×%.2f = %.2f; scaled to %.2f → %d/%d/%d",
		e.Input.BaseValue, e.Input.Complexity, complexityWeight, e.Input.GameImpact, gameImpactWeight,
		e.Combined, e.Input.Multiplier, e.Final, e.Base,
		e.Points[0], e.Points[1], e.Points[2],
	)
}

// EstimateRule computes tier costs from a manual rule description. Inputs
// outside their ranges are clamped first.
func EstimateRule(in RuleInput) *RuleEstimate {
	in = in.Clamped()

	combined := in.BaseValue + in.Complexity*complexityWeight + in.GameImpact*gameImpactWeight
	final := combined * in.Multiplier
	base := clamp(math.Pow(2, (final-1)/2), minRuleBase, maxRuleBase)

	tier1 := int(math.Round(base))
	tier2 := int(math.Round(float64(tier1) * tier2Scale))
	tier3 := int(math.Round(float64(tier1) * tier3Scale))

	return &RuleEstimate{
		Input:    in,
		Combined: combined,
		Final:    final,
		Base:     base,
		Points:   [3]int{tier1, tier2, tier3},
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

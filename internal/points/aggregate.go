// Package points computes the derived point cost of entities from their base
// points and attached rule tiers
package points

import (
	"github.com/KirkDiggler/grimdank-editor/internal/entities/wargame"
)

// RuleCost is a rule attachment resolved to its rule. Rule may be nil when
// the reference could not be resolved; it then costs nothing.
type RuleCost struct {
	Rule *wargame.Rule
	Tier int
}

// ClampTier forces a requested tier into [MinTier, MaxTier]
func ClampTier(tier int) int {
	if tier < wargame.MinTier {
		return wargame.MinTier
	}
	if tier > wargame.MaxTier {
		return wargame.MaxTier
	}
	return tier
}

// PointsOf returns the cost of a single rule attachment
func PointsOf(rc RuleCost) int {
	return rc.Rule.TierCost(ClampTier(rc.Tier))
}

// TotalPoints returns base plus the cost of every attached rule
func TotalPoints(base int, rules []RuleCost) int {
	total := base
	for _, rc := range rules {
		total += PointsOf(rc)
	}
	return total
}

// LineItem is one rule's contribution to a total
type LineItem struct {
	RuleID string
	Name   string
	Tier   int
	Points int
}

// Breakdown itemizes a total
type Breakdown struct {
	Base  int
	Rules []LineItem
	Total int
}

// Summarize itemizes TotalPoints(base, rules)
func Summarize(base int, rules []RuleCost) Breakdown {
	b := Breakdown{
		Base:  base,
		Rules: make([]LineItem, 0, len(rules)),
		Total: base,
	}
	for _, rc := range rules {
		item := LineItem{
			Tier:   ClampTier(rc.Tier),
			Points: PointsOf(rc),
		}
		if rc.Rule != nil {
			item.RuleID = rc.Rule.ID
			item.Name = rc.Rule.Name
		}
		b.Rules = append(b.Rules, item)
		b.Total += item.Points
	}
	return b
}

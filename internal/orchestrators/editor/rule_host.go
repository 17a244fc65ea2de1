package editor

import (
	"github.com/KirkDiggler/grimdank-editor/internal/attachments"
	"github.com/KirkDiggler/grimdank-editor/internal/entities/wargame"
	"github.com/KirkDiggler/grimdank-editor/internal/errors"
	"github.com/KirkDiggler/grimdank-editor/internal/points"
)

// RuleHost is the working set of an entity that carries base points and
// tiered rules: a weapon, a piece of wargear, or a unit. It is owned by one
// editor session and is not safe for concurrent use.
type RuleHost struct {
	field *points.Field
	rules *attachments.Set[string, RuleAttachment]
}

// NewRuleHost hydrates a working set from persisted references. Rules
// missing from catalog are kept at zero cost, tiers are clamped, and
// repeated references collapse to the first.
func NewRuleHost(base int, refs []wargame.RuleRef, catalog *wargame.Catalog) *RuleHost {
	h := &RuleHost{
		field: points.NewField(base),
		rules: attachments.New(ruleKey),
	}
	for _, ref := range refs {
		if ref.RuleID == "" {
			continue
		}
		h.rules.Add(RuleAttachment{
			RuleID: ref.RuleID,
			Tier:   points.ClampTier(ref.Tier),
			Rule:   lookupRule(catalog, ref.RuleID),
		})
	}
	h.field.Sync(h.rules.Len())
	return h
}

// AddRule attaches rule at tier. A rule already attached is left as is.
func (h *RuleHost) AddRule(rule *wargame.Rule, tier int) Decision {
	d := CheckRule(h.rules, rule, tier)
	if !d.Applied() {
		return d
	}

	h.rules.Add(RuleAttachment{RuleID: rule.ID, Tier: d.Stored, Rule: rule})
	h.field.Sync(h.rules.Len())
	return d
}

// RemoveRule detaches a rule. Removing an absent rule does nothing.
func (h *RuleHost) RemoveRule(ruleID string) bool {
	if _, ok := h.rules.Remove(ruleID); !ok {
		return false
	}
	h.field.Sync(h.rules.Len())
	return true
}

// ChangeTier moves an attached rule to another tier, clamped to 1..3
func (h *RuleHost) ChangeTier(ruleID string, tier int) Decision {
	d := CheckTier(h.rules, ruleID, tier)
	if !d.Applied() {
		return d
	}

	h.rules.Update(ruleID, func(a RuleAttachment) RuleAttachment {
		a.Tier = d.Stored
		return a
	})
	return d
}

// SetBasePoints writes the manual point value. It fails while rules are
// attached.
func (h *RuleHost) SetBasePoints(v int) error {
	return h.field.Set(v)
}

// Points returns the displayed point value
func (h *RuleHost) Points() int {
	return h.field.Value(h.costs())
}

// BasePoints returns the retained manual value
func (h *RuleHost) BasePoints() int {
	return h.field.Base()
}

// Mode says whether points are typed in or derived from rules
func (h *RuleHost) Mode() points.Mode {
	return h.field.Mode()
}

// Rules returns the attached rules in attachment order
func (h *RuleHost) Rules() []RuleAttachment {
	return h.rules.Items()
}

// Breakdown itemizes the displayed value
func (h *RuleHost) Breakdown() points.Breakdown {
	return points.Summarize(h.field.Base(), h.costs())
}

// RuleRefs normalizes the attached rules for the backend
func (h *RuleHost) RuleRefs() []wargame.RuleRef {
	refs := make([]wargame.RuleRef, 0, h.rules.Len())
	for _, a := range h.rules.Items() {
		refs = append(refs, wargame.RuleRef{RuleID: a.RuleID, Tier: a.Tier})
	}
	return refs
}

// ApplyBase writes an accepted estimate into the manual value. Like any
// manual write it is refused while rules are attached.
func (h *RuleHost) ApplyBase(v int) error {
	if err := h.field.Set(v); err != nil {
		return errors.Wrap(err, "cannot apply estimate").WithMeta("rules", h.rules.Len())
	}
	return nil
}

func (h *RuleHost) costs() []points.RuleCost {
	items := h.rules.Items()
	costs := make([]points.RuleCost, 0, len(items))
	for _, a := range items {
		costs = append(costs, a.cost())
	}
	return costs
}

func lookupRule(c *wargame.Catalog, id string) *wargame.Rule {
	if c == nil {
		return nil
	}
	return c.Rules[id]
}

package editor_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/grimdank-editor/internal/entities/wargame"
	"github.com/KirkDiggler/grimdank-editor/internal/errors"
	"github.com/KirkDiggler/grimdank-editor/internal/orchestrators/editor"
	"github.com/KirkDiggler/grimdank-editor/internal/points"
	"github.com/KirkDiggler/grimdank-editor/internal/testutils/builders"
)

type RuleHostTestSuite struct {
	suite.Suite
	furious *wargame.Rule
	stubby  *wargame.Rule
	host    *editor.RuleHost
}

func TestRuleHostSuite(t *testing.T) {
	suite.Run(t, new(RuleHostTestSuite))
}

func (s *RuleHostTestSuite) SetupTest() {
	s.furious = builders.Rule("furious", 5, 10, 15)
	s.stubby = builders.Rule("stubby", 4)
	s.host = editor.NewRuleHost(8, nil, nil)
}

func (s *RuleHostTestSuite) TestWeaponWithTierTwoRule() {
	d := s.host.AddRule(s.furious, 2)

	s.Equal(editor.Accepted, d.Outcome)
	s.Equal(18, s.host.Points())
	s.Equal(points.Derived, s.host.Mode())
}

func (s *RuleHostTestSuite) TestTierClamping() {
	testCases := []struct {
		name      string
		requested int
		stored    int
		outcome   editor.Outcome
	}{
		{"zero becomes one", 0, 1, editor.Clamped},
		{"negative becomes one", -3, 1, editor.Clamped},
		{"seven becomes three", 7, 3, editor.Clamped},
		{"in range", 2, 2, editor.Accepted},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			host := editor.NewRuleHost(0, nil, nil)
			d := host.AddRule(s.furious, tc.requested)
			s.Equal(tc.outcome, d.Outcome)
			s.Equal(tc.stored, d.Stored)
			s.Equal(tc.stored, host.Rules()[0].Tier)
			s.NoError(d.Err())
		})
	}
}

func (s *RuleHostTestSuite) TestDuplicateRuleIsNoOp() {
	s.host.AddRule(s.furious, 1)
	before := s.host.Points()

	d := s.host.AddRule(s.furious, 3)

	s.Equal(editor.Duplicate, d.Outcome)
	s.Equal(editor.ReasonDuplicate, d.Reason)
	s.False(d.Applied())
	s.Len(s.host.Rules(), 1)
	s.Equal(1, s.host.Rules()[0].Tier)
	s.Equal(before, s.host.Points())

	err := d.Err()
	s.True(errors.IsAlreadyExists(err))
	s.True(errors.IsValidationRejection(err))
}

func (s *RuleHostTestSuite) TestNilRuleRejected() {
	d := s.host.AddRule(nil, 1)
	s.Equal(editor.Rejected, d.Outcome)
	s.Equal(editor.ReasonUnknown, d.Reason)
	s.True(errors.IsInvalidArgument(d.Err()))
}

func (s *RuleHostTestSuite) TestChangeTier() {
	s.host.AddRule(s.furious, 1)

	d := s.host.ChangeTier("furious", 9)
	s.Equal(editor.Clamped, d.Outcome)
	s.Equal(3, s.host.Rules()[0].Tier)
	s.Equal(23, s.host.Points())

	d = s.host.ChangeTier("missing", 2)
	s.Equal(editor.Rejected, d.Outcome)
}

func (s *RuleHostTestSuite) TestTierBeyondPointsCostsNothing() {
	s.host.AddRule(s.stubby, 3)
	s.Equal(8, s.host.Points())

	s.host.ChangeTier("stubby", 1)
	s.Equal(12, s.host.Points())
}

func (s *RuleHostTestSuite) TestManualValueRestoredAfterLastRuleRemoved() {
	s.Require().NoError(s.host.SetBasePoints(11))

	s.host.AddRule(s.furious, 1)
	s.host.AddRule(s.stubby, 1)
	s.Equal(20, s.host.Points())

	err := s.host.SetBasePoints(99)
	s.True(errors.IsFailedPrecondition(err))

	s.True(s.host.RemoveRule("furious"))
	s.Equal(points.Derived, s.host.Mode())
	s.True(s.host.RemoveRule("stubby"))

	s.Equal(points.Manual, s.host.Mode())
	s.Equal(11, s.host.Points())
}

func (s *RuleHostTestSuite) TestRemoveAbsentRuleIsNoOp() {
	s.host.AddRule(s.furious, 2)
	s.False(s.host.RemoveRule("missing"))
	s.Len(s.host.Rules(), 1)
}

func (s *RuleHostTestSuite) TestApplyBaseWhileManual() {
	s.Require().NoError(s.host.ApplyBase(20))

	s.Equal(20, s.host.BasePoints())
	s.Equal(20, s.host.Points())
	s.Equal(points.Manual, s.host.Mode())
}

func (s *RuleHostTestSuite) TestApplyBaseWhileDerivedIsRefused() {
	s.host.AddRule(s.furious, 1)
	before := s.host.Points()

	err := s.host.ApplyBase(20)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(1, errors.GetMeta(err)["rules"])
	s.Equal(8, s.host.BasePoints())
	s.Equal(before, s.host.Points())

	// the typed value comes back once the rule is gone
	s.True(s.host.RemoveRule("furious"))
	s.Equal(8, s.host.Points())
}

func (s *RuleHostTestSuite) TestHydration() {
	catalog := wargame.NewCatalog().AddRules(*s.furious)
	host := editor.NewRuleHost(8, []wargame.RuleRef{
		{RuleID: "furious", Tier: 7},
		{RuleID: "furious", Tier: 1},
		{RuleID: "ghost", Tier: 2},
		{RuleID: "", Tier: 1},
	}, catalog)

	rules := host.Rules()
	s.Require().Len(rules, 2)
	s.Equal(3, rules[0].Tier)
	s.Nil(rules[1].Rule)
	s.Equal(0, rules[1].Points())
	s.Equal(23, host.Points())

	s.Equal([]wargame.RuleRef{
		{RuleID: "furious", Tier: 3},
		{RuleID: "ghost", Tier: 2},
	}, host.RuleRefs())
}

func (s *RuleHostTestSuite) TestBreakdown() {
	s.host.AddRule(s.furious, 2)
	b := s.host.Breakdown()

	s.Equal(8, b.Base)
	s.Equal(18, b.Total)
	s.Require().Len(b.Rules, 1)
	s.Equal(points.LineItem{RuleID: "furious", Name: "Rule furious", Tier: 2, Points: 10}, b.Rules[0])
}

func (s *RuleHostTestSuite) TestTotalMatchesFormulaAfterEveryMutation() {
	rules := []*wargame.Rule{
		s.furious,
		s.stubby,
		builders.Rule("empty"),
		builders.Rule("pair", 2, 6),
	}
	tiers := []int{-1, 0, 1, 2, 3, 4}

	check := func() {
		expected := s.host.BasePoints()
		for _, a := range s.host.Rules() {
			s.GreaterOrEqual(a.Tier, 1)
			s.LessOrEqual(a.Tier, 3)
			expected += a.Rule.TierCost(a.Tier)
		}
		if len(s.host.Rules()) == 0 {
			s.Equal(points.Manual, s.host.Mode())
		}
		s.Equal(expected, s.host.Points())
	}

	for i, r := range rules {
		s.host.AddRule(r, tiers[i%len(tiers)])
		check()
	}
	for i, r := range rules {
		s.host.ChangeTier(r.ID, tiers[(i+3)%len(tiers)])
		check()
	}
	for _, r := range rules {
		s.host.RemoveRule(r.ID)
		check()
	}
	s.Equal(8, s.host.Points())
}

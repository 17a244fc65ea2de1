package estimator_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/grimdank-editor/internal/estimator"
)

type RuleEstimatorTestSuite struct {
	suite.Suite
}

func TestRuleEstimatorSuite(t *testing.T) {
	suite.Run(t, new(RuleEstimatorTestSuite))
}

func (s *RuleEstimatorTestSuite) TestEstimateRule() {
	testCases := []struct {
		name     string
		input    estimator.RuleInput
		expected [3]int
	}{
		{
			name:     "defaults",
			input:    estimator.DefaultRuleInput(),
			expected: [3]int{7, 8, 8},
		},
		{
			name:     "weakest rule hits the floor",
			input:    estimator.RuleInput{BaseValue: 1, Multiplier: 0.1, Complexity: 1, GameImpact: 1},
			expected: [3]int{2, 2, 2},
		},
		{
			name:     "strongest rule hits the ceiling",
			input:    estimator.RuleInput{BaseValue: 10, Multiplier: 2, Complexity: 5, GameImpact: 5},
			expected: [3]int{150, 165, 182},
		},
		{
			name:     "mid strength",
			input:    estimator.RuleInput{BaseValue: 8, Multiplier: 1, Complexity: 5, GameImpact: 5},
			expected: [3]int{27, 30, 33},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			est := estimator.EstimateRule(tc.input)
			s.Equal(tc.expected, est.Points)
		})
	}
}

func (s *RuleEstimatorTestSuite) TestInputsAreClamped() {
	est := estimator.EstimateRule(estimator.RuleInput{
		BaseValue:  42,
		Multiplier: -1,
		Complexity: 0,
		GameImpact: 9,
	})

	s.Equal(estimator.RuleInput{
		BaseValue:  10,
		Multiplier: 0.1,
		Complexity: 1,
		GameImpact: 5,
	}, est.Input)
}

func (s *RuleEstimatorTestSuite) TestBreakdown() {
	est := estimator.EstimateRule(estimator.DefaultRuleInput())

	s.InDelta(6.5, est.Combined, 1e-9)
	s.InDelta(6.5, est.Final, 1e-9)
	s.InDelta(6.727, est.Base, 1e-3)
	s.Contains(est.Explanation(), "7/8/8")
}

func (s *RuleEstimatorTestSuite) TestTiersNeverDecrease() {
	for base := 1.0; base <= 10; base++ {
		for mult := 0.1; mult <= 2.0; mult += 0.3 {
			est := estimator.EstimateRule(estimator.RuleInput{
				BaseValue: base, Multiplier: mult, Complexity: 3, GameImpact: 3,
			})
			s.LessOrEqual(est.Points[0], est.Points[1])
			s.LessOrEqual(est.Points[1], est.Points[2])
			s.GreaterOrEqual(est.Points[0], 2)
		}
	}
}

package estimation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/grimdank-editor/internal/clients/backend"
	backendmock "github.com/KirkDiggler/grimdank-editor/internal/clients/backend/mock"
	"github.com/KirkDiggler/grimdank-editor/internal/errors"
	"github.com/KirkDiggler/grimdank-editor/internal/estimator"
	"github.com/KirkDiggler/grimdank-editor/internal/orchestrators/estimation"
	"github.com/KirkDiggler/grimdank-editor/internal/testutils/builders"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockBackend *backendmock.MockClient
	service     estimation.Service
	ctx         context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockBackend = backendmock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	svc, err := estimation.NewOrchestrator(&estimation.Config{Backend: s.mockBackend})
	s.Require().NoError(err)
	s.service = svc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNewOrchestratorRequiresBackend() {
	_, err := estimation.NewOrchestrator(&estimation.Config{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestManualRuleIsLocal() {
	out, err := s.service.EstimateRule(s.ctx, &estimation.EstimateRuleInput{
		Mode:   estimation.ModeManual,
		Manual: estimator.DefaultRuleInput(),
	})
	s.Require().NoError(err)

	s.Equal([3]int{7, 8, 8}, out.Result.Points)
	s.Equal(estimation.ModeManual, out.Result.Mode)
	s.Contains(out.Result.Breakdown, "combined")
	s.NotEmpty(out.Result.Explanation)
}

func (s *OrchestratorTestSuite) TestAutomaticRule() {
	rule := builders.Rule("fear", 1)
	rule.Description = "Enemies within 6\" test morale"

	s.mockBackend.EXPECT().CalculateRulePoints(s.ctx, &backend.CalculateRulePointsInput{
		Name:        "Rule fear",
		Description: rule.Description,
		Type:        "special",
	}).Return(&backend.CalculateRulePointsOutput{
		Points:      []int{6, 7, 8},
		Breakdown:   map[string]any{"keywords": 2.0},
		Explanation: "morale effects",
	}, nil)

	out, err := s.service.EstimateRule(s.ctx, estimation.AutomaticInput(rule))
	s.Require().NoError(err)
	s.Equal([3]int{6, 7, 8}, out.Result.Points)
	s.Equal("morale effects", out.Result.Explanation)
	s.Equal(estimation.ModeAutomatic, out.Result.Mode)
}

func (s *OrchestratorTestSuite) TestAutomaticRuleNeedsText() {
	_, err := s.service.EstimateRule(s.ctx, &estimation.EstimateRuleInput{Mode: estimation.ModeAutomatic, Name: "Fear"})
	s.True(errors.IsInvalidArgument(err))
	s.True(errors.IsEstimationFailure(err))
}

func (s *OrchestratorTestSuite) TestAutomaticRuleBackendFailure() {
	s.mockBackend.EXPECT().CalculateRulePoints(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("backend unavailable"))

	_, err := s.service.EstimateRule(s.ctx, &estimation.EstimateRuleInput{
		Mode:        estimation.ModeAutomatic,
		Name:        "Fear",
		Description: "Scary",
	})
	s.True(errors.IsUnavailable(err))
	s.True(errors.IsEstimationFailure(err))
	s.Equal("estimate_rule", errors.GetMeta(err)["operation"])
}

func (s *OrchestratorTestSuite) TestAutomaticRuleShortTriple() {
	s.mockBackend.EXPECT().CalculateRulePoints(s.ctx, gomock.Any()).
		Return(&backend.CalculateRulePointsOutput{Points: []int{4}}, nil)

	_, err := s.service.EstimateRule(s.ctx, &estimation.EstimateRuleInput{
		Mode:        estimation.ModeAutomatic,
		Name:        "Fear",
		Description: "Scary",
	})
	s.True(errors.IsInternal(err))
	s.True(errors.IsEstimationFailure(err))
}

func (s *OrchestratorTestSuite) TestUnknownMode() {
	_, err := s.service.EstimateRule(s.ctx, &estimation.EstimateRuleInput{Mode: estimation.Mode(9)})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestWeapon() {
	out, err := s.service.EstimateWeapon(s.ctx, &estimation.EstimateWeaponInput{
		Profile: estimator.WeaponInput{Type: "ranged", Range: 24, Attacks: "2", AP: "1"},
	})
	s.Require().NoError(err)
	s.Equal(11, out.Estimate.Points)
}

func (s *OrchestratorTestSuite) TestUnit() {
	unit := builders.NewUnitBuilder().Build()
	s.mockBackend.EXPECT().CalculateUnitPoints(s.ctx, unit).Return(&backend.CalculateUnitPointsOutput{
		TotalPoints: 120,
		Breakdown:   &backend.UnitPointsBreakdown{BaseCost: 80, WeaponsCost: 40, TotalPoints: 120},
	}, nil)

	out, err := s.service.EstimateUnit(s.ctx, &estimation.EstimateUnitInput{Unit: unit})
	s.Require().NoError(err)
	s.Equal(120, out.Result.TotalPoints)

	_, err = s.service.EstimateUnit(s.ctx, &estimation.EstimateUnitInput{})
	s.True(errors.IsEstimationFailure(err))
}

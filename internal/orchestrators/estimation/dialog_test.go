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
	"github.com/KirkDiggler/grimdank-editor/internal/orchestrators/editor"
	"github.com/KirkDiggler/grimdank-editor/internal/orchestrators/estimation"
	estimationmock "github.com/KirkDiggler/grimdank-editor/internal/orchestrators/estimation/mock"
	"github.com/KirkDiggler/grimdank-editor/internal/points"
	"github.com/KirkDiggler/grimdank-editor/internal/testutils/builders"
)

type DialogTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockBackend *backendmock.MockClient
	service     estimation.Service
	ctx         context.Context
}

func TestDialogSuite(t *testing.T) {
	suite.Run(t, new(DialogTestSuite))
}

func (s *DialogTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockBackend = backendmock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	svc, err := estimation.NewOrchestrator(&estimation.Config{Backend: s.mockBackend})
	s.Require().NoError(err)
	s.service = svc
}

func (s *DialogTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DialogTestSuite) TestNothingToApply() {
	d := estimation.NewRuleDialog(s.service)
	s.Nil(d.Result())

	err := d.Apply(editor.NewRuleEditor(nil))
	s.True(errors.IsFailedPrecondition(err))
}

func (s *DialogTestSuite) TestFailureKeepsPreviousResult() {
	d := estimation.NewRuleDialog(s.service)

	s.Require().NoError(d.Run(s.ctx, &estimation.EstimateRuleInput{Manual: estimator.DefaultRuleInput()}))
	s.Equal([3]int{7, 8, 8}, d.Result().Points)

	s.mockBackend.EXPECT().CalculateRulePoints(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("backend unavailable"))

	err := d.Run(s.ctx, &estimation.EstimateRuleInput{Mode: estimation.ModeAutomatic, Name: "Fear", Description: "Scary"})
	s.Error(err)
	s.True(errors.IsEstimationFailure(d.Err()))
	s.Equal([3]int{7, 8, 8}, d.Result().Points)

	// a later success clears the error
	s.Require().NoError(d.Run(s.ctx, &estimation.EstimateRuleInput{Manual: estimator.DefaultRuleInput()}))
	s.NoError(d.Err())
}

func (s *DialogTestSuite) TestRuleApplyWritesTriple() {
	d := estimation.NewRuleDialog(s.service)
	target := editor.NewRuleEditor(builders.Rule("fear", 1))

	s.Require().NoError(d.Run(s.ctx, &estimation.EstimateRuleInput{Manual: estimator.DefaultRuleInput()}))
	// running alone does not touch the rule
	s.Equal([]int{1}, target.Points())

	s.Require().NoError(d.Apply(target))
	s.Equal([]int{7, 8, 8}, target.Points())
}

func (s *DialogTestSuite) TestWeaponApplyWritesBase() {
	target := editor.NewWeaponEditor(builders.Weapon("sword", "melee", 1), nil)
	s.Equal(points.Manual, target.Mode())

	d := estimation.NewWeaponDialog(s.service)
	s.Require().NoError(d.RunFor(s.ctx, target))
	s.Equal(3, d.Result().Points)
	s.Equal(1, target.Points())

	s.Require().NoError(d.Apply(target))
	s.Equal(3, target.BasePoints())
	s.Equal(3, target.Points())
}

func (s *DialogTestSuite) TestWeaponApplyRefusedWhileRulesAttached() {
	target := editor.NewWeaponEditor(builders.Weapon("sword", "melee", 1), nil)
	target.AddRule(builders.Rule("rending", 3), 1)
	s.Equal(points.Derived, target.Mode())

	d := estimation.NewWeaponDialog(s.service)
	s.Require().NoError(d.RunFor(s.ctx, target))

	err := d.Apply(target)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(1, target.BasePoints())
	s.Equal(4, target.Points())
}

func (s *DialogTestSuite) TestUnitApplyWritesBase() {
	target := editor.NewUnitEditor(builders.NewUnitBuilder().Build(), nil)
	d := estimation.NewUnitDialog(s.service)

	s.mockBackend.EXPECT().CalculateUnitPoints(s.ctx, target.Unit()).
		Return(&backend.CalculateUnitPointsOutput{TotalPoints: 95}, nil)
	s.Require().NoError(d.Run(s.ctx, target))
	s.Equal(50, target.BasePoints())

	s.mockBackend.EXPECT().CalculateUnitPoints(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("boom"))
	s.Error(d.Run(s.ctx, target))

	s.Require().NoError(d.Apply(target))
	s.Equal(95, target.BasePoints())
	s.Equal(95, target.Points())
}

func (s *DialogTestSuite) TestUnitApplyRefusedWhileRulesAttached() {
	target := editor.NewUnitEditor(builders.NewUnitBuilder().Build(), nil)
	target.AddRule(builders.Rule("furious", 5, 10, 15), 1)
	s.Equal(55, target.Points())

	d := estimation.NewUnitDialog(s.service)
	s.mockBackend.EXPECT().CalculateUnitPoints(s.ctx, target.Unit()).
		Return(&backend.CalculateUnitPointsOutput{
			TotalPoints: 55,
			Breakdown:   &backend.UnitPointsBreakdown{BaseCost: 50, UnitRulesCost: 5, TotalPoints: 55},
		}, nil)
	s.Require().NoError(d.Run(s.ctx, target))

	err := d.Apply(target)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(50, target.BasePoints())
	s.Equal(55, target.Points())

	s.True(target.RemoveRule("furious"))
	s.Equal(50, target.Points())
}

func (s *DialogTestSuite) TestUnitDialogKeepsResultAcrossFailure() {
	svc := estimationmock.NewMockService(s.ctrl)
	target := editor.NewUnitEditor(builders.NewUnitBuilder().Build(), nil)
	d := estimation.NewUnitDialog(svc)

	svc.EXPECT().EstimateUnit(s.ctx, &estimation.EstimateUnitInput{Unit: target.Unit()}).
		Return(&estimation.EstimateUnitOutput{Result: &backend.CalculateUnitPointsOutput{TotalPoints: 70}}, nil)
	svc.EXPECT().EstimateUnit(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("backend unavailable").WithKind(errors.KindEstimationFailure))

	s.Require().NoError(d.Run(s.ctx, target))
	s.Error(d.Run(s.ctx, target))

	s.True(errors.IsEstimationFailure(d.Err()))
	s.Equal(70, d.Result().TotalPoints)
}

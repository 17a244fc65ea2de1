package roster_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	backendmock "github.com/KirkDiggler/grimdank-editor/internal/clients/backend/mock"
	"github.com/KirkDiggler/grimdank-editor/internal/entities/wargame"
	"github.com/KirkDiggler/grimdank-editor/internal/errors"
	"github.com/KirkDiggler/grimdank-editor/internal/orchestrators/roster"
	"github.com/KirkDiggler/grimdank-editor/internal/testutils/builders"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockBackend *backendmock.MockClient
	service     roster.Service
	ctx         context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockBackend = backendmock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	svc, err := roster.NewOrchestrator(&roster.Config{Backend: s.mockBackend})
	s.Require().NoError(err)
	s.service = svc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func populated(unit *wargame.Unit, rules ...*wargame.Rule) *wargame.PopulatedUnit {
	p := &wargame.PopulatedUnit{Unit: *unit}
	for _, r := range rules {
		p.PopulatedRules = append(p.PopulatedRules, wargame.RuleWithTier{Rule: *r})
	}
	return p
}

func (s *OrchestratorTestSuite) TestTotal() {
	s.mockBackend.EXPECT().GetArmyList(gomock.Any(), "list-1").Return(&wargame.ArmyList{
		ID:    "list-1",
		Units: []string{"squad", "ghost", "squad", "hero"},
	}, nil)

	squad := builders.NewUnitBuilder().WithID("squad").WithPoints(50).WithRule("fear", 2).Build()
	hero := builders.NewUnitBuilder().WithID("hero").WithPoints(80).WithRule("unknown", 1).Build()

	s.mockBackend.EXPECT().GetUnit(gomock.Any(), "squad").
		Return(populated(squad, builders.Rule("fear", 2, 4, 6)), nil)
	s.mockBackend.EXPECT().GetUnit(gomock.Any(), "hero").Return(populated(hero), nil)
	s.mockBackend.EXPECT().GetUnit(gomock.Any(), "ghost").Return(nil, errors.NotFound("unit not found"))

	out, err := s.service.Total(s.ctx, &roster.TotalInput{ArmyListID: "list-1"})
	s.Require().NoError(err)

	s.Equal(54+54+80, out.Total)
	s.Equal([]string{"ghost"}, out.Missing)
	s.Require().Len(out.Units, 3)
	s.Equal("squad", out.Units[0].UnitID)
	s.Equal(4, out.Units[0].Breakdown.Rules[0].Points)
	s.Equal(0, out.Units[2].Breakdown.Rules[0].Points)
}

func (s *OrchestratorTestSuite) TestBackendFailure() {
	s.mockBackend.EXPECT().GetArmyList(gomock.Any(), "list-1").Return(&wargame.ArmyList{
		ID:    "list-1",
		Units: []string{"squad"},
	}, nil)
	s.mockBackend.EXPECT().GetUnit(gomock.Any(), "squad").Return(nil, errors.Unavailable("backend down"))

	_, err := s.service.Total(s.ctx, &roster.TotalInput{ArmyListID: "list-1"})
	s.True(errors.IsUnavailable(err))
}

func (s *OrchestratorTestSuite) TestUnknownList() {
	s.mockBackend.EXPECT().GetArmyList(gomock.Any(), "nope").Return(nil, errors.NotFound("army list not found"))

	_, err := s.service.Total(s.ctx, &roster.TotalInput{ArmyListID: "nope"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestEmptyList() {
	s.mockBackend.EXPECT().GetArmyList(gomock.Any(), "empty").Return(&wargame.ArmyList{ID: "empty"}, nil)

	out, err := s.service.Total(s.ctx, &roster.TotalInput{ArmyListID: "empty"})
	s.Require().NoError(err)
	s.Equal(0, out.Total)
	s.Empty(out.Units)
}

func (s *OrchestratorTestSuite) TestBlankUnitIDsIgnored() {
	s.mockBackend.EXPECT().GetArmyList(gomock.Any(), "list-2").Return(&wargame.ArmyList{
		ID:    "list-2",
		Units: []string{"", "hero", ""},
	}, nil)
	hero := builders.NewUnitBuilder().WithID("hero").WithPoints(80).Build()
	s.mockBackend.EXPECT().GetUnit(gomock.Any(), "hero").Return(populated(hero), nil)

	out, err := s.service.Total(s.ctx, &roster.TotalInput{ArmyListID: "list-2"})
	s.Require().NoError(err)

	s.Equal(80, out.Total)
	s.Empty(out.Missing)
	s.Len(out.Units, 1)
}

func (s *OrchestratorTestSuite) TestInputRequired() {
	_, err := s.service.Total(s.ctx, &roster.TotalInput{})
	s.True(errors.IsInvalidArgument(err))
}

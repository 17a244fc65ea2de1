package backend_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/grimdank-editor/internal/clients/backend"
	"github.com/KirkDiggler/grimdank-editor/internal/entities/wargame"
	"github.com/KirkDiggler/grimdank-editor/internal/errors"
)

type ClientTestSuite struct {
	suite.Suite
	ctx      context.Context
	mux      *http.ServeMux
	server   *httptest.Server
	client   backend.Client
	lastReq  *http.Request
	lastBody []byte
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lastReq = r
		s.lastBody, _ = io.ReadAll(r.Body)
		s.mux.ServeHTTP(w, r)
	}))

	var err error
	s.client, err = backend.New(&backend.Config{BaseURL: s.server.URL + "/api/v1"})
	s.Require().NoError(err)
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) respond(pattern string, status int, body string) {
	s.mux.HandleFunc(pattern, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

func (s *ClientTestSuite) TestListBareArray() {
	s.respond("GET /api/v1/rules", http.StatusOK,
		`[{"id":"r1","name":"Furious","points":[5,10,15]},{"id":"r2","name":"Fearless","points":[3]}]`)

	page, err := s.client.ListRules(s.ctx, &backend.ListInput{Name: "f", Limit: 10, Skip: 20})
	s.Require().NoError(err)
	s.Len(page.Items, 2)
	s.Nil(page.Total)
	s.Equal([]int{5, 10, 15}, page.Items[0].Points)

	q := s.lastReq.URL.Query()
	s.Equal("f", q.Get("name"))
	s.Equal("10", q.Get("limit"))
	s.Equal("20", q.Get("skip"))
}

func (s *ClientTestSuite) TestListEnvelope() {
	s.respond("GET /api/v1/weapons", http.StatusOK,
		`{"data":[{"id":"w1","name":"Bolter","type":"ranged","range":24,"attacks":2,"ap":"1"}],"total":41}`)

	page, err := s.client.ListWeapons(s.ctx, &backend.ListInput{Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(page.Items, 1)
	s.Require().NotNil(page.Total)
	s.Equal(41, *page.Total)
	s.Equal(wargame.Stat("2"), page.Items[0].Attacks)
	s.Empty(s.lastReq.URL.Query().Get("name"))
}

func (s *ClientTestSuite) TestListNullIsEmpty() {
	s.respond("GET /api/v1/wargear", http.StatusOK, `null`)

	page, err := s.client.ListWarGear(s.ctx, nil)
	s.Require().NoError(err)
	s.NotNil(page.Items)
	s.Empty(page.Items)
}

func (s *ClientTestSuite) TestListFailure() {
	s.respond("GET /api/v1/rules", http.StatusInternalServerError, "database unreachable\n")

	_, err := s.client.ListRules(s.ctx, &backend.ListInput{})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Equal("database unreachable", errors.GetMessage(err))
}

func (s *ClientTestSuite) TestGetUnitPopulated() {
	s.respond("GET /api/v1/units/u1", http.StatusOK, `{
		"id":"u1","name":"Squad","amount":5,"max":10,"points":50,
		"rules":[{"ruleId":"r1","tier":2}],
		"weapons":[{"weaponId":"w1","quantity":5,"type":"ranged"}],
		"warGear":["g1"],
		"populatedRules":[{"id":"r1","name":"Furious","points":[5,10,15],"tier":2}]
	}`)

	unit, err := s.client.GetUnit(s.ctx, "u1")
	s.Require().NoError(err)
	s.Equal("u1", unit.ID)
	s.Equal(wargame.SlotRanged, unit.Weapons[0].Type)
	s.Equal([]string{"g1"}, unit.WarGear)
	s.Require().Len(unit.PopulatedRules, 1)
	s.Equal(2, unit.PopulatedRules[0].Tier)
}

func (s *ClientTestSuite) TestGetNotFound() {
	s.respond("GET /api/v1/rules/missing", http.StatusNotFound, `{"message":"Rule not found"}`)

	_, err := s.client.GetRule(s.ctx, "missing")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal("Rule not found", errors.GetMessage(err))
	s.Equal("missing", errors.GetMeta(err)["id"])
}

func (s *ClientTestSuite) TestGetRequiresID() {
	_, err := s.client.GetWeapon(s.ctx, "")
	s.True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestSaveCreatesWithoutID() {
	s.respond("POST /api/v1/units", http.StatusCreated, `{"id":"new-id","name":"Squad","amount":5,"max":5}`)

	saved, err := s.client.SaveUnit(s.ctx, &wargame.Unit{
		Name:    "Squad",
		Amount:  5,
		Max:     5,
		Rules:   []wargame.RuleRef{{RuleID: "r1", Tier: 3}},
		Weapons: []wargame.WeaponRef{{WeaponID: "w1", Quantity: 5, Type: wargame.SlotMelee}},
		WarGear: []string{"g1"},
	})
	s.Require().NoError(err)
	s.Equal("new-id", saved.ID)
	s.Equal(http.MethodPost, s.lastReq.Method)

	var sent map[string]any
	s.Require().NoError(json.Unmarshal(s.lastBody, &sent))
	s.Equal([]any{map[string]any{"ruleId": "r1", "tier": float64(3)}}, sent["rules"])
	s.Equal([]any{map[string]any{"weaponId": "w1", "quantity": float64(5), "type": "melee"}}, sent["weapons"])
	s.Equal([]any{"g1"}, sent["warGear"])
}

func (s *ClientTestSuite) TestSaveUpdatesWithID() {
	s.respond("PUT /api/v1/weapons/w1", http.StatusOK, ``)

	in := &wargame.Weapon{ID: "w1", Name: "Bolter", Points: 12}
	saved, err := s.client.SaveWeapon(s.ctx, in)
	s.Require().NoError(err)
	s.Equal(in, saved)
	s.Equal(http.MethodPut, s.lastReq.Method)
}

func (s *ClientTestSuite) TestSaveFailureIsPersistenceFailure() {
	s.respond("PUT /api/v1/rules/r1", http.StatusConflict, `{"error":"name already taken"}`)

	_, err := s.client.SaveRule(s.ctx, &wargame.Rule{ID: "r1", Name: "Dup"})
	s.Require().Error(err)
	s.True(errors.IsPersistenceFailure(err))
	s.True(errors.IsAlreadyExists(err))
	s.Equal("name already taken", errors.GetMessage(err))
}

func (s *ClientTestSuite) TestSaveFailureWithoutMessage() {
	s.respond("POST /api/v1/wargear", http.StatusBadGateway, ``)

	_, err := s.client.SaveWarGear(s.ctx, &wargame.WarGear{Name: "Shield"})
	s.Require().Error(err)
	s.True(errors.IsPersistenceFailure(err))
	s.Equal("failed to save wargear", errors.GetMessage(err))
}

func (s *ClientTestSuite) TestDelete() {
	s.respond("DELETE /api/v1/units/u1", http.StatusNoContent, ``)

	s.Require().NoError(s.client.Delete(s.ctx, backend.ResourceUnits, "u1"))
	s.Equal("/api/v1/units/u1", s.lastReq.URL.Path)
}

func (s *ClientTestSuite) TestCalculateRulePoints() {
	s.respond("POST /api/v1/points/calculate", http.StatusOK,
		`{"calculated_points":[6,7,8],"breakdown":{"keywords":2},"explanation":"two keywords"}`)

	out, err := s.client.CalculateRulePoints(s.ctx, &backend.CalculateRulePointsInput{
		Name:        "Furious",
		Description: "re-roll hits",
		Type:        "offense",
	})
	s.Require().NoError(err)
	s.Equal([]int{6, 7, 8}, out.Points)
	s.Equal("two keywords", out.Explanation)

	var sent backend.CalculateRulePointsInput
	s.Require().NoError(json.Unmarshal(s.lastBody, &sent))
	s.Equal("re-roll hits", sent.Description)
}

func (s *ClientTestSuite) TestCalculateUnitPoints() {
	s.respond("POST /api/v1/calculate-unit-points", http.StatusOK, `{
		"total_points":92,
		"breakdown":{"base_cost":50,"unit_rules_cost":10,"weapons_cost":20,"weapon_rules_cost":5,"wargear_cost":7,"total_points":92}
	}`)

	out, err := s.client.CalculateUnitPoints(s.ctx, &wargame.Unit{ID: "u1", Points: 50})
	s.Require().NoError(err)
	s.Equal(92, out.TotalPoints)
	s.Equal(7, out.Breakdown.WarGearCost)

	var sent map[string]map[string]any
	s.Require().NoError(json.Unmarshal(s.lastBody, &sent))
	s.Equal("u1", sent["unit"]["id"])
}

func (s *ClientTestSuite) TestCalculateFailureIsEstimationFailure() {
	s.respond("POST /api/v1/calculate-unit-points", http.StatusInternalServerError, "Failed to calculate unit points: boom")

	_, err := s.client.CalculateUnitPoints(s.ctx, &wargame.Unit{ID: "u1"})
	s.Require().Error(err)
	s.True(errors.IsEstimationFailure(err))
	s.Equal("calculate_unit_points", errors.GetMeta(err)["operation"])
}

func (s *ClientTestSuite) TestUnreachableBackend() {
	client, err := backend.New(&backend.Config{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})
	s.Require().NoError(err)

	_, err = client.ListRules(s.ctx, &backend.ListInput{})
	s.True(errors.IsUnavailable(err))
}

func (s *ClientTestSuite) TestConfigValidate() {
	cfg := &backend.Config{}
	s.Require().NoError(cfg.Validate())
	s.Equal(backend.DefaultBaseURL, cfg.BaseURL)
	s.Equal(backend.DefaultTimeout, cfg.Timeout)

	bad := &backend.Config{BaseURL: "not a url"}
	s.Error(bad.Validate())

	_, err := backend.New(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestSharedListSurvivesCallerCancel() {
	arrived := make(chan struct{}, 2)
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		arrived <- struct{}{}
		<-release
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"r1","name":"Furious","points":[5,10,15]}]`))
	}))
	defer server.Close()

	client, err := backend.New(&backend.Config{BaseURL: server.URL + "/api/v1"})
	s.Require().NoError(err)
	input := &backend.ListInput{Name: "fur", Limit: 10}

	firstCtx, cancel := context.WithCancel(s.ctx)
	firstErr := make(chan error, 1)
	go func() {
		_, err := client.ListRules(firstCtx, input)
		firstErr <- err
	}()
	<-arrived

	type result struct {
		page *backend.Page[wargame.Rule]
		err  error
	}
	second := make(chan result, 1)
	go func() {
		page, err := client.ListRules(s.ctx, input)
		second <- result{page, err}
	}()

	// let the second caller join the in-flight query
	time.Sleep(20 * time.Millisecond)
	cancel()

	err = <-firstErr
	s.Equal(errors.CodeCanceled, errors.GetCode(err))

	close(release)
	r := <-second
	s.Require().NoError(r.err)
	s.Require().Len(r.page.Items, 1)
	s.Equal("r1", r.page.Items[0].ID)
}

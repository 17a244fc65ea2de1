// Package backend is the REST client for the army content backend
package backend

//go:generate mockgen -destination=mock/mock_client.go -package=backendmock github.com/KirkDiggler/grimdank-editor/internal/clients/backend Client

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/grimdank-editor/internal/entities/wargame"
	"github.com/KirkDiggler/grimdank-editor/internal/errors"
)

const (
	// DefaultBaseURL is where a locally run backend serves its API
	DefaultBaseURL = "http://localhost:8080/api/v1"
	// DefaultTimeout bounds every backend request
	DefaultTimeout = 10 * time.Second
)

// Client defines the calls the editor makes against the content backend
type Client interface {
	// ListRules returns a page of rules whose name matches input.Name
	ListRules(ctx context.Context, input *ListInput) (*Page[wargame.Rule], error)

	// ListWeapons returns a page of weapons whose name matches input.Name
	ListWeapons(ctx context.Context, input *ListInput) (*Page[wargame.Weapon], error)

	// ListWarGear returns a page of wargear whose name matches input.Name
	ListWarGear(ctx context.Context, input *ListInput) (*Page[wargame.WarGear], error)

	// ListUnits returns a page of units whose name matches input.Name
	ListUnits(ctx context.Context, input *ListInput) (*Page[wargame.Unit], error)

	GetRule(ctx context.Context, id string) (*wargame.Rule, error)
	GetWeapon(ctx context.Context, id string) (*wargame.Weapon, error)
	GetWarGear(ctx context.Context, id string) (*wargame.WarGear, error)

	// GetUnit returns a unit along with any attachments the backend resolved
	GetUnit(ctx context.Context, id string) (*wargame.PopulatedUnit, error)

	GetArmyList(ctx context.Context, id string) (*wargame.ArmyList, error)

	// CalculateRulePoints asks the backend to cost a rule from its text
	CalculateRulePoints(ctx context.Context, input *CalculateRulePointsInput) (*CalculateRulePointsOutput, error)

	// CalculateUnitPoints asks the backend to cost a unit snapshot
	CalculateUnitPoints(ctx context.Context, unit *wargame.Unit) (*CalculateUnitPointsOutput, error)

	// Save* create the entity when its ID is empty and update it otherwise
	SaveRule(ctx context.Context, rule *wargame.Rule) (*wargame.Rule, error)
	SaveWeapon(ctx context.Context, weapon *wargame.Weapon) (*wargame.Weapon, error)
	SaveWarGear(ctx context.Context, gear *wargame.WarGear) (*wargame.WarGear, error)
	SaveUnit(ctx context.Context, unit *wargame.Unit) (*wargame.Unit, error)

	// Delete removes an entity from a collection
	Delete(ctx context.Context, resource Resource, id string) error
}

// Config contains configuration options for the backend client
type Config struct {
	// BaseURL of the backend API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// Timeout for each request (optional, defaults to DefaultTimeout)
	Timeout time.Duration
	// HTTPClient overrides the transport (optional)
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	vb := errors.NewValidationBuilder()
	if u, err := url.Parse(cfg.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		vb.Field("BaseURL", "must be an absolute URL")
	}
	errors.ValidatePositive("Timeout", int64(cfg.Timeout), vb)
	return vb.Build()
}

type client struct {
	http  *resty.Client
	lists singleflight.Group
}

// New creates a backend client with the given configuration
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	var rc *resty.Client
	if cfg.HTTPClient != nil {
		rc = resty.NewWithClient(cfg.HTTPClient)
	} else {
		rc = resty.New()
	}
	rc.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &client{http: rc}, nil
}

func (c *client) ListRules(ctx context.Context, input *ListInput) (*Page[wargame.Rule], error) {
	return list[wargame.Rule](ctx, c, ResourceRules, input)
}

func (c *client) ListWeapons(ctx context.Context, input *ListInput) (*Page[wargame.Weapon], error) {
	return list[wargame.Weapon](ctx, c, ResourceWeapons, input)
}

func (c *client) ListWarGear(ctx context.Context, input *ListInput) (*Page[wargame.WarGear], error) {
	return list[wargame.WarGear](ctx, c, ResourceWarGear, input)
}

func (c *client) ListUnits(ctx context.Context, input *ListInput) (*Page[wargame.Unit], error) {
	return list[wargame.Unit](ctx, c, ResourceUnits, input)
}

func (c *client) GetRule(ctx context.Context, id string) (*wargame.Rule, error) {
	return get[wargame.Rule](ctx, c, ResourceRules, id)
}

func (c *client) GetWeapon(ctx context.Context, id string) (*wargame.Weapon, error) {
	return get[wargame.Weapon](ctx, c, ResourceWeapons, id)
}

func (c *client) GetWarGear(ctx context.Context, id string) (*wargame.WarGear, error) {
	return get[wargame.WarGear](ctx, c, ResourceWarGear, id)
}

func (c *client) GetUnit(ctx context.Context, id string) (*wargame.PopulatedUnit, error) {
	return get[wargame.PopulatedUnit](ctx, c, ResourceUnits, id)
}

func (c *client) GetArmyList(ctx context.Context, id string) (*wargame.ArmyList, error) {
	return get[wargame.ArmyList](ctx, c, ResourceArmyLists, id)
}

func (c *client) CalculateRulePoints(ctx context.Context, input *CalculateRulePointsInput) (*CalculateRulePointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required").WithKind(errors.KindEstimationFailure)
	}

	var out CalculateRulePointsOutput
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(input).
		SetResult(&out).
		Post("/points/calculate")
	if err != nil {
		return nil, transportError(err, "failed to calculate rule points").
			WithKind(errors.KindEstimationFailure)
	}
	if resp.IsError() {
		return nil, responseError(resp, "failed to calculate rule points").
			WithKind(errors.KindEstimationFailure).
			WithMeta("operation", "calculate_rule_points")
	}

	slog.DebugContext(ctx, "calculated rule points", "name", input.Name, "points", out.Points)
	return &out, nil
}

func (c *client) CalculateUnitPoints(ctx context.Context, unit *wargame.Unit) (*CalculateUnitPointsOutput, error) {
	if unit == nil {
		return nil, errors.InvalidArgument("unit is required").WithKind(errors.KindEstimationFailure)
	}

	var out CalculateUnitPointsOutput
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(&calculateUnitPointsRequest{Unit: unit}).
		SetResult(&out).
		Post("/calculate-unit-points")
	if err != nil {
		return nil, transportError(err, "failed to calculate unit points").
			WithKind(errors.KindEstimationFailure)
	}
	if resp.IsError() {
		return nil, responseError(resp, "failed to calculate unit points").
			WithKind(errors.KindEstimationFailure).
			WithMeta("operation", "calculate_unit_points")
	}

	slog.DebugContext(ctx, "calculated unit points", "unit_id", unit.ID, "total", out.TotalPoints)
	return &out, nil
}

func (c *client) SaveRule(ctx context.Context, rule *wargame.Rule) (*wargame.Rule, error) {
	if rule == nil {
		return nil, errors.InvalidArgument("rule is required")
	}
	return save(ctx, c, ResourceRules, rule.ID, rule)
}

func (c *client) SaveWeapon(ctx context.Context, weapon *wargame.Weapon) (*wargame.Weapon, error) {
	if weapon == nil {
		return nil, errors.InvalidArgument("weapon is required")
	}
	return save(ctx, c, ResourceWeapons, weapon.ID, weapon)
}

func (c *client) SaveWarGear(ctx context.Context, gear *wargame.WarGear) (*wargame.WarGear, error) {
	if gear == nil {
		return nil, errors.InvalidArgument("wargear is required")
	}
	return save(ctx, c, ResourceWarGear, gear.ID, gear)
}

func (c *client) SaveUnit(ctx context.Context, unit *wargame.Unit) (*wargame.Unit, error) {
	if unit == nil {
		return nil, errors.InvalidArgument("unit is required")
	}
	return save(ctx, c, ResourceUnits, unit.ID, unit)
}

func (c *client) Delete(ctx context.Context, resource Resource, id string) error {
	if id == "" {
		return errors.InvalidArgument("id is required")
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete("/" + string(resource) + "/{id}")
	if err != nil {
		return transportError(err, "failed to delete "+string(resource)).
			WithKind(errors.KindPersistenceFailure)
	}
	if resp.IsError() {
		return responseError(resp, "failed to delete "+string(resource)).
			WithKind(errors.KindPersistenceFailure).
			WithMeta("id", id)
	}

	slog.InfoContext(ctx, "deleted entity", "resource", resource, "id", id)
	return nil
}

// list fetches a page, sharing one request between identical concurrent queries
func list[T any](ctx context.Context, c *client, resource Resource, input *ListInput) (*Page[T], error) {
	if input == nil {
		input = &ListInput{}
	}

	params := url.Values{}
	if input.Name != "" {
		params.Set("name", input.Name)
	}
	if input.Limit > 0 {
		params.Set("limit", strconv.Itoa(input.Limit))
	}
	if input.Skip > 0 {
		params.Set("skip", strconv.Itoa(input.Skip))
	}
	key := string(resource) + "?" + params.Encode()

	// the shared request outlives any one caller; the client timeout bounds it
	shareCtx := context.WithoutCancel(ctx)
	ch := c.lists.DoChan(key, func() (any, error) {
		resp, err := c.http.R().
			SetContext(shareCtx).
			SetQueryParamsFromValues(params).
			Get("/" + string(resource))
		if err != nil {
			return nil, transportError(err, "failed to list "+string(resource))
		}
		if resp.IsError() {
			return nil, responseError(resp, "failed to list "+string(resource))
		}
		return decodePage[T](resp.Body())
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, contextError(ctx.Err(), "list "+string(resource)+" abandoned")
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}
	v, shared := res.Val, res.Shared

	page := v.(*Page[T])
	slog.DebugContext(ctx, "listed entities",
		"resource", resource,
		"query", key,
		"count", len(page.Items),
		"shared", shared)

	// shared results are copied so callers cannot see each other's edits
	items := make([]T, len(page.Items))
	copy(items, page.Items)
	return &Page[T]{Items: items, Total: page.Total}, nil
}

func get[T any](ctx context.Context, c *client, resource Resource, id string) (*T, error) {
	if id == "" {
		return nil, errors.InvalidArgument("id is required")
	}

	var out T
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&out).
		Get("/" + string(resource) + "/{id}")
	if err != nil {
		return nil, transportError(err, "failed to get "+string(resource))
	}
	if resp.IsError() {
		return nil, responseError(resp, "failed to get "+string(resource)).WithMeta("id", id)
	}
	return &out, nil
}

func save[T any](ctx context.Context, c *client, resource Resource, id string, body *T) (*T, error) {
	req := c.http.R().
		SetContext(ctx).
		SetBody(body)

	var (
		resp *resty.Response
		err  error
	)
	if id == "" {
		resp, err = req.Post("/" + string(resource))
	} else {
		resp, err = req.SetPathParam("id", id).Put("/" + string(resource) + "/{id}")
	}
	if err != nil {
		return nil, transportError(err, "failed to save "+string(resource)).
			WithKind(errors.KindPersistenceFailure)
	}
	if resp.IsError() {
		return nil, responseError(resp, "failed to save "+string(resource)).
			WithKind(errors.KindPersistenceFailure).
			WithMeta("id", id)
	}

	// some endpoints answer with an empty body
	if len(strings.TrimSpace(resp.String())) == 0 {
		return body, nil
	}

	var out T
	if err := unmarshal(resp.Body(), &out); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to decode saved "+string(resource)).
			WithKind(errors.KindPersistenceFailure)
	}

	slog.InfoContext(ctx, "saved entity", "resource", resource, "id", id)
	return &out, nil
}

func contextError(err error, message string) *errors.Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.WrapWithCode(err, errors.CodeDeadlineExceeded, message)
	}
	return errors.WrapWithCode(err, errors.CodeCanceled, message)
}

func transportError(err error, message string) *errors.Error {
	return errors.WrapWithCode(err, errors.CodeUnavailable, message)
}

// Package roster totals the points of an army list from its units
package roster

//go:generate mockgen -destination=mock/mock_service.go -package=rostermock github.com/KirkDiggler/grimdank-editor/internal/orchestrators/roster Service

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/grimdank-editor/internal/clients/backend"
	"github.com/KirkDiggler/grimdank-editor/internal/entities/wargame"
	"github.com/KirkDiggler/grimdank-editor/internal/errors"
	"github.com/KirkDiggler/grimdank-editor/internal/points"
)

// DefaultConcurrency bounds how many units are fetched at once
const DefaultConcurrency = 4

// Service totals army lists
type Service interface {
	// Total sums the unit totals of an army list. Units the backend does not
	// know contribute nothing and are listed in the output.
	Total(ctx context.Context, input *TotalInput) (*TotalOutput, error)
}

// TotalInput names the army list to total
type TotalInput struct {
	ArmyListID string
}

// UnitTotal is one unit's contribution
type UnitTotal struct {
	UnitID    string
	Name      string
	Breakdown points.Breakdown
}

// TotalOutput holds an army list's total
type TotalOutput struct {
	ArmyList *wargame.ArmyList
	Units    []UnitTotal
	Missing  []string
	Total    int
}

// Config holds the dependencies for the roster orchestrator
type Config struct {
	Backend backend.Client
	// Concurrency bounds parallel unit fetches (optional, defaults to
	// DefaultConcurrency)
	Concurrency int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Concurrency == 0 {
		c.Concurrency = DefaultConcurrency
	}

	vb := errors.NewValidationBuilder()
	if c.Backend == nil {
		vb.RequiredField("Backend")
	}
	errors.ValidatePositive("Concurrency", int64(c.Concurrency), vb)
	return vb.Build()
}

type orchestrator struct {
	backend     backend.Client
	concurrency int
}

// NewOrchestrator creates a new roster orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &orchestrator{backend: cfg.Backend, concurrency: cfg.Concurrency}, nil
}

func (o *orchestrator) Total(ctx context.Context, input *TotalInput) (*TotalOutput, error) {
	if input == nil || input.ArmyListID == "" {
		return nil, errors.InvalidArgument("army list ID is required")
	}

	list, err := o.backend.GetArmyList(ctx, input.ArmyListID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load army list %s", input.ArmyListID)
	}

	units, err := o.fetchUnits(ctx, list.Units)
	if err != nil {
		return nil, err
	}

	out := &TotalOutput{ArmyList: list}
	for _, id := range list.Units {
		if id == "" {
			continue
		}
		unit, ok := units[id]
		if !ok {
			out.Missing = append(out.Missing, id)
			continue
		}

		breakdown := unitBreakdown(unit)
		out.Units = append(out.Units, UnitTotal{UnitID: id, Name: unit.Name, Breakdown: breakdown})
		out.Total += breakdown.Total
	}

	if len(out.Missing) > 0 {
		slog.WarnContext(ctx, "army list references unknown units",
			"army_list_id", list.ID,
			"missing", out.Missing)
	}
	slog.InfoContext(ctx, "army list totalled", "army_list_id", list.ID, "units", len(out.Units), "total", out.Total)

	return out, nil
}

// fetchUnits loads each distinct unit once. Units the backend does not
// know are left out of the map.
func (o *orchestrator) fetchUnits(ctx context.Context, ids []string) (map[string]*wargame.PopulatedUnit, error) {
	var mu sync.Mutex
	units := make(map[string]*wargame.PopulatedUnit, len(ids))
	seen := make(map[string]bool, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		id := id

		g.Go(func() error {
			unit, err := o.backend.GetUnit(gctx, id)
			if errors.IsNotFound(err) {
				return nil
			}
			if err != nil {
				return errors.Wrapf(err, "failed to load unit %s", id)
			}

			mu.Lock()
			units[id] = unit
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return units, nil
}

func unitBreakdown(u *wargame.PopulatedUnit) points.Breakdown {
	catalog := wargame.FromPopulatedUnit(u)
	costs := make([]points.RuleCost, 0, len(u.Rules))
	for _, ref := range u.Rules {
		costs = append(costs, points.RuleCost{Rule: catalog.Rules[ref.RuleID], Tier: ref.Tier})
	}
	return points.Summarize(u.Points, costs)
}

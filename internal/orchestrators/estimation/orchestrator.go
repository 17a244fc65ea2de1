// Package estimation runs the point estimators behind the editor's
// estimation dialogs. Results are advisory: they reach an editor only
// through a dialog's Apply.
package estimation

//go:generate mockgen -destination=mock/mock_service.go -package=estimationmock github.com/KirkDiggler/grimdank-editor/internal/orchestrators/estimation Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/grimdank-editor/internal/clients/backend"
	"github.com/KirkDiggler/grimdank-editor/internal/entities/wargame"
	"github.com/KirkDiggler/grimdank-editor/internal/errors"
	"github.com/KirkDiggler/grimdank-editor/internal/estimator"
)

// Service estimates point costs for rules, weapons and units
type Service interface {
	// EstimateRule suggests a tier triple. Manual mode is computed locally,
	// automatic mode asks the backend to analyze the rule's text.
	EstimateRule(ctx context.Context, input *EstimateRuleInput) (*EstimateRuleOutput, error)

	// EstimateWeapon suggests a base cost from a weapon profile
	EstimateWeapon(ctx context.Context, input *EstimateWeaponInput) (*EstimateWeaponOutput, error)

	// EstimateUnit asks the backend to cost a unit snapshot
	EstimateUnit(ctx context.Context, input *EstimateUnitInput) (*EstimateUnitOutput, error)
}

// Config holds the dependencies for the estimation orchestrator
type Config struct {
	Backend backend.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Backend == nil {
		vb.RequiredField("Backend")
	}
	return vb.Build()
}

type orchestrator struct {
	backend backend.Client
}

// NewOrchestrator creates a new estimation orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &orchestrator{backend: cfg.Backend}, nil
}

func (o *orchestrator) EstimateRule(ctx context.Context, input *EstimateRuleInput) (*EstimateRuleOutput, error) {
	if input == nil {
		return nil, estimationFailure(errors.InvalidArgument("input is required"), opRule)
	}

	switch input.Mode {
	case ModeManual:
		est := estimator.EstimateRule(input.Manual)
		return &EstimateRuleOutput{Result: &RuleResult{
			Mode:   ModeManual,
			Points: est.Points,
			Breakdown: map[string]any{
				"combined": est.Combined,
				"final":    est.Final,
				"base":     est.Base,
			},
			Explanation: est.Explanation(),
		}}, nil
	case ModeAutomatic:
		return o.analyzeRule(ctx, input)
	default:
		return nil, estimationFailure(errors.InvalidArgumentf("unknown estimation mode %d", input.Mode), opRule)
	}
}

func (o *orchestrator) analyzeRule(ctx context.Context, input *EstimateRuleInput) (*EstimateRuleOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Name", input.Name, vb)
	errors.ValidateRequired("Description", input.Description, vb)
	if err := vb.Build(); err != nil {
		return nil, estimationFailure(errors.Wrap(err, "rule needs a name and description"), opRule)
	}

	out, err := o.backend.CalculateRulePoints(ctx, &backend.CalculateRulePointsInput{
		Name:        input.Name,
		Description: input.Description,
		Type:        input.Type,
	})
	if err != nil {
		slog.WarnContext(ctx, "rule analysis failed", "rule_name", input.Name, "error", err)
		return nil, estimationFailure(errors.Wrap(err, "failed to analyze rule"), opRule)
	}
	if len(out.Points) != wargame.MaxTier {
		return nil, estimationFailure(
			errors.Internalf("backend returned %d tier costs, want %d", len(out.Points), wargame.MaxTier), opRule)
	}

	result := &RuleResult{
		Mode:        ModeAutomatic,
		Breakdown:   out.Breakdown,
		Explanation: out.Explanation,
	}
	copy(result.Points[:], out.Points)

	slog.DebugContext(ctx, "rule analyzed", "rule_name", input.Name, "points", result.Points)
	return &EstimateRuleOutput{Result: result}, nil
}

func (o *orchestrator) EstimateWeapon(_ context.Context, input *EstimateWeaponInput) (*EstimateWeaponOutput, error) {
	if input == nil {
		return nil, estimationFailure(errors.InvalidArgument("input is required"), opWeapon)
	}
	return &EstimateWeaponOutput{Estimate: estimator.EstimateWeapon(input.Profile)}, nil
}

func (o *orchestrator) EstimateUnit(ctx context.Context, input *EstimateUnitInput) (*EstimateUnitOutput, error) {
	if input == nil || input.Unit == nil {
		return nil, estimationFailure(errors.InvalidArgument("unit is required"), opUnit)
	}

	out, err := o.backend.CalculateUnitPoints(ctx, input.Unit)
	if err != nil {
		slog.WarnContext(ctx, "unit costing failed", "unit_id", input.Unit.ID, "error", err)
		return nil, estimationFailure(errors.Wrap(err, "failed to calculate unit points"), opUnit)
	}

	slog.DebugContext(ctx, "unit costed", "unit_id", input.Unit.ID, "total_points", out.TotalPoints)
	return &EstimateUnitOutput{Result: out}, nil
}

const (
	opRule   = "estimate_rule"
	opWeapon = "estimate_weapon"
	opUnit   = "estimate_unit"
)

func estimationFailure(err *errors.Error, operation string) error {
	return err.WithKind(errors.KindEstimationFailure).WithMeta("operation", operation)
}

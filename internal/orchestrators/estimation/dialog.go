package estimation

import (
	"context"

	"github.com/KirkDiggler/grimdank-editor/internal/clients/backend"
	"github.com/KirkDiggler/grimdank-editor/internal/errors"
	"github.com/KirkDiggler/grimdank-editor/internal/estimator"
	"github.com/KirkDiggler/grimdank-editor/internal/orchestrators/editor"
)

// state is what an open dialog remembers between runs: the last result that
// succeeded and the error of the last run, if it failed
type state[T any] struct {
	result *T
	err    error
}

func (s *state[T]) record(result *T, err error) error {
	if err != nil {
		s.err = err
		return err
	}
	s.result = result
	s.err = nil
	return nil
}

func (s *state[T]) applicable() (*T, error) {
	if s.result == nil {
		return nil, errors.FailedPrecondition("no estimate to apply")
	}
	return s.result, nil
}

// RuleDialog is an open rule estimator
type RuleDialog struct {
	svc Service
	state[RuleResult]
}

// NewRuleDialog opens a rule estimator
func NewRuleDialog(svc Service) *RuleDialog {
	return &RuleDialog{svc: svc}
}

// Run estimates the rule. A failed run keeps the previous result.
func (d *RuleDialog) Run(ctx context.Context, input *EstimateRuleInput) error {
	out, err := d.svc.EstimateRule(ctx, input)
	if err != nil {
		return d.record(nil, err)
	}
	return d.record(out.Result, nil)
}

// Result returns the last successful estimate, nil before the first
func (d *RuleDialog) Result() *RuleResult {
	return d.result
}

// Err returns the error of the last run, nil when it succeeded
func (d *RuleDialog) Err() error {
	return d.err
}

// Apply writes the suggested tier costs into target
func (d *RuleDialog) Apply(target *editor.RuleEditor) error {
	result, err := d.applicable()
	if err != nil {
		return err
	}
	return target.SetPoints(result.Points[:])
}

// WeaponDialog is an open weapon estimator
type WeaponDialog struct {
	svc Service
	state[estimator.WeaponEstimate]
}

// NewWeaponDialog opens a weapon estimator
func NewWeaponDialog(svc Service) *WeaponDialog {
	return &WeaponDialog{svc: svc}
}

// Run scores a weapon profile
func (d *WeaponDialog) Run(ctx context.Context, profile estimator.WeaponInput) error {
	out, err := d.svc.EstimateWeapon(ctx, &EstimateWeaponInput{Profile: profile})
	if err != nil {
		return d.record(nil, err)
	}
	return d.record(out.Estimate, nil)
}

// RunFor scores the profile currently held by a weapon editor
func (d *WeaponDialog) RunFor(ctx context.Context, e *editor.WeaponEditor) error {
	return d.Run(ctx, estimator.WeaponInputFrom(e.Weapon()))
}

// Result returns the last successful estimate, nil before the first
func (d *WeaponDialog) Result() *estimator.WeaponEstimate {
	return d.result
}

// Err returns the error of the last run, nil when it succeeded
func (d *WeaponDialog) Err() error {
	return d.err
}

// Apply writes the suggested cost into target's base points
func (d *WeaponDialog) Apply(target *editor.WeaponEditor) error {
	result, err := d.applicable()
	if err != nil {
		return err
	}
	return target.ApplyBase(result.Points)
}

// UnitDialog is an open unit points calculator
type UnitDialog struct {
	svc Service
	state[backend.CalculateUnitPointsOutput]
}

// NewUnitDialog opens a unit points calculator
func NewUnitDialog(svc Service) *UnitDialog {
	return &UnitDialog{svc: svc}
}

// Run costs the unit currently held by a unit editor. A failed run keeps
// the previous result.
func (d *UnitDialog) Run(ctx context.Context, e *editor.UnitEditor) error {
	out, err := d.svc.EstimateUnit(ctx, &EstimateUnitInput{Unit: e.Unit()})
	if err != nil {
		return d.record(nil, err)
	}
	return d.record(out.Result, nil)
}

// Result returns the last successful costing, nil before the first
func (d *UnitDialog) Result() *backend.CalculateUnitPointsOutput {
	return d.result
}

// Err returns the error of the last run, nil when it succeeded
func (d *UnitDialog) Err() error {
	return d.err
}

// Apply writes the calculated total into target's base points. The total
// already counts unit rules, so it is only applied while none are attached.
func (d *UnitDialog) Apply(target *editor.UnitEditor) error {
	result, err := d.applicable()
	if err != nil {
		return err
	}
	return target.ApplyBase(result.TotalPoints)
}

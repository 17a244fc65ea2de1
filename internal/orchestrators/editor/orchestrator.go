// Package editor implements editor sessions for rules, weapons, wargear and
// units: attachment validation, derived points, hydration from the backend,
// submit normalization and drafts.
package editor

//go:generate mockgen -destination=mock/mock_service.go -package=editormock github.com/KirkDiggler/grimdank-editor/internal/orchestrators/editor Service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/KirkDiggler/grimdank-editor/internal/clients/backend"
	"github.com/KirkDiggler/grimdank-editor/internal/entities/wargame"
	"github.com/KirkDiggler/grimdank-editor/internal/errors"
	"github.com/KirkDiggler/grimdank-editor/internal/pkg/clock"
	"github.com/KirkDiggler/grimdank-editor/internal/pkg/idgen"
	"github.com/KirkDiggler/grimdank-editor/internal/repositories/drafts"
)

// Service opens, submits and drafts editor sessions
type Service interface {
	// OpenUnit hydrates a unit session from the backend
	OpenUnit(ctx context.Context, input *OpenInput) (*OpenUnitOutput, error)
	OpenWeapon(ctx context.Context, input *OpenInput) (*OpenWeaponOutput, error)
	OpenWarGear(ctx context.Context, input *OpenInput) (*OpenWarGearOutput, error)
	OpenRule(ctx context.Context, input *OpenInput) (*OpenRuleOutput, error)

	// SubmitUnit sends the normalized unit to the backend. It is refused
	// while any slot has a quantity warning.
	SubmitUnit(ctx context.Context, input *SubmitUnitInput) (*SubmitUnitOutput, error)
	SubmitWeapon(ctx context.Context, input *SubmitWeaponInput) (*SubmitWeaponOutput, error)
	SubmitWarGear(ctx context.Context, input *SubmitWarGearInput) (*SubmitWarGearOutput, error)
	SubmitRule(ctx context.Context, input *SubmitRuleInput) (*SubmitRuleOutput, error)

	// SaveDraft stores a snapshot so the session can be resumed
	SaveDraft(ctx context.Context, input *SaveDraftInput) (*SaveDraftOutput, error)
	// LoadDraft restores a snapshot saved by SaveDraft
	LoadDraft(ctx context.Context, input *LoadDraftInput) (*LoadDraftOutput, error)
	// DiscardDraft deletes a draft
	DiscardDraft(ctx context.Context, input *DiscardDraftInput) (*DiscardDraftOutput, error)
}

// Config holds the dependencies for the editor orchestrator
type Config struct {
	Backend     backend.Client
	Drafts      drafts.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
	// DraftTTL bounds how long a draft lives after each save (optional,
	// defaults to drafts.DefaultTTL)
	DraftTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.DraftTTL == 0 {
		c.DraftTTL = drafts.DefaultTTL
	}

	vb := errors.NewValidationBuilder()
	if c.Backend == nil {
		vb.RequiredField("Backend")
	}
	if c.Drafts == nil {
		vb.RequiredField("Drafts")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	errors.ValidatePositive("DraftTTL", int64(c.DraftTTL), vb)
	return vb.Build()
}

type orchestrator struct {
	backend  backend.Client
	drafts   drafts.Repository
	idGen    idgen.Generator
	clock    clock.Clock
	draftTTL time.Duration
}

// NewOrchestrator creates a new editor orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		backend:  cfg.Backend,
		drafts:   cfg.Drafts,
		idGen:    cfg.IDGenerator,
		clock:    cfg.Clock,
		draftTTL: cfg.DraftTTL,
	}, nil
}

func (o *orchestrator) OpenUnit(ctx context.Context, input *OpenInput) (*OpenUnitOutput, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	unit, err := o.backend.GetUnit(ctx, input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load unit %s", input.ID)
	}

	catalog := wargame.FromPopulatedUnit(unit)
	o.resolveRules(ctx, catalog, unit.Rules)
	o.resolveWeapons(ctx, catalog, unit.Weapons)
	o.resolveWarGear(ctx, catalog, unit.WarGear)

	slog.InfoContext(ctx, "opened unit",
		"unit_id", unit.ID,
		"rules", len(unit.Rules),
		"weapons", len(unit.Weapons),
		"wargear", len(unit.WarGear))

	return &OpenUnitOutput{Editor: NewUnitEditor(&unit.Unit, catalog)}, nil
}

func (o *orchestrator) OpenWeapon(ctx context.Context, input *OpenInput) (*OpenWeaponOutput, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	weapon, err := o.backend.GetWeapon(ctx, input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load weapon %s", input.ID)
	}

	catalog := wargame.NewCatalog()
	o.resolveRules(ctx, catalog, weapon.Rules)

	return &OpenWeaponOutput{Editor: NewWeaponEditor(weapon, catalog)}, nil
}

func (o *orchestrator) OpenWarGear(ctx context.Context, input *OpenInput) (*OpenWarGearOutput, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	gear, err := o.backend.GetWarGear(ctx, input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load wargear %s", input.ID)
	}

	catalog := wargame.NewCatalog()
	o.resolveRules(ctx, catalog, gear.Rules)

	return &OpenWarGearOutput{Editor: NewWarGearEditor(gear, catalog)}, nil
}

func (o *orchestrator) OpenRule(ctx context.Context, input *OpenInput) (*OpenRuleOutput, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	rule, err := o.backend.GetRule(ctx, input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load rule %s", input.ID)
	}

	return &OpenRuleOutput{Editor: NewRuleEditor(rule)}, nil
}

func (o *orchestrator) SubmitUnit(ctx context.Context, input *SubmitUnitInput) (*SubmitUnitOutput, error) {
	if input == nil || input.Editor == nil {
		return nil, errors.InvalidArgument("editor is required")
	}

	if warnings := input.Editor.Warnings(); len(warnings) > 0 {
		err := errors.FailedPrecondition("weapon quantities exceed the unit's model count").
			WithKind(errors.KindQuantityInconsistency)
		for _, w := range warnings {
			err.WithMeta(string(w.Slot), w.Quantity)
		}
		return nil, err.WithMeta("amount", input.Editor.Amount())
	}

	saved, err := o.backend.SaveUnit(ctx, input.Editor.Unit())
	if err != nil {
		return nil, errors.Wrap(err, "failed to save unit")
	}

	input.Editor.id = saved.ID
	o.discardAfterSubmit(ctx, input.DraftID)

	slog.InfoContext(ctx, "submitted unit", "unit_id", saved.ID, "points", saved.Points)
	return &SubmitUnitOutput{Unit: saved}, nil
}

func (o *orchestrator) SubmitWeapon(ctx context.Context, input *SubmitWeaponInput) (*SubmitWeaponOutput, error) {
	if input == nil || input.Editor == nil {
		return nil, errors.InvalidArgument("editor is required")
	}

	saved, err := o.backend.SaveWeapon(ctx, input.Editor.Weapon())
	if err != nil {
		return nil, errors.Wrap(err, "failed to save weapon")
	}

	input.Editor.id = saved.ID
	o.discardAfterSubmit(ctx, input.DraftID)

	slog.InfoContext(ctx, "submitted weapon", "weapon_id", saved.ID, "points", saved.Points)
	return &SubmitWeaponOutput{Weapon: saved}, nil
}

func (o *orchestrator) SubmitWarGear(ctx context.Context, input *SubmitWarGearInput) (*SubmitWarGearOutput, error) {
	if input == nil || input.Editor == nil {
		return nil, errors.InvalidArgument("editor is required")
	}

	saved, err := o.backend.SaveWarGear(ctx, input.Editor.WarGear())
	if err != nil {
		return nil, errors.Wrap(err, "failed to save wargear")
	}

	input.Editor.id = saved.ID
	o.discardAfterSubmit(ctx, input.DraftID)

	slog.InfoContext(ctx, "submitted wargear", "wargear_id", saved.ID, "points", saved.Points)
	return &SubmitWarGearOutput{WarGear: saved}, nil
}

func (o *orchestrator) SubmitRule(ctx context.Context, input *SubmitRuleInput) (*SubmitRuleOutput, error) {
	if input == nil || input.Editor == nil {
		return nil, errors.InvalidArgument("editor is required")
	}

	saved, err := o.backend.SaveRule(ctx, input.Editor.Rule())
	if err != nil {
		return nil, errors.Wrap(err, "failed to save rule")
	}

	input.Editor.rule.ID = saved.ID
	o.discardAfterSubmit(ctx, input.DraftID)

	slog.InfoContext(ctx, "submitted rule", "rule_id", saved.ID, "points", saved.Points)
	return &SubmitRuleOutput{Rule: saved}, nil
}

func (o *orchestrator) SaveDraft(ctx context.Context, input *SaveDraftInput) (*SaveDraftOutput, error) {
	if input == nil || input.Snapshot == nil {
		return nil, errors.InvalidArgument("snapshot is required")
	}
	kind := input.Snapshot.Kind()
	if kind == "" {
		return nil, errors.InvalidArgument("snapshot holds no entity")
	}

	payload, err := json.Marshal(input.Snapshot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal snapshot")
	}

	now := o.clock.Now()
	draft := &wargame.Draft{
		ID:        input.DraftID,
		Kind:      kind,
		EntityID:  input.Snapshot.EntityID(),
		Payload:   payload,
		UpdatedAt: now.Unix(),
		ExpiresAt: now.Add(o.draftTTL).Unix(),
	}

	if draft.ID != "" {
		existing, err := o.drafts.Get(ctx, drafts.GetInput{ID: draft.ID})
		if err != nil && !errors.IsNotFound(err) {
			return nil, errors.Wrap(err, "failed to load draft")
		}
		if err == nil {
			draft.CreatedAt = existing.Draft.CreatedAt
			if _, err := o.drafts.Update(ctx, drafts.UpdateInput{Draft: draft}); err != nil {
				return nil, errors.Wrap(err, "failed to update draft")
			}
			return &SaveDraftOutput{Draft: draft}, nil
		}
	} else {
		draft.ID = o.idGen.Generate()
	}

	draft.CreatedAt = now.Unix()
	if _, err := o.drafts.Create(ctx, drafts.CreateInput{Draft: draft}); err != nil {
		return nil, errors.Wrap(err, "failed to create draft")
	}

	slog.InfoContext(ctx, "saved draft", "draft_id", draft.ID, "kind", kind, "entity_id", draft.EntityID)
	return &SaveDraftOutput{Draft: draft}, nil
}

func (o *orchestrator) LoadDraft(ctx context.Context, input *LoadDraftInput) (*LoadDraftOutput, error) {
	if input == nil || input.DraftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}

	out, err := o.drafts.Get(ctx, drafts.GetInput{ID: input.DraftID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load draft")
	}

	var snap Snapshot
	if err := json.Unmarshal(out.Draft.Payload, &snap); err != nil {
		return nil, errors.Wrapf(err, "draft %s is corrupt", input.DraftID)
	}

	return &LoadDraftOutput{Draft: out.Draft, Snapshot: &snap}, nil
}

func (o *orchestrator) DiscardDraft(ctx context.Context, input *DiscardDraftInput) (*DiscardDraftOutput, error) {
	if input == nil || input.DraftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}

	if _, err := o.drafts.Delete(ctx, drafts.DeleteInput{ID: input.DraftID}); err != nil {
		return nil, errors.Wrap(err, "failed to discard draft")
	}
	return &DiscardDraftOutput{}, nil
}

// discardAfterSubmit drops the draft of a submitted session. The submit
// already succeeded, so a failure here is only logged.
func (o *orchestrator) discardAfterSubmit(ctx context.Context, draftID string) {
	if draftID == "" {
		return
	}
	if _, err := o.drafts.Delete(ctx, drafts.DeleteInput{ID: draftID}); err != nil && !errors.IsNotFound(err) {
		slog.WarnContext(ctx, "failed to discard submitted draft", "draft_id", draftID, "error", err)
	}
}

// resolveRules looks up rules the catalog is missing. Unknown rules stay
// unresolved and cost nothing.
func (o *orchestrator) resolveRules(ctx context.Context, catalog *wargame.Catalog, refs []wargame.RuleRef) {
	for _, ref := range refs {
		if ref.RuleID == "" || catalog.Rules[ref.RuleID] != nil {
			continue
		}
		rule, err := o.backend.GetRule(ctx, ref.RuleID)
		if err != nil {
			slog.WarnContext(ctx, "rule unresolved", "rule_id", ref.RuleID, "error", err)
			continue
		}
		catalog.AddRules(*rule)
	}
}

func (o *orchestrator) resolveWeapons(ctx context.Context, catalog *wargame.Catalog, refs []wargame.WeaponRef) {
	for _, ref := range refs {
		if ref.WeaponID == "" || catalog.Weapons[ref.WeaponID] != nil {
			continue
		}
		weapon, err := o.backend.GetWeapon(ctx, ref.WeaponID)
		if err != nil {
			slog.WarnContext(ctx, "weapon unresolved", "weapon_id", ref.WeaponID, "error", err)
			continue
		}
		catalog.AddWeapons(*weapon)
	}
}

func (o *orchestrator) resolveWarGear(ctx context.Context, catalog *wargame.Catalog, ids []string) {
	for _, id := range ids {
		if id == "" || catalog.WarGear[id] != nil {
			continue
		}
		gear, err := o.backend.GetWarGear(ctx, id)
		if err != nil {
			slog.WarnContext(ctx, "wargear unresolved", "wargear_id", id, "error", err)
			continue
		}
		catalog.AddWarGear(*gear)
	}
}

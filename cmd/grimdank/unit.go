package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/grimdank-editor/internal/entities/wargame"
	"github.com/KirkDiggler/grimdank-editor/internal/orchestrators/editor"
)

var (
	editAmount    int
	editMax       int
	editWeapon    string
	editSlot      string
	editQuantity  int
	editRule      string
	editTier      int
	editWarGear   string
	editRemove    []string
	editSubmit    bool
	editApplyCost bool
)

var unitCmd = &cobra.Command{
	Use:   "unit",
	Short: "Inspect and edit units",
}

var unitShowCmd = &cobra.Command{
	Use:   "show [unit-id]",
	Short: "Show a unit with its points and attachments",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnitShow,
}

var unitEditCmd = &cobra.Command{
	Use:   "edit [unit-id]",
	Short: "Edit a unit and keep the result as a draft",
	Long: `Open a unit (or resume its draft with --draft), apply the requested
changes, and save the working set as a draft. With --submit the unit is sent
to the backend instead and the draft is discarded.`,
	Args: cobra.ExactArgs(1),
	RunE: runUnitEdit,
}

var editDraftID string

func init() {
	f := unitEditCmd.Flags()
	f.StringVar(&editDraftID, "draft", "", "Resume this draft instead of opening the unit")
	f.IntVar(&editAmount, "amount", -1, "Set the model count")
	f.IntVar(&editMax, "max", -1, "Set the model cap")
	f.StringVar(&editWeapon, "add-weapon", "", "Weapon ID to attach")
	f.StringVar(&editSlot, "slot", "", "Slot for --add-weapon (defaults to the weapon's type)")
	f.IntVar(&editQuantity, "quantity", 1, "Models carrying --add-weapon")
	f.StringVar(&editRule, "add-rule", "", "Rule ID to attach")
	f.IntVar(&editTier, "tier", 1, "Tier for --add-rule")
	f.StringVar(&editWarGear, "add-wargear", "", "Wargear ID to attach")
	f.StringSliceVar(&editRemove, "remove", nil, "Rule, weapon or wargear IDs to detach")
	f.BoolVar(&editSubmit, "submit", false, "Submit the unit to the backend")
	f.BoolVar(&editApplyCost, "apply-cost", false, "Replace base points with the backend's unit costing")

	unitCmd.AddCommand(unitShowCmd)
	unitCmd.AddCommand(unitEditCmd)
}

func runUnitShow(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout)
	defer cancel()

	e, cleanup, err := openUnit(ctx, args[0])
	if err != nil {
		return err
	}
	defer cleanup()

	printUnit(e)
	return nil
}

func runUnitEdit(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout)
	defer cancel()

	svc, cleanup, err := newEditor(ctx, true)
	if err != nil {
		return err
	}
	defer cleanup()

	e, err := loadUnitSession(ctx, svc, args[0])
	if err != nil {
		return err
	}

	be, err := newBackend()
	if err != nil {
		return err
	}

	if editAmount >= 0 {
		e.SetAmount(editAmount)
	}
	if editMax >= 0 {
		e.SetMax(editMax)
	}
	for _, id := range editRemove {
		removed := e.RemoveRule(id)
		removed = e.RemoveWeapon(id) || removed
		removed = e.RemoveWarGear(id) || removed
		if !removed {
			fmt.Printf("⚠️  %s is not attached\n", id)
		}
	}
	if editRule != "" {
		rule, err := be.GetRule(ctx, editRule)
		if err != nil {
			return fmt.Errorf("failed to load rule: %w", err)
		}
		report("rule "+editRule, e.AddRule(rule, editTier))
	}
	if editWeapon != "" {
		weapon, err := be.GetWeapon(ctx, editWeapon)
		if err != nil {
			return fmt.Errorf("failed to load weapon: %w", err)
		}
		slot, _ := weapon.SlotType()
		if editSlot != "" {
			parsed, ok := wargame.ParseSlotType(editSlot)
			if !ok {
				return fmt.Errorf("invalid --slot %q: must be melee or ranged", editSlot)
			}
			slot = parsed
		}
		report("weapon "+editWeapon, e.AddWeapon(weapon, slot, editQuantity))
	}
	if editWarGear != "" {
		gear, err := be.GetWarGear(ctx, editWarGear)
		if err != nil {
			return fmt.Errorf("failed to load wargear: %w", err)
		}
		report("wargear "+editWarGear, e.AddWarGear(gear))
	}
	if editApplyCost {
		if err := applyUnitCost(ctx, e); err != nil {
			return err
		}
	}

	printUnit(e)

	if editSubmit {
		out, err := svc.SubmitUnit(ctx, &editor.SubmitUnitInput{Editor: e, DraftID: editDraftID})
		if err != nil {
			return fmt.Errorf("failed to submit unit: %w", err)
		}
		fmt.Printf("✅ Submitted unit %s\n", out.Unit.ID)
		return nil
	}

	saved, err := svc.SaveDraft(ctx, &editor.SaveDraftInput{DraftID: editDraftID, Snapshot: e.Snapshot()})
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	fmt.Printf("📝 Draft %s saved\n", saved.Draft.ID)
	return nil
}

func loadUnitSession(ctx context.Context, svc editor.Service, unitID string) (*editor.UnitEditor, error) {
	if editDraftID == "" {
		out, err := svc.OpenUnit(ctx, &editor.OpenInput{ID: unitID})
		if err != nil {
			return nil, fmt.Errorf("failed to open unit: %w", err)
		}
		return out.Editor, nil
	}

	out, err := svc.LoadDraft(ctx, &editor.LoadDraftInput{DraftID: editDraftID})
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	return out.Snapshot.RestoreUnit()
}

func report(what string, d editor.Decision) {
	switch d.Outcome {
	case editor.Accepted:
		fmt.Printf("➕ %s attached\n", what)
	case editor.Clamped:
		fmt.Printf("➕ %s attached (%d requested, %d stored)\n", what, d.Requested, d.Stored)
	default:
		fmt.Printf("⚠️  %s %s: %s\n", what, d.Outcome, d.Message)
	}
}

func printUnit(e *editor.UnitEditor) {
	d := e.Details()
	fmt.Printf("🛡️  %s (ID: %s)\n", d.Name, e.ID())
	fmt.Printf("   Models: %d / %d\n", e.Amount(), e.Max())
	fmt.Printf("   Stats: melee %d, ranged %d, morale %d, defense %d\n", d.Melee, d.Ranged, d.Morale, d.Defense)

	b := e.Breakdown()
	fmt.Printf("   Points: %d (%s, base %d)\n", e.Points(), e.Mode(), b.Base)
	for _, item := range b.Rules {
		name := item.Name
		if name == "" {
			name = "(unknown rule)"
		}
		fmt.Printf("     - %s tier %d: %d\n", name, item.Tier, item.Points)
	}

	for _, slot := range wargame.SlotTypes {
		weapons := e.WeaponsIn(slot)
		if len(weapons) == 0 {
			continue
		}
		fmt.Printf("   %s weapons:\n", slot)
		for _, w := range weapons {
			name := w.WeaponID
			if w.Weapon != nil {
				name = w.Weapon.Name
			}
			fmt.Printf("     - %s x%d\n", name, w.Quantity)
		}
	}

	if gear := e.WarGear(); len(gear) > 0 {
		fmt.Printf("   Wargear:\n")
		for _, g := range gear {
			name := g.WarGearID
			if g.WarGear != nil {
				name = g.WarGear.Name
			}
			fmt.Printf("     - %s\n", name)
		}
	}

	for _, w := range e.Warnings() {
		fmt.Printf("   ⚠️  %s weapons are carried by %d models but the unit has %d\n", w.Slot, w.Quantity, w.Amount)
	}
}

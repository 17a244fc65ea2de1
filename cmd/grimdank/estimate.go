package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/grimdank-editor/internal/estimator"
	"github.com/KirkDiggler/grimdank-editor/internal/orchestrators/editor"
	"github.com/KirkDiggler/grimdank-editor/internal/orchestrators/estimation"
)

var (
	ruleInput   = estimator.DefaultRuleInput()
	ruleAuto    bool
	ruleName    string
	ruleText    string
	ruleType    string
	weaponInput estimator.WeaponInput
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Suggest point costs",
	Long:  `Suggest point costs for rules, weapons and units. Suggestions are never saved.`,
}

var estimateRuleCmd = &cobra.Command{
	Use:   "rule",
	Short: "Suggest tier costs for a rule",
	Long: `Suggest the three tier costs of a rule, either from the manual sliders
or, with --auto, by having the backend analyze the rule's text.`,
	RunE: runEstimateRule,
}

var estimateWeaponCmd = &cobra.Command{
	Use:   "weapon",
	Short: "Suggest a base cost for a weapon profile",
	RunE:  runEstimateWeapon,
}

var estimateUnitCmd = &cobra.Command{
	Use:   "unit [unit-id]",
	Short: "Have the backend cost a unit",
	Args:  cobra.ExactArgs(1),
	RunE:  runEstimateUnit,
}

func init() {
	f := estimateRuleCmd.Flags()
	f.Float64Var(&ruleInput.BaseValue, "base", ruleInput.BaseValue, "Base value (1-10)")
	f.Float64Var(&ruleInput.Multiplier, "multiplier", ruleInput.Multiplier, "Multiplier (0.1-2.0)")
	f.Float64Var(&ruleInput.Complexity, "complexity", ruleInput.Complexity, "Complexity (1-5)")
	f.Float64Var(&ruleInput.GameImpact, "impact", ruleInput.GameImpact, "Game impact (1-5)")
	f.BoolVar(&ruleAuto, "auto", false, "Analyze the rule text on the backend")
	f.StringVar(&ruleName, "name", "", "Rule name (with --auto)")
	f.StringVar(&ruleText, "description", "", "Rule text (with --auto)")
	f.StringVar(&ruleType, "type", "", "Rule type (with --auto)")

	w := estimateWeaponCmd.Flags()
	w.StringVar(&weaponInput.Type, "type", "ranged", "melee or ranged")
	w.IntVar(&weaponInput.Range, "range", 0, "Range in inches")
	w.StringVar(&weaponInput.Attacks, "attacks", "1", "Attacks, or X")
	w.StringVar(&weaponInput.AP, "ap", "0", "Armour piercing")

	estimateCmd.AddCommand(estimateRuleCmd)
	estimateCmd.AddCommand(estimateWeaponCmd)
	estimateCmd.AddCommand(estimateUnitCmd)
}

func runEstimateRule(cmd *cobra.Command, _ []string) error {
	svc, err := newEstimation()
	if err != nil {
		return err
	}

	input := &estimation.EstimateRuleInput{Mode: estimation.ModeManual, Manual: ruleInput}
	if ruleAuto {
		input = &estimation.EstimateRuleInput{
			Mode:        estimation.ModeAutomatic,
			Name:        ruleName,
			Description: ruleText,
			Type:        ruleType,
		}
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout)
	defer cancel()

	out, err := svc.EstimateRule(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to estimate rule: %w", err)
	}

	r := out.Result
	fmt.Printf("Tier costs (%s): %d / %d / %d\n", r.Mode, r.Points[0], r.Points[1], r.Points[2])
	if r.Explanation != "" {
		fmt.Printf("   %s\n", r.Explanation)
	}
	return nil
}

func runEstimateWeapon(cmd *cobra.Command, _ []string) error {
	svc, err := newEstimation()
	if err != nil {
		return err
	}

	out, err := svc.EstimateWeapon(cmd.Context(), &estimation.EstimateWeaponInput{Profile: weaponInput})
	if err != nil {
		return fmt.Errorf("failed to estimate weapon: %w", err)
	}

	e := out.Estimate
	fmt.Printf("Suggested cost: %d pts (%s)\n", e.Points, e.Slot)
	fmt.Printf("   Range:   %2d\" -> %.2f\n", e.Range, e.RangeScore)
	fmt.Printf("   Attacks: %2d  -> %.2f\n", e.Attacks, e.AttacksScore)
	fmt.Printf("   AP:      %2d  -> %.2f\n", e.AP, e.APScore)
	return nil
}

func runEstimateUnit(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout)
	defer cancel()

	opened, cleanup, err := openUnit(ctx, args[0])
	if err != nil {
		return err
	}
	defer cleanup()

	svc, err := newEstimation()
	if err != nil {
		return err
	}

	dialog := estimation.NewUnitDialog(svc)
	if err := dialog.Run(ctx, opened); err != nil {
		return fmt.Errorf("failed to cost unit: %w", err)
	}

	r := dialog.Result()
	fmt.Printf("Total: %d pts\n", r.TotalPoints)
	if b := r.Breakdown; b != nil {
		fmt.Printf("   Base:         %d\n", b.BaseCost)
		fmt.Printf("   Unit rules:   %d\n", b.UnitRulesCost)
		fmt.Printf("   Weapons:      %d\n", b.WeaponsCost)
		fmt.Printf("   Weapon rules: %d\n", b.WeaponRulesCost)
		fmt.Printf("   Wargear:      %d\n", b.WarGearCost)
	}
	return nil
}

// applyUnitCost costs the unit on the backend and writes the total into its
// base points
func applyUnitCost(ctx context.Context, e *editor.UnitEditor) error {
	svc, err := newEstimation()
	if err != nil {
		return err
	}

	dialog := estimation.NewUnitDialog(svc)
	if err := dialog.Run(ctx, e); err != nil {
		return fmt.Errorf("failed to cost unit: %w", err)
	}
	if err := dialog.Apply(e); err != nil {
		return err
	}
	fmt.Printf("💰 Base points set to %d\n", dialog.Result().TotalPoints)
	return nil
}

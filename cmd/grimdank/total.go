package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/grimdank-editor/internal/orchestrators/roster"
)

var totalCmd = &cobra.Command{
	Use:   "total [army-list-id]",
	Short: "Total the points of an army list",
	Args:  cobra.ExactArgs(1),
	RunE:  runTotal,
}

func runTotal(cmd *cobra.Command, args []string) error {
	svc, err := newRoster()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout)
	defer cancel()

	out, err := svc.Total(ctx, &roster.TotalInput{ArmyListID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to total army list: %w", err)
	}

	fmt.Printf("⚔️  %s: %d pts\n", out.ArmyList.Name, out.Total)
	for _, u := range out.Units {
		fmt.Printf("   - %s: %d pts\n", u.Name, u.Breakdown.Total)
	}
	for _, id := range out.Missing {
		fmt.Printf("   ⚠️  unknown unit %s counted as 0\n", id)
	}
	return nil
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/grimdank-editor/internal/orchestrators/editor"
)

var draftJSONOutput bool

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Inspect and discard saved drafts",
}

var draftShowCmd = &cobra.Command{
	Use:   "show [draft-id]",
	Short: "Show a saved draft",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftShow,
}

var draftDiscardCmd = &cobra.Command{
	Use:   "discard [draft-id]",
	Short: "Delete a saved draft",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftDiscard,
}

func init() {
	draftShowCmd.Flags().BoolVar(&draftJSONOutput, "json", false, "Output the snapshot as JSON")

	draftCmd.AddCommand(draftShowCmd)
	draftCmd.AddCommand(draftDiscardCmd)
}

func runDraftShow(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout)
	defer cancel()

	svc, cleanup, err := newEditor(ctx, true)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.LoadDraft(ctx, &editor.LoadDraftInput{DraftID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to load draft: %w", err)
	}

	if draftJSONOutput {
		data, err := json.MarshalIndent(out.Snapshot, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	d := out.Draft
	fmt.Printf("📝 Draft %s (%s", d.ID, d.Kind)
	if d.EntityID != "" {
		fmt.Printf(" %s", d.EntityID)
	}
	fmt.Printf(")\n")
	fmt.Printf("   Updated: %s\n", time.Unix(d.UpdatedAt, 0).Format(time.RFC3339))
	fmt.Printf("   Expires: %s\n", time.Unix(d.ExpiresAt, 0).Format(time.RFC3339))

	if out.Snapshot.Unit != nil {
		e, err := out.Snapshot.RestoreUnit()
		if err != nil {
			return err
		}
		printUnit(e)
	}
	return nil
}

func runDraftDiscard(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout)
	defer cancel()

	svc, cleanup, err := newEditor(ctx, true)
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := svc.DiscardDraft(ctx, &editor.DiscardDraftInput{DraftID: args[0]}); err != nil {
		return fmt.Errorf("failed to discard draft: %w", err)
	}
	fmt.Printf("🗑️  Draft %s discarded\n", args[0])
	return nil
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/grimdank-editor/internal/clients/backend"
)

var getRuleCmd = &cobra.Command{
	Use:   "get-rule [rule-id]",
	Short: "Get a rule by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGet(cmd, args[0], func(ctx context.Context, be backend.Client, id string) (any, error) {
			return be.GetRule(ctx, id)
		})
	},
}

var getWeaponCmd = &cobra.Command{
	Use:   "get-weapon [weapon-id]",
	Short: "Get a weapon by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGet(cmd, args[0], func(ctx context.Context, be backend.Client, id string) (any, error) {
			return be.GetWeapon(ctx, id)
		})
	},
}

var getWarGearCmd = &cobra.Command{
	Use:   "get-wargear [wargear-id]",
	Short: "Get wargear by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGet(cmd, args[0], func(ctx context.Context, be backend.Client, id string) (any, error) {
			return be.GetWarGear(ctx, id)
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete [rules|weapons|wargear|units] [id]",
	Short: "Delete an entity from the backend",
	Args:  cobra.ExactArgs(2),
	RunE:  runDelete,
}

func runGet(cmd *cobra.Command, id string, get func(context.Context, backend.Client, string) (any, error)) error {
	be, err := newBackend()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout)
	defer cancel()

	slog.DebugContext(ctx, "fetching entity", "command", cmd.Name(), "id", id)

	entity, err := get(ctx, be, id)
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", id, err)
	}

	data, err := json.MarshalIndent(entity, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	resource := backend.Resource(args[0])
	switch resource {
	case backend.ResourceRules, backend.ResourceWeapons, backend.ResourceWarGear, backend.ResourceUnits:
	default:
		return fmt.Errorf("cannot delete from %q", args[0])
	}

	be, err := newBackend()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout)
	defer cancel()

	if err := be.Delete(ctx, resource, args[1]); err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", resource, args[1], err)
	}
	fmt.Printf("🗑️  Deleted %s %s\n", resource, args[1])
	return nil
}

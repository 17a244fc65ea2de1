package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/grimdank-editor/internal/entities/wargame"
	"github.com/KirkDiggler/grimdank-editor/internal/orchestrators/selector"
	"github.com/KirkDiggler/grimdank-editor/internal/pkg/clock"
)

var (
	listName string
	listPage int
)

var listRulesCmd = &cobra.Command{
	Use:   "list-rules",
	Short: "List rules by name",
	RunE:  runListRules,
}

var listWeaponsCmd = &cobra.Command{
	Use:   "list-weapons",
	Short: "List weapons by name",
	RunE:  runListWeapons,
}

var listWarGearCmd = &cobra.Command{
	Use:   "list-wargear",
	Short: "List wargear by name",
	RunE:  runListWarGear,
}

func init() {
	for _, cmd := range []*cobra.Command{listRulesCmd, listWeaponsCmd, listWarGearCmd} {
		cmd.Flags().StringVar(&listName, "name", "", "Filter by name")
		cmd.Flags().IntVar(&listPage, "page", 1, "Page to show")
	}
}

// fetchPage runs one selector fetch and returns what it landed
func fetchPage[T any](ctx context.Context, fetch selector.Fetcher[T]) (selector.Result[T], error) {
	sel, err := selector.New(&selector.Config[T]{
		Fetch:    fetch,
		Clock:    clock.New(),
		Debounce: cfg.SelectorDebounce,
		PageSize: cfg.PageSize,
	})
	if err != nil {
		return selector.Result[T]{}, err
	}
	defer sel.Close()

	sel.Jump(ctx, listName, listPage)
	return sel.Result(), nil
}

func printFooter[T any](r selector.Result[T]) {
	if len(r.Items) == 0 {
		fmt.Println("Nothing found.")
		return
	}
	fmt.Printf("\nPage %d of %d (about %d results)\n", r.Page, r.TotalPages, r.Total)
}

func runListRules(cmd *cobra.Command, _ []string) error {
	be, err := newBackend()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout)
	defer cancel()

	r, err := fetchPage[wargame.Rule](ctx, be.ListRules)
	if err != nil {
		return err
	}
	for _, rule := range r.Items {
		fmt.Printf("📜 %s (ID: %s) %s\n", rule.Name, rule.ID, tierCosts(rule.Points))
		if rule.Description != "" {
			fmt.Printf("   %s\n", rule.Description)
		}
	}
	printFooter(r)
	return nil
}

func runListWeapons(cmd *cobra.Command, _ []string) error {
	be, err := newBackend()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout)
	defer cancel()

	r, err := fetchPage[wargame.Weapon](ctx, be.ListWeapons)
	if err != nil {
		return err
	}
	for _, w := range r.Items {
		fmt.Printf("🗡️  %s (ID: %s) %s, %d pts\n", w.Name, w.ID, w.Type, w.Points)
		fmt.Printf("   Range %d\", A %s, AP %s\n", w.Range, w.Attacks, w.AP)
	}
	printFooter(r)
	return nil
}

func runListWarGear(cmd *cobra.Command, _ []string) error {
	be, err := newBackend()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout)
	defer cancel()

	r, err := fetchPage[wargame.WarGear](ctx, be.ListWarGear)
	if err != nil {
		return err
	}
	for _, g := range r.Items {
		fmt.Printf("🎒 %s (ID: %s) %d pts\n", g.Name, g.ID, g.Points)
	}
	printFooter(r)
	return nil
}

func tierCosts(points []int) string {
	if len(points) == 0 {
		return "[no cost]"
	}
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = fmt.Sprintf("%d", p)
	}
	return "[" + strings.Join(parts, "/") + "]"
}

// Package main is the entry point for the grimdank editor CLI
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/grimdank-editor/cmd/grimdank/client"
	"github.com/KirkDiggler/grimdank-editor/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "grimdank",
	Short: "Army content editor",
	Long: `grimdank edits the rules, weapons, wargear and units of a wargame army
backend: it costs them, checks their attachments, and keeps drafts of
unfinished edits.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(unitCmd)
	rootCmd.AddCommand(draftCmd)
	rootCmd.AddCommand(totalCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

// setup loads .env and the environment, then installs the logger
func setup(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded
	client.Configure(cfg)

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(handler))
	return nil
}

// Package client provides commands that talk to the content backend directly
package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/grimdank-editor/internal/clients/backend"
	"github.com/KirkDiggler/grimdank-editor/internal/config"
)

var cfg *config.Config

// ClientCmd is the root command for all backend commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Browse the content backend",
	Long:  `Client commands list and fetch rules, weapons and wargear straight from the backend.`,
}

// Configure hands the loaded settings to the client commands
func Configure(c *config.Config) {
	cfg = c
}

func init() {
	ClientCmd.AddCommand(listRulesCmd)
	ClientCmd.AddCommand(listWeaponsCmd)
	ClientCmd.AddCommand(listWarGearCmd)

	ClientCmd.AddCommand(getRuleCmd)
	ClientCmd.AddCommand(getWeaponCmd)
	ClientCmd.AddCommand(getWarGearCmd)

	ClientCmd.AddCommand(deleteCmd)
}

func newBackend() (backend.Client, error) {
	return backend.New(&backend.Config{
		BaseURL: cfg.BackendURL,
		Timeout: cfg.RequestTimeout,
	})
}

// arena is a local two-player arena duel with a persisted player roster.
//
// Usage:
//
//	arena                 - Run the game
//	arena roster          - List saved players
//	arena roster rm <ref> - Delete a saved player by portrait reference
//
// Global flags:
//
//	--config <path>  - Explicit config file (default: ./arena.yaml)
//	--db <path>      - Roster database path (overrides config)
//	--assets <path>  - Assets directory (overrides config)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/garsondee/blade-arena/internal/config"
)

var (
	flagConfig string
	flagDB     string
	flagAssets string
)

func main() {
	// .env values feed the flag defaults; explicit flags still win.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Blade Arena - local two-player blade duel",
	Long: `Blade Arena is a local two-player arena game: grab the blade,
drain your opponent, and keep a roster of players with portraits.

Running arena with no arguments starts the game.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runGame()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", envOr("ARENA_DB", ""), "Roster database path")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", envOr("ARENA_ASSETS", ""), "Assets directory")

	rootCmd.AddCommand(rosterCmd)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadConfig resolves the effective configuration: file, then flag
// overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDB != "" {
		cfg.DatabasePath = flagDB
	}
	if flagAssets != "" {
		cfg.AssetsDir = flagAssets
	}
	return cfg, nil
}

func fatal(msg string, err error) {
	log.Fatal(msg, "err", err)
}

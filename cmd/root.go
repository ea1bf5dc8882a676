package cmd

import (
	"os"

	"github.com/ayato/kanadrill/internal/config"
	"github.com/ayato/kanadrill/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kanadrill",
	Short: "Terminal kana drill",
	Long:  "Kanadrill — terminal flashcard trainer for hiragana and katakana with per-character statistics.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides KANADRILL_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to TOML config file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadFileConfig reads the TOML config from --config or the default path.
func loadFileConfig(cmd *cobra.Command) (config.FileConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	return config.LoadConfig(path)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then KANADRILL_DB env var, then the config file, then the
// default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.FileConfig) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := dbPathFromEnvOrConfig(cfg); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func dbPathFromEnvOrConfig(cfg config.FileConfig) string {
	// KANADRILL_DB is handled inside store.DefaultDBPath and ranks above
	// the config file, so defer to it when the env var is set.
	if os.Getenv("KANADRILL_DB") != "" {
		return ""
	}
	if cfg.Storage.DBPath == nil {
		return ""
	}
	return *cfg.Storage.DBPath
}

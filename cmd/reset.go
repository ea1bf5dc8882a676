package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ayato/kanadrill/internal/session"
	"github.com/ayato/kanadrill/internal/stats"
	"github.com/ayato/kanadrill/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset statistics and history",
	Long:  "Clears lifetime statistics and answer history. Settings are kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Print("Reset all statistics and history? [y/N] ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		cfg, err := loadFileConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()

		// Keep settings, zero everything else. Written synchronously so the
		// command can't exit before the write lands.
		settings := cfg.Defaults()
		if state, err := st.Load(ctx); err == nil && state != nil {
			settings = state.Settings
		}
		err = st.Save(ctx, session.PersistedState{
			Settings:   settings,
			Statistics: stats.New(),
		})
		if err != nil {
			return fmt.Errorf("reset: %w", err)
		}

		fmt.Println("Statistics reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}

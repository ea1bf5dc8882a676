package cmd

import (
	"fmt"
	"time"

	"github.com/ayato/kanadrill/internal/app"
	"github.com/ayato/kanadrill/internal/drill"
	"github.com/ayato/kanadrill/internal/session"
	"github.com/ayato/kanadrill/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds the session, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, sess, err := buildSession(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(sess)
}

// buildSession wires config, storage and the session store together.
// The caller owns closing the returned store.
func buildSession(cmd *cobra.Command) (*store.Store, *session.Store, error) {
	cfg, err := loadFileConfig(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	opts := []session.Option{
		session.WithDefaults(cfg.Defaults()),
	}
	if cfg.Drill.AutoNextDelayMs != nil && *cfg.Drill.AutoNextDelayMs > 0 {
		opts = append(opts, session.WithAutoAdvanceDelay(
			time.Duration(*cfg.Drill.AutoNextDelayMs)*time.Millisecond))
	}

	sess := session.New(drill.NewGenerator(), st, opts...)
	return st, sess, nil
}

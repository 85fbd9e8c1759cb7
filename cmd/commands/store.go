package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docubase/docursor/config"
	"github.com/docubase/docursor/data"
	"github.com/docubase/docursor/logging/logger"

	// Store drivers register themselves on import.
	_ "github.com/docubase/docursor/data/memory"
	_ "github.com/docubase/docursor/data/mongodb"
)

// openStore loads configuration, sets up logging, and opens the configured
// document store. The second cleanup return must be called before exit.
func openStore(cmd *cobra.Command) (data.Store, *logger.Logger, func(), error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	path, err := cmd.Flags().GetString("conf")
	if err != nil {
		return nil, nil, nil, err
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	logCleanup, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("creating logger: %w", err)
	}
	log := logger.StdLogger()

	store, err := data.Open(ctx, cfg.Data)
	if err != nil {
		logCleanup()
		return nil, nil, nil, fmt.Errorf("opening store: %w", err)
	}

	cleanup := func() {
		_ = store.Close(context.Background())
		logCleanup()
	}
	return store, log, cleanup, nil
}

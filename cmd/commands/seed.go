package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docubase/docursor/data"
)

// NewSeedCommand creates the seed command
func NewSeedCommand() *cobra.Command {
	var from, to int64

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the schema and seed customer documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			if from > to {
				return fmt.Errorf("invalid range %d..%d", from, to)
			}

			store, log, cleanup, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			if err := store.EnsureSchema(ctx); err != nil {
				return fmt.Errorf("ensuring schema: %w", err)
			}

			docs := make([]data.Document, 0, to-from+1)
			for id := from; id <= to; id++ {
				docs = append(docs, data.Document{
					Key:  id,
					Data: fmt.Appendf(nil, `{"id":%d,"balance":%d}`, id, id*10),
				})
			}
			if err := store.InsertMany(ctx, docs); err != nil {
				return fmt.Errorf("seeding: %w", err)
			}

			log.Info(ctx, "seeded customers", "from", from, "to", to, "count", len(docs))
			return nil
		},
	}

	cmd.Flags().Int64Var(&from, "from", 1, "first customer id to create")
	cmd.Flags().Int64Var(&to, "to", 20, "last customer id to create")
	return cmd
}

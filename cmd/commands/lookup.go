package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewLookupCommand creates the lookup command
func NewLookupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup [key...]",
		Short: "Fetch customer documents by key",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := make([]int64, 0, len(args))
			for _, arg := range args {
				key, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid key %q", arg)
				}
				keys = append(keys, key)
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

			docs, err := store.GetByKeys(ctx, keys)
			if err != nil {
				return fmt.Errorf("looking up keys: %w", err)
			}
			for _, doc := range docs {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", doc.Key, doc.Data)
			}
			if len(docs) < len(keys) {
				log.Warn(ctx, "some keys were not found", "requested", len(keys), "found", len(docs))
			}
			return nil
		},
	}
	return cmd
}

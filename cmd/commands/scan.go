package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docubase/docursor/data"
	"github.com/docubase/docursor/paging"
)

// NewScanCommand creates the scan command
func NewScanCommand() *cobra.Command {
	var (
		pageSize int
		min, max int64
		reverse  bool
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Traverse the customer index page by page",
		Long: `Traverse the customer index with cursor pagination, printing one
document per line. --max becomes a store-side bound carried on every page
request; --min is applied client-side to entries of fetched pages.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, log, cleanup, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			opts := []paging.Option{paging.WithPageSize(pageSize)}
			if min > 0 {
				opts = append(opts, paging.WithFilter(paging.KeyAtLeast(min)))
			}
			if max > 0 {
				opts = append(opts, paging.WithBound(paging.EncodeCursor(max)))
			}
			if reverse {
				opts = append(opts, paging.WithDirection(paging.Backward))
			}

			it, err := paging.New(store.FetchPage, materializeDocument, opts...)
			if err != nil {
				return err
			}

			count := 0
			for doc, err := range it.All(ctx) {
				if err != nil {
					return fmt.Errorf("scanning: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", doc.Key, doc.Data)
				count++
			}

			log.Info(ctx, "scan complete", "documents", count, "page_size", pageSize)
			return nil
		},
	}

	cmd.Flags().IntVar(&pageSize, "page-size", 8, "entries requested per page")
	cmd.Flags().Int64Var(&min, "min", 0, "lowest key to include (0 for no lower bound)")
	cmd.Flags().Int64Var(&max, "max", 0, "highest key to include (0 for no upper bound)")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "traverse from the end of the index")
	return cmd
}

func materializeDocument(e paging.RawEntry) (data.Document, error) {
	if e.Data == nil {
		return data.Document{}, errors.New("entry has no document body")
	}
	return data.Document{Key: e.Key, Data: e.Data}, nil
}

package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/drivepipe/drivepipe/internal/drive"
)

func newListCmd() *cobra.Command {
	var (
		query          string
		pageSize       int
		orderBy        string
		includeTrashed bool
		asIndex        bool
		asJSON         bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List files in Google Drive",
		Long: `List files visible to the service account, optionally filtered with a
Drive query expression (e.g. "mimeType = 'application/vnd.google-apps.spreadsheet'").

With --index, prints a plain name-to-ID table built from a single listing
page, collapsing duplicate names to the last one seen.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := newDriveClient(ctx)
			if err != nil {
				return err
			}

			if asIndex {
				index, err := client.ListFileIndex(ctx, pageSize)
				if err != nil {
					return err
				}
				if len(index) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No files found.")
					return nil
				}

				names := make([]string, 0, len(index))
				for name := range index {
					names = append(names, name)
				}
				sort.Strings(names)

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				for _, name := range names {
					fmt.Fprintf(w, "%s\t%s\n", name, index[name])
				}
				return w.Flush()
			}

			files, next, err := client.ListFiles(ctx, &drive.ListOptions{
				Query:          query,
				PageSize:       pageSize,
				OrderBy:        orderBy,
				IncludeTrashed: includeTrashed,
			})
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(files)
			}

			if len(files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No files found.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tMODIFIED\tSIZE")
			for _, f := range files {
				modified := ""
				if !f.ModifiedTime.IsZero() {
					modified = f.ModifiedTime.Format(time.RFC3339)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", f.ID, f.Name, modified, f.Size)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if next != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "More files available; rerun with a larger --page-size.\n")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Drive query expression to filter files")
	cmd.Flags().IntVar(&pageSize, "page-size", 100, "maximum number of files to return")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "sort order, e.g. 'modifiedTime desc'")
	cmd.Flags().BoolVar(&includeTrashed, "include-trashed", false, "include trashed files in the listing")
	cmd.Flags().BoolVar(&asIndex, "index", false, "print a name-to-ID index instead of the full table")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the listing as JSON")
	return cmd
}

package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	var modifiedOnly bool

	cmd := &cobra.Command{
		Use:   "info <name-or-id>",
		Short: "Show metadata for a Drive file",
		Long: `Show the metadata of a file, resolved by Drive file ID or exact name.

With --modified-only, prints just the last modification time, which is
useful for freshness checks in scripts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := newDriveClient(ctx)
			if err != nil {
				return err
			}

			info, err := resolveFile(ctx, client, args[0])
			if err != nil {
				return err
			}

			if modifiedOnly {
				modified, err := client.ModifiedTime(ctx, info.ID)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), modified.Format(time.RFC3339))
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "ID:\t%s\n", info.ID)
			fmt.Fprintf(w, "Name:\t%s\n", info.Name)
			fmt.Fprintf(w, "MIME type:\t%s\n", info.MimeType)
			fmt.Fprintf(w, "Size:\t%d\n", info.Size)
			if !info.CreatedTime.IsZero() {
				fmt.Fprintf(w, "Created:\t%s\n", info.CreatedTime.Format(time.RFC3339))
			}
			if !info.ModifiedTime.IsZero() {
				fmt.Fprintf(w, "Modified:\t%s\n", info.ModifiedTime.Format(time.RFC3339))
			}
			if len(info.Parents) > 0 {
				fmt.Fprintf(w, "Parents:\t%s\n", strings.Join(info.Parents, ", "))
			}
			if info.WebViewLink != "" {
				fmt.Fprintf(w, "Link:\t%s\n", info.WebViewLink)
			}
			fmt.Fprintf(w, "Trashed:\t%v\n", info.Trashed)
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&modifiedOnly, "modified-only", false, "print only the last modification time")
	return cmd
}

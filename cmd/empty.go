package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEmptyFolderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "empty-folder <folder-id>",
		Short: "Delete every file in a Drive folder",
		Long: `Page through a folder and delete each file in it. Files that fail to
delete are reported but do not stop the sweep; the folder itself is kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := newDriveClient(ctx)
			if err != nil {
				return err
			}

			deleted, err := client.EmptyFolder(ctx, args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d files from folder %s\n", deleted, args[0])
			if err != nil {
				return fmt.Errorf("some files could not be deleted: %w", err)
			}
			return nil
		},
	}

	return cmd
}

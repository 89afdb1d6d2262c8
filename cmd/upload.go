package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/drivepipe/drivepipe/internal/drive"
)

func newUploadCmd() *cobra.Command {
	var (
		name        string
		parents     []string
		mimeType    string
		description string
	)

	cmd := &cobra.Command{
		Use:   "upload <path>",
		Short: "Upload a local file to Google Drive",
		Long: `Upload a local file. The Drive file name defaults to the local base name,
and the content type is detected by Drive unless --mime-type is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := newDriveClient(ctx)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			driveName := name
			if driveName == "" {
				driveName = filepath.Base(args[0])
			}

			info, err := client.UploadFile(ctx, driveName, f, &drive.UploadOptions{
				ParentFolders: parents,
				MimeType:      mimeType,
				Description:   description,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s as %s (%d bytes)\n", info.Name, info.ID, info.Size)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "file name in Drive (default: the local base name)")
	cmd.Flags().StringSliceVar(&parents, "parent", nil, "parent folder ID (repeatable)")
	cmd.Flags().StringVar(&mimeType, "mime-type", "", "content type of the file (default: detected by Drive)")
	cmd.Flags().StringVar(&description, "description", "", "description attached to the Drive file")
	return cmd
}

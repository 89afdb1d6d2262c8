package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drivepipe/drivepipe/internal/drive"
	"github.com/drivepipe/drivepipe/internal/sheets"
	"github.com/drivepipe/drivepipe/internal/tabular"
)

func newPushCmd() *cobra.Command {
	var (
		spreadsheet string
		sheetName   string
		cell        string
		userEntered bool
		sourceSheet string
	)

	cmd := &cobra.Command{
		Use:   "push <path>",
		Short: "Push a local tabular file into a Google Sheet",
		Long: `Read a local CSV or Excel file and write its rows into a sheet of a
Google spreadsheet, starting at the anchor cell (A2 by default, keeping
row 1 for headers).

The target spreadsheet may be given as a Drive file ID or as an exact file
name; a reference that does not exist as an ID is resolved by name through
Drive. Values are written raw unless --user-entered is set, in which case
Sheets parses numbers, dates, and formulas the way the UI would.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			rows, err := tabular.LoadFile(args[0], sourceSheet)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				return fmt.Errorf("%s contains no rows", args[0])
			}

			driveClient, err := newDriveClient(ctx)
			if err != nil {
				return err
			}
			info, err := resolveFile(ctx, driveClient, spreadsheet)
			if err != nil {
				return err
			}
			if err := ensureSpreadsheet(info); err != nil {
				return err
			}
			spreadsheetID := info.ID

			client, err := newSheetsClient(ctx)
			if err != nil {
				return err
			}

			result, err := client.PushTable(ctx, spreadsheetID, sheetName, cell, rows, &sheets.UpdateOptions{
				UserEntered: userEntered,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %d rows, %d cells\n",
				result.UpdatedRange, result.UpdatedRows, result.UpdatedCells)
			return nil
		},
	}

	cmd.Flags().StringVarP(&spreadsheet, "spreadsheet", "s", "", "target spreadsheet, by Drive file ID or exact name (required)")
	cmd.Flags().StringVar(&sheetName, "sheet", "", "sheet (tab) to write to (default: the spreadsheet's first sheet)")
	cmd.Flags().StringVar(&cell, "cell", sheets.DefaultCell, "anchor cell to start writing at")
	cmd.Flags().BoolVar(&userEntered, "user-entered", false, "let Sheets parse values as if typed into the UI")
	cmd.Flags().StringVar(&sourceSheet, "source-sheet", "", "sheet to read from a local workbook (default: the active sheet)")
	_ = cmd.MarkFlagRequired("spreadsheet")
	return cmd
}

// ensureSpreadsheet rejects push targets the Sheets API cannot write to.
// Office files stored in Drive keep their own MIME type and must be
// converted to a Google spreadsheet before they can be updated.
func ensureSpreadsheet(info *drive.FileInfo) error {
	if info.MimeType != "" && info.MimeType != drive.SpreadsheetMimeType {
		return fmt.Errorf("%s is not a Google spreadsheet (mime type %s)", info.Name, info.MimeType)
	}
	return nil
}

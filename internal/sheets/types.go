package sheets

// Value input options accepted by the Sheets API.
const (
	// InputOptionRaw stores values as-is, without parsing
	InputOptionRaw = "RAW"

	// InputOptionUserEntered parses values as if typed into the UI
	// (numbers, dates, formulas)
	InputOptionUserEntered = "USER_ENTERED"
)

// DefaultCell is the anchor cell used when none is given; row 1 is left for
// headers.
const DefaultCell = "A2"

// UpdateOptions contains options for a values update.
type UpdateOptions struct {
	// UserEntered parses the pushed values the way the Sheets UI would.
	// When false, values are stored raw.
	UserEntered bool
}

// InputOption returns the API value-input option for the update.
func (o *UpdateOptions) InputOption() string {
	if o != nil && o.UserEntered {
		return InputOptionUserEntered
	}
	return InputOptionRaw
}

// UpdateResult describes what a values update changed.
type UpdateResult struct {
	// SpreadsheetID is the spreadsheet that was updated
	SpreadsheetID string `json:"spreadsheetId"`

	// UpdatedRange is the range actually written, in A1 notation
	UpdatedRange string `json:"updatedRange"`

	// UpdatedRows is the number of rows affected
	UpdatedRows int64 `json:"updatedRows"`

	// UpdatedColumns is the number of columns affected
	UpdatedColumns int64 `json:"updatedColumns"`

	// UpdatedCells is the number of cells affected
	UpdatedCells int64 `json:"updatedCells"`
}

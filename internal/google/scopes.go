package google

// Scopes are the Google OAuth scopes requested for the service account.
// These scopes are used consistently across the application.
//
// The scopes provide access to:
//   - Google Drive: full access plus per-file access
//   - Google Sheets: full spreadsheet access
var Scopes = []string{
	// Google Drive scopes
	"https://www.googleapis.com/auth/drive",
	"https://www.googleapis.com/auth/drive.file",

	// Google Sheets scope
	"https://www.googleapis.com/auth/spreadsheets",
}

package drive

import "time"

// FileInfo represents metadata about a file or folder in Google Drive
type FileInfo struct {
	// ID is the unique identifier for the file
	ID string `json:"id"`

	// Name is the name of the file
	Name string `json:"name"`

	// MimeType is the MIME type of the file
	MimeType string `json:"mimeType"`

	// Size is the size of the file in bytes (not populated for folders or
	// Google-native formats)
	Size int64 `json:"size,omitempty"`

	// CreatedTime is when the file was created
	CreatedTime time.Time `json:"createdTime"`

	// ModifiedTime is when the file was last modified
	ModifiedTime time.Time `json:"modifiedTime"`

	// WebViewLink is a link for opening the file in a relevant Google editor or viewer
	WebViewLink string `json:"webViewLink,omitempty"`

	// Parents are the IDs of the parent folders
	Parents []string `json:"parents,omitempty"`

	// Trashed indicates whether the file is in the trash
	Trashed bool `json:"trashed"`
}

// ListOptions contains options for listing files
type ListOptions struct {
	// Query is a query for filtering the file results using Google Drive's
	// query language, see https://developers.google.com/drive/api/guides/search-files
	// Examples:
	//   "name contains 'report'"
	//   "mimeType='application/pdf'"
	//   "'folderID' in parents"
	Query string

	// PageSize is the maximum number of files to return (max: 1000)
	PageSize int

	// OrderBy specifies the sort order of the result set
	// Example: "folder,modifiedTime desc,name"
	OrderBy string

	// PageToken is a token for retrieving the next page of results
	PageToken string

	// IncludeTrashed includes trashed files in results
	IncludeTrashed bool
}

// UploadOptions contains options for uploading a file
type UploadOptions struct {
	// ParentFolders are the IDs of parent folders where the file should be placed
	ParentFolders []string

	// Description is a short description of the file
	Description string

	// MimeType is the MIME type of the file (e.g., "text/csv").
	// If not specified, Drive will attempt to detect it automatically
	MimeType string

	// ModifiedTime allows setting a custom modification time
	ModifiedTime *time.Time
}

// DownloadOptions contains options for fetching a spreadsheet to disk
type DownloadOptions struct {
	// Dir is the directory the file is written to; created if missing
	// (default: "outputs")
	Dir string

	// WithTimestamp appends a _YYYYMMDDHHMMSS suffix to the file name,
	// before the extension
	WithTimestamp bool

	// ExportMimeType overrides the export format for Google-native
	// spreadsheets (default: the xlsx MIME type)
	ExportMimeType string
}

// DownloadResult describes a file written to disk.
type DownloadResult struct {
	// FileID is the Drive ID of the source file
	FileID string `json:"fileId"`

	// Path is the local path the content was written to
	Path string `json:"path"`

	// Bytes is the number of bytes written
	Bytes int64 `json:"bytes"`

	// Exported is true when the file went through the export endpoint
	// rather than a direct media download
	Exported bool `json:"exported"`
}

package drive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/drivepipe/drivepipe/internal/google"
	"github.com/drivepipe/drivepipe/internal/instrumentation"
	"github.com/drivepipe/drivepipe/internal/logging"
)

const (
	// FolderMimeType is the MIME type for Google Drive folders
	FolderMimeType = "application/vnd.google-apps.folder"

	// SpreadsheetMimeType is the MIME type for Google-native spreadsheets
	SpreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

	// XLSXMimeType is the MIME type spreadsheets are exported to
	XLSXMimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

const fileInfoFields = "id, name, mimeType, size, createdTime, modifiedTime, webViewLink, parents, trashed"

// emptyFolderPageSize bounds one listing page while sweeping a folder.
const emptyFolderPageSize = 1000

// Client wraps the Google Drive API service
type Client struct {
	service *drive.Service
	logger  *slog.Logger
	metrics *instrumentation.Metrics
}

// ClientConfig holds the dependencies for constructing a Client.
type ClientConfig struct {
	// Credentials supplies the authenticated HTTP client. Required.
	Credentials google.CredentialsProvider

	// Logger receives operation logs; defaults to slog.Default().
	Logger *slog.Logger

	// Metrics records API operation metrics; may be nil.
	Metrics *instrumentation.Metrics
}

// NewClient creates a new Google Drive client authenticated with a service
// account. Use CredentialsProvider.Available() to check the key first.
func NewClient(ctx context.Context, cfg ClientConfig) (*Client, error) {
	if cfg.Credentials == nil {
		return nil, fmt.Errorf("credentials provider is required")
	}

	httpClient, err := cfg.Credentials.HTTPClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("no usable service account credentials: %w", err)
	}

	driveService, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		service: driveService,
		logger:  logging.WithService(logger, instrumentation.ServiceDrive),
		metrics: cfg.Metrics,
	}, nil
}

// record logs the outcome of an API operation and feeds the metrics recorder.
func (c *Client) record(ctx context.Context, operation string, start time.Time, err error, attrs ...slog.Attr) {
	duration := time.Since(start)
	status := instrumentation.StatusFromError(err)
	c.metrics.RecordAPIOperation(ctx, instrumentation.ServiceDrive, operation, status, duration)

	all := make([]slog.Attr, 0, len(attrs)+4)
	all = append(all,
		logging.Operation(operation),
		slog.Duration(logging.KeyDuration, duration),
		logging.Status(status),
	)
	all = append(all, attrs...)

	if err != nil {
		all = append(all, logging.Err(err))
		c.logger.LogAttrs(ctx, slog.LevelWarn, "drive operation failed", all...)
		return
	}
	c.logger.LogAttrs(ctx, slog.LevelDebug, "drive operation completed", all...)
}

// ListFiles lists files in Google Drive with optional filtering
func (c *Client) ListFiles(ctx context.Context, options *ListOptions) ([]*FileInfo, string, error) {
	start := time.Now()

	call := c.service.Files.List().
		Context(ctx).
		Fields(googleapi.Field("nextPageToken, files(" + fileInfoFields + ")"))

	var userQuery string
	includeTrashed := false
	if options != nil {
		userQuery = options.Query
		includeTrashed = options.IncludeTrashed
		if options.PageSize > 0 {
			call = call.PageSize(int64(options.PageSize))
		}
		if options.OrderBy != "" {
			call = call.OrderBy(options.OrderBy)
		}
		if options.PageToken != "" {
			call = call.PageToken(options.PageToken)
		}
	}

	if q := buildListFilesQuery(userQuery, includeTrashed); q != "" {
		call = call.Q(q)
	}

	fileList, err := call.Do()
	c.record(ctx, "list", start, err)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list files: %w", err)
	}

	files := make([]*FileInfo, len(fileList.Files))
	for i, f := range fileList.Files {
		files[i] = convertToFileInfo(f)
	}

	return files, fileList.NextPageToken, nil
}

// ListFileIndex returns a name-to-ID index built from a single listing page.
// An empty Drive yields an empty map, not an error. Duplicate names collapse
// to the last file seen.
func (c *Client) ListFileIndex(ctx context.Context, pageSize int) (map[string]string, error) {
	files, _, err := c.ListFiles(ctx, &ListOptions{PageSize: pageSize})
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		c.logger.Info("no files found")
	}

	return buildFileIndex(files), nil
}

// FindFileByName resolves a file name to its metadata, paging through the
// listing until a match is found. Returns ErrFileNotFound when the name does
// not exist.
func (c *Client) FindFileByName(ctx context.Context, name string) (*FileInfo, error) {
	if name == "" {
		return nil, fmt.Errorf("file name is required")
	}

	query := fmt.Sprintf("name = '%s'", escapeQueryTerm(name))
	pageToken := ""
	for {
		files, next, err := c.ListFiles(ctx, &ListOptions{
			Query:     query,
			PageSize:  100,
			PageToken: pageToken,
		})
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			if f.Name == name {
				return f, nil
			}
		}
		if next == "" {
			return nil, fmt.Errorf("%q: %w", name, ErrFileNotFound)
		}
		pageToken = next
	}
}

// GetFile retrieves metadata for a specific file
func (c *Client) GetFile(ctx context.Context, fileID string) (*FileInfo, error) {
	if fileID == "" {
		return nil, fmt.Errorf("fileID is required")
	}

	start := time.Now()
	file, err := c.service.Files.Get(fileID).
		Context(ctx).
		Fields(fileInfoFields).
		Do()
	c.record(ctx, "get", start, err, logging.FileID(fileID))
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%s: %w", fileID, ErrFileNotFound)
		}
		return nil, fmt.Errorf("failed to get file %s: %w", fileID, err)
	}

	return convertToFileInfo(file), nil
}

// ModifiedTime returns the last modification time of a file.
func (c *Client) ModifiedTime(ctx context.Context, fileID string) (time.Time, error) {
	if fileID == "" {
		return time.Time{}, fmt.Errorf("fileID is required")
	}

	start := time.Now()
	file, err := c.service.Files.Get(fileID).
		Context(ctx).
		Fields("modifiedTime").
		Do()
	c.record(ctx, "get", start, err, logging.FileID(fileID))
	if err != nil {
		if isNotFound(err) {
			return time.Time{}, fmt.Errorf("%s: %w", fileID, ErrFileNotFound)
		}
		return time.Time{}, fmt.Errorf("failed to get modification time of %s: %w", fileID, err)
	}

	t, err := time.Parse(time.RFC3339, file.ModifiedTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse modification time %q: %w", file.ModifiedTime, err)
	}

	return t, nil
}

// DownloadFile streams the content of a file into w and returns the number of
// bytes written.
func (c *Client) DownloadFile(ctx context.Context, fileID string, w io.Writer) (int64, error) {
	if fileID == "" {
		return 0, fmt.Errorf("fileID is required")
	}

	start := time.Now()
	resp, err := c.service.Files.Get(fileID).
		Context(ctx).
		Download()
	if err != nil {
		c.record(ctx, "download", start, err, logging.FileID(fileID))
		if isNotFound(err) {
			return 0, fmt.Errorf("%s: %w", fileID, ErrFileNotFound)
		}
		return 0, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	n, err := io.Copy(w, resp.Body)
	c.record(ctx, "download", start, err, logging.FileID(fileID), logging.Bytes(n))
	if err != nil {
		return n, fmt.Errorf("failed to read content of file %s: %w", fileID, err)
	}

	c.metrics.RecordTransfer(ctx, instrumentation.DirectionDownload, "", n)
	return n, nil
}

// ExportFile converts a Google-native file to mimeType and streams the result
// into w, returning the number of bytes written. An empty mimeType exports to
// xlsx.
func (c *Client) ExportFile(ctx context.Context, fileID, mimeType string, w io.Writer) (int64, error) {
	if fileID == "" {
		return 0, fmt.Errorf("fileID is required")
	}
	if mimeType == "" {
		mimeType = XLSXMimeType
	}

	start := time.Now()
	resp, err := c.service.Files.Export(fileID, mimeType).
		Context(ctx).
		Download()
	if err != nil {
		c.record(ctx, "export", start, err, logging.FileID(fileID))
		if isNotFound(err) {
			return 0, fmt.Errorf("%s: %w", fileID, ErrFileNotFound)
		}
		return 0, fmt.Errorf("failed to export file %s as %s: %w", fileID, mimeType, err)
	}
	defer resp.Body.Close()

	n, err := io.Copy(w, resp.Body)
	c.record(ctx, "export", start, err, logging.FileID(fileID), logging.Bytes(n))
	if err != nil {
		return n, fmt.Errorf("failed to read export of file %s: %w", fileID, err)
	}

	c.metrics.RecordTransfer(ctx, instrumentation.DirectionExport, "", n)
	return n, nil
}

// UploadFile uploads a file to Google Drive
func (c *Client) UploadFile(ctx context.Context, name string, content io.Reader, options *UploadOptions) (*FileInfo, error) {
	if name == "" {
		return nil, fmt.Errorf("file name is required")
	}
	if content == nil {
		return nil, fmt.Errorf("file content is required")
	}

	file := &drive.File{
		Name: name,
	}

	if options != nil {
		if len(options.ParentFolders) > 0 {
			file.Parents = options.ParentFolders
		}
		if options.Description != "" {
			file.Description = options.Description
		}
		if options.MimeType != "" {
			file.MimeType = options.MimeType
		}
		if options.ModifiedTime != nil {
			file.ModifiedTime = options.ModifiedTime.Format(time.RFC3339)
		}
	}

	uploadCtx, span := instrumentation.StartSpan(ctx, "drive.upload_file",
		instrumentation.ServiceDrive, "upload",
		attribute.String("drive.file_name", name))

	call := c.service.Files.Create(file).
		Context(uploadCtx).
		Fields(fileInfoFields)

	if file.MimeType != "" {
		call = call.Media(content, googleapi.ContentType(file.MimeType))
	} else {
		// Let Drive detect the content type
		call = call.Media(content)
	}

	start := time.Now()
	driveFile, err := call.Do()
	c.record(uploadCtx, "upload", start, err, logging.FileName(name))
	instrumentation.EndSpan(span, err)
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	info := convertToFileInfo(driveFile)
	c.metrics.RecordTransfer(uploadCtx, instrumentation.DirectionUpload, name, info.Size)
	return info, nil
}

// DeleteFile deletes a file from Google Drive
func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	if fileID == "" {
		return fmt.Errorf("fileID is required")
	}

	start := time.Now()
	err := c.service.Files.Delete(fileID).Context(ctx).Do()
	c.record(ctx, "delete", start, err, logging.FileID(fileID))
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%s: %w", fileID, ErrFileNotFound)
		}
		return fmt.Errorf("failed to delete file %s: %w", fileID, err)
	}

	return nil
}

// EmptyFolder deletes every file in a folder, paging through the full
// listing. Per-file failures do not stop the sweep; they are collected and
// returned joined, alongside the count of files actually deleted.
func (c *Client) EmptyFolder(ctx context.Context, folderID string) (deleted int, err error) {
	if folderID == "" {
		return 0, fmt.Errorf("folderID is required")
	}

	ctx, span := instrumentation.StartSpan(ctx, "drive.empty_folder",
		instrumentation.ServiceDrive, "empty_folder",
		attribute.String(instrumentation.SpanAttrFolderID, folderID))
	defer func() { instrumentation.EndSpan(span, err) }()

	var errs []error
	pageToken := ""
	for {
		files, next, err := c.ListFiles(ctx, &ListOptions{
			Query:     fmt.Sprintf("'%s' in parents", escapeQueryTerm(folderID)),
			PageSize:  emptyFolderPageSize,
			PageToken: pageToken,
		})
		if err != nil {
			errs = append(errs, err)
			break
		}

		for _, f := range files {
			if err := c.DeleteFile(ctx, f.ID); err != nil {
				c.logger.Warn("failed to delete file while emptying folder",
					logging.FolderID(folderID),
					logging.FileID(f.ID),
					logging.FileName(f.Name),
					logging.Err(err),
				)
				errs = append(errs, err)
				continue
			}
			deleted++
		}

		if next == "" {
			break
		}
		pageToken = next
	}

	return deleted, errors.Join(errs...)
}

// convertToFileInfo converts a Drive API File to our FileInfo type
func convertToFileInfo(f *drive.File) *FileInfo {
	fileInfo := &FileInfo{
		ID:          f.Id,
		Name:        f.Name,
		MimeType:    f.MimeType,
		Size:        f.Size,
		WebViewLink: f.WebViewLink,
		Parents:     f.Parents,
		Trashed:     f.Trashed,
	}

	if f.CreatedTime != "" {
		if t, err := time.Parse(time.RFC3339, f.CreatedTime); err == nil {
			fileInfo.CreatedTime = t
		}
	}
	if f.ModifiedTime != "" {
		if t, err := time.Parse(time.RFC3339, f.ModifiedTime); err == nil {
			fileInfo.ModifiedTime = t
		}
	}

	return fileInfo
}

// buildFileIndex collapses a listing into a name-to-ID map, last write wins.
func buildFileIndex(files []*FileInfo) map[string]string {
	index := make(map[string]string, len(files))
	for _, f := range files {
		index[f.Name] = f.ID
	}
	return index
}

// buildListFilesQuery combines the user query with the trashed filter.
func buildListFilesQuery(userQuery string, includeTrashed bool) string {
	if includeTrashed {
		return userQuery
	}
	if userQuery == "" {
		return "trashed=false"
	}
	return "(" + userQuery + ") and trashed=false"
}

// escapeQueryTerm escapes a value for embedding in a Drive query string.
func escapeQueryTerm(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

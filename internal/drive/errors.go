package drive

import (
	"errors"

	"google.golang.org/api/googleapi"
)

// ErrFileNotFound is returned when a file name or ID cannot be resolved in
// Drive.
var ErrFileNotFound = errors.New("file not found in Google Drive")

// isNotFound reports whether err is a Drive API 404.
func isNotFound(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == 404
}

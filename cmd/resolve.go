package cmd

import (
	"context"
	"errors"

	"github.com/drivepipe/drivepipe/internal/drive"
)

// resolveFile resolves a reference that may be either a Drive file ID or an
// exact file name. ID-shaped references are tried as an ID first; when Drive
// reports no such file, the reference is resolved by name instead, since a
// long unspaced name is indistinguishable from an ID.
func resolveFile(ctx context.Context, client *drive.Client, ref string) (*drive.FileInfo, error) {
	if looksLikeFileID(ref) {
		info, err := client.GetFile(ctx, ref)
		if err == nil {
			return info, nil
		}
		if !errors.Is(err, drive.ErrFileNotFound) {
			return nil, err
		}
	}
	return client.FindFileByName(ctx, ref)
}

// looksLikeFileID reports whether s is plausibly a Drive file ID. IDs are
// long, unspaced base64url-ish strings; anything with spaces, dots, or other
// punctuation never qualifies. A true result is only a hint, resolveFile
// still falls back to a name lookup when the ID does not exist.
func looksLikeFileID(s string) bool {
	if len(s) < 25 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}

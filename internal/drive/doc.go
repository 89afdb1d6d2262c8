// Package drive provides a client for interacting with the Google Drive API.
//
// This package covers the file management operations drivepipe needs:
//   - Listing files and building name-to-ID indexes
//   - Resolving files by name
//   - Downloading file content and exporting Google-native formats
//   - Fetching whole spreadsheets to disk
//   - Uploading files into folders
//   - Deleting files and emptying folders
//   - Reading file metadata, including modification times
//
// Authentication uses a service-account key through the google package's
// CredentialsProvider. Vendor API types never escape this package; results
// are converted to local types such as FileInfo.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := drive.NewClient(ctx, drive.ClientConfig{
//	    Credentials: google.NewFileCredentialsProvider("keys/sa.json"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	index, err := client.ListFileIndex(ctx, 100)
package drive

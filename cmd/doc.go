// Package cmd implements the command-line interface for drivepipe.
//
// This package provides the following commands:
//   - list: List files in Google Drive
//   - download: Download a spreadsheet by name
//   - upload: Upload a local file to Google Drive
//   - empty-folder: Delete every file in a Drive folder
//   - push: Push a local tabular file into a Google Sheet
//   - info: Show metadata for a file
//   - version: Display version information
//
// Global flags control the .env file, the service-account key, logging,
// and the optional Prometheus metrics listener.
package cmd

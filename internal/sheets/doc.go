// Package sheets provides a client for writing tabular data to Google Sheets.
//
// The client wraps the Sheets v4 values endpoints: updating a range with
// rows of values and clearing a range. Range strings use A1 notation and are
// built with Range, which quotes sheet names when needed.
package sheets

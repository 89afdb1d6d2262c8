// Package google provides service-account authentication for Google APIs.
//
// Credentials are loaded from a service-account JSON key file. The
// CredentialsProvider interface allows different key sources to be plugged in,
// keeping the Drive and Sheets clients independent of where the key lives.
package google

// Package timezone parses and renders reservation calendar dates.
//
// Usage:
//
//	checkIn, err := timezone.ParseDate("2025-03-01")  // midnight in the app timezone
//	stored := timezone.FormatDate(checkIn)           // "2025-03-01"
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
// Use standard IANA timezone database names for reliable cross-platform compatibility.
package timezone

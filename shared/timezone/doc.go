// Package timezone keeps every server-assigned and displayed timestamp in one location.
//
// The location comes from APP_TIMEZONE (an IANA name such as "Asia/Thimphu" or "UTC") and is
// loaded when the package is imported:
//
//	now := timezone.Now()
//	label := timezone.Display(booking.CreatedAt) // "Mar 4, 2025, 9:15:00 AM +06"
package timezone

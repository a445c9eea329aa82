package store

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatDueDate renders t as "January 3rd, 2025" in t's own location.
func FormatDueDate(t time.Time) string {
	return fmt.Sprintf("%s %s, %d", t.Month(), humanize.Ordinal(t.Day()), t.Year())
}

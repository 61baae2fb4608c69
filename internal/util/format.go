package util

import (
	"fmt"
	"time"
)

// FormatDuration formats a duration as m:ss.t.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	tenths := int(d / (100 * time.Millisecond))
	m := tenths / 600
	s := tenths / 10 % 60
	return fmt.Sprintf("%d:%02d.%d", m, s, tenths%10)
}

// FormatMillis formats a duration as a whole number of milliseconds.
func FormatMillis(d time.Duration) string {
	return fmt.Sprintf("%dms", d.Milliseconds())
}

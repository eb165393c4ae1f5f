package queue

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration as M:SS with zero-padded seconds.
// Invalid (negative or zero) input renders as "0:00".
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "0:00"
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

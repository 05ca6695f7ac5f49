package timefmt

import (
	"fmt"
	"time"
)

// AbsoluteFunc formats a timestamp as an absolute date string. It is used
// once the relative buckets run out (a week or more in the past).
type AbsoluteFunc func(t time.Time) string

// Bucket boundaries for relative labels.
const (
	minuteMillis = int64(time.Minute / time.Millisecond)
	hourMillis   = int64(time.Hour / time.Millisecond)
	dayMillis    = 24 * hourMillis
	weekMillis   = 7 * dayMillis
)

// Relative converts target into a coarse human-readable label relative to
// now: "just now", "N minutes ago", "N hours ago", "N days ago", or the
// absolute formatter's output for anything a week or more old. Buckets are
// computed by floor division of the millisecond difference. Future
// timestamps clamp to "just now".
func Relative(now, target time.Time, absolute AbsoluteFunc) string {
	diff := now.Sub(target).Milliseconds()
	if diff < minuteMillis {
		return "just now"
	}
	if diff < hourMillis {
		return pluralize(diff/minuteMillis, "minute")
	}
	if diff < dayMillis {
		return pluralize(diff/hourMillis, "hour")
	}
	if diff < weekMillis {
		return pluralize(diff/dayMillis, "day")
	}
	if absolute == nil {
		return target.Format("Jan 2, 2006")
	}
	return absolute(target)
}

func pluralize(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

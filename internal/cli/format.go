package cli

import (
	"strconv"
	"strings"
	"time"
)

// FormatCount adds thousands separators: 12450 -> "12,450".
func FormatCount(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	digits := strconv.FormatInt(n, 10)

	var groups []string
	for len(digits) > 3 {
		cut := len(digits) - 3
		groups = append([]string{digits[cut:]}, groups...)
		digits = digits[:cut]
	}
	groups = append([]string{digits}, groups...)

	out := strings.Join(groups, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// FormatElapsed renders a duration the way an operator reads a stopwatch:
// seconds with one decimal below a minute, then "Xm Ys", then "Xh Ym".
func FormatElapsed(d time.Duration) string {
	if d < time.Second {
		return strconv.FormatFloat(d.Seconds(), 'f', 1, 64) + "s"
	}

	totalSeconds := int(d.Seconds())
	if totalSeconds < 60 {
		return strconv.FormatFloat(d.Seconds(), 'f', 1, 64) + "s"
	}

	minutes := totalSeconds / 60
	seconds := totalSeconds % 60
	if minutes < 60 {
		return strconv.Itoa(minutes) + "m " + strconv.Itoa(seconds) + "s"
	}

	hours := minutes / 60
	minutes %= 60
	return strconv.Itoa(hours) + "h " + strconv.Itoa(minutes) + "m"
}

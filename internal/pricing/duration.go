package pricing

import (
	"regexp"
	"strconv"
)

var (
	hoursRe   = regexp.MustCompile(`(\d+)\s*hr`)
	minutesRe = regexp.MustCompile(`(\d+)\s*min`)
)

// ParseDurationText converts extra durations like "1hr 30mins", "45mins" or "2hr" to minutes.
// Text without a recognizable component yields 0.
func ParseDurationText(s string) int {
	total := 0
	if m := hoursRe.FindStringSubmatch(s); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			total += n * 60
		}
	}
	if m := minutesRe.FindStringSubmatch(s); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			total += n
		}
	}
	return total
}

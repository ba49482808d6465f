package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// "lebih dari 3 tahun lalu" and the occasional "lebih dara" typo the site ships.
var moreThanYearsPattern = regexp.MustCompile(`lebih\s*dar[ai]\s*(\d+)`)

// NormalizeDate converts an Indonesian relative-date phrase ("2 hari lalu",
// "kemarin") into a YYYY-MM-DD date computed against now. Unrecognized
// phrases and unparseable counts are returned unchanged; the function never
// fails, it only degrades to the original text.
func NormalizeDate(relative string, now time.Time) string {
	rd := strings.ToLower(relative)

	var actual time.Time
	switch {
	case strings.Contains(rd, "hari ini"):
		actual = now
	case strings.Contains(rd, "kemarin"):
		actual = now.AddDate(0, 0, -1)
	case strings.Contains(rd, "hari"):
		days, ok := leadingCount(rd)
		if !ok {
			return relative
		}
		actual = now.AddDate(0, 0, -days)
	case strings.Contains(rd, "minggu"):
		weeks, ok := leadingCount(rd)
		if !ok {
			return relative
		}
		actual = now.AddDate(0, 0, -weeks*7)
	case strings.Contains(rd, "bulan"):
		months, ok := leadingCount(rd)
		if !ok {
			return relative
		}
		// The page never gives a calendar month, so a month is a fixed 30 days.
		actual = now.AddDate(0, 0, -months*30)
	case strings.Contains(rd, "tahun"):
		var years int
		if strings.Contains(rd, "lebih dari") {
			years = 1
			if m := moreThanYearsPattern.FindStringSubmatch(rd); m != nil {
				years, _ = strconv.Atoi(m[1])
			}
		} else {
			n, ok := leadingCount(rd)
			if !ok {
				return relative
			}
			years = n
		}
		actual = now.AddDate(0, 0, -years*365)
	default:
		return relative
	}

	return actual.Format(time.DateOnly)
}

// leadingCount parses the first whitespace-delimited token as an integer.
func leadingCount(s string) (int, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, false
	}
	return n, true
}

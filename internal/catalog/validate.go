package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	clockPattern    = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// parseClock converts an HH:MM string to minutes since midnight.
func parseClock(s string) (int, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	return hour*60 + minute, nil
}

// validDate reports whether s is a well-formed YYYY-MM-DD date.
func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// validTime reports whether s is a well-formed HH:MM time of day.
func validTime(s string) bool {
	_, err := parseClock(s)
	return err == nil
}

// validEmail reports whether s looks like a standard email address.
func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// validPhone reports whether s is a digit string of at least 10 digits after
// stripping common separators.
func validPhone(s string) bool {
	cleaned := phoneSeparators.Replace(s)
	if len(cleaned) < 10 {
		return false
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

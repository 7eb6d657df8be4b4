// Package format renders backend values for display.
package format

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	Empty = "-"

	dateTimeLayout = "2006-01-02 15:04"
	dateLayout     = "2006-01-02"
)

// layouts the backend is known to emit, most specific first.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	dateLayout,
}

var printer = message.NewPrinter(language.English)

func parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateTime renders s as YYYY-MM-DD HH:mm, or "-" when s is empty or not a
// timestamp.
func DateTime(s string) string {
	t, ok := parse(s)
	if !ok {
		return Empty
	}
	return t.Format(dateTimeLayout)
}

// Date renders s as YYYY-MM-DD, or "-".
func Date(s string) string {
	t, ok := parse(s)
	if !ok {
		return Empty
	}
	return t.Format(dateLayout)
}

// Money renders an amount with grouping and two decimals.
func Money(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// Number renders v with grouping.
func Number(v int64) string {
	return printer.Sprintf("%d", v)
}

// Text returns s, or "-" when blank.
func Text(s string) string {
	if strings.TrimSpace(s) == "" {
		return Empty
	}
	return s
}

// Package dates provides date formatting and arithmetic helpers for batch jobs
// that exchange dates as plain strings (partition names, file suffixes, report
// stamps).
//
// Patterns use the Java-style tokens ubiquitous in batch tooling ("yyyyMMdd",
// "yyyy-MM-dd HH:mm:ss") and are translated to Go reference layouts once, at
// Format construction time. There is no mutable package-level default: callers
// hold an explicit Format value, with Default() covering the common
// day-granularity case.
package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/osmike/batchkit/internal/domain"
	errs "github.com/osmike/batchkit/internal/error"
)

// Format is a validated, immutable date format created from a Java-style
// pattern. The zero value is not usable; obtain instances via ParsePattern or
// Default.
type Format struct {
	pattern string
	layout  string
}

// Default returns the Format for the module-wide default day pattern "yyyyMMdd".
func Default() Format {
	f, _ := ParsePattern(domain.DEFAULT_DATE_FORMAT)
	return f
}

// ParsePattern validates a Java-style date pattern and returns the
// corresponding Format.
//
// Supported tokens:
//   - yyyy, yy:        year
//   - MMMM, MMM, MM:   month (name, abbreviation, zero-padded number)
//   - dd:              day of month
//   - HH, hh:          hour (24h, 12h)
//   - mm, ss:          minute, second
//   - a:               AM/PM marker
//
// Any non-letter byte is copied through literally, and text enclosed in single
// quotes is treated as a literal (e.g. "yyyyMMdd'T'HHmmss").
//
// Parameters:
//   - pattern: The Java-style pattern string (e.g. "yyyyMMdd").
//
// Returns:
//   - A Format ready for rendering and parsing.
//   - An error wrapping ErrBadPattern if the pattern contains unsupported tokens.
func ParsePattern(pattern string) (Format, error) {
	layout, err := translate(pattern)
	if err != nil {
		return Format{}, err
	}
	return Format{pattern: pattern, layout: layout}, nil
}

// Pattern returns the original Java-style pattern this Format was created from.
func (f Format) Pattern() string {
	return f.pattern
}

// Layout returns the translated Go reference layout.
func (f Format) Layout() string {
	return f.layout
}

// Render formats the given time according to the Format's pattern.
func (f Format) Render(t time.Time) string {
	return t.Format(f.layout)
}

// Parse converts a formatted date string back into a time.Time.
//
// Returns:
//   - The parsed time.
//   - An error wrapping ErrBadDate if the string does not match the pattern.
func (f Format) Parse(s string) (time.Time, error) {
	t, err := time.Parse(f.layout, s)
	if err != nil {
		return time.Time{}, errs.New(errs.ErrBadDate, fmt.Sprintf("%q does not match pattern %q", s, f.pattern))
	}
	return t, nil
}

// Today returns the current date rendered with this Format.
func (f Format) Today() string {
	return f.Render(time.Now())
}

// Yesterday returns yesterday's date rendered with this Format.
func (f Format) Yesterday() string {
	return f.DaysAgo(1)
}

// DaysAgo returns the date n days before today, rendered with this Format.
func (f Format) DaysAgo(n int) string {
	return f.Render(time.Now().AddDate(0, 0, -n))
}

// DaysAfter returns the date n days after today, rendered with this Format.
func (f Format) DaysAfter(n int) string {
	return f.Render(time.Now().AddDate(0, 0, n))
}

// AddDays shifts a formatted date by n days (n may be negative).
//
// Parameters:
//   - s: A date string matching this Format.
//   - n: Number of days to add.
//
// Returns:
//   - The shifted date rendered with this Format.
//   - An error wrapping ErrBadDate if s does not match the pattern.
func (f Format) AddDays(s string, n int) (string, error) {
	t, err := f.Parse(s)
	if err != nil {
		return "", err
	}
	return f.Render(t.AddDate(0, 0, n)), nil
}

// DayOfWeek returns the weekday of a formatted date.
func (f Format) DayOfWeek(s string) (time.Weekday, error) {
	t, err := f.Parse(s)
	if err != nil {
		return 0, err
	}
	return t.Weekday(), nil
}

// DaysBetween returns the number of whole days from a to b. The result is
// negative when b precedes a.
func (f Format) DaysBetween(a, b string) (int, error) {
	ta, err := f.Parse(a)
	if err != nil {
		return 0, err
	}
	tb, err := f.Parse(b)
	if err != nil {
		return 0, err
	}
	return int(tb.Sub(ta).Hours() / 24), nil
}

// Range returns the inclusive list of formatted dates from from to to, one per
// day.
//
// Returns:
//   - The ordered slice of formatted dates.
//   - An error wrapping ErrBadRange if from is after to, or ErrBadDate if
//     either bound does not match the pattern.
func (f Format) Range(from, to string) ([]string, error) {
	start, err := f.Parse(from)
	if err != nil {
		return nil, err
	}
	end, err := f.Parse(to)
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, errs.New(errs.ErrBadRange, fmt.Sprintf("%s is after %s", from, to))
	}

	var out []string
	for t := start; !t.After(end); t = t.AddDate(0, 0, 1) {
		out = append(out, f.Render(t))
	}
	return out, nil
}

// Reformat converts a date string from one pattern to another.
//
// Example: Reformat("20170327", "yyyyMMdd", "yyMMdd") yields "170327".
//
// Parameters:
//   - s: The date string to convert.
//   - from: Pattern s is currently formatted with.
//   - to: Target pattern.
//
// Returns:
//   - The reformatted date string.
//   - An error wrapping ErrBadPattern or ErrBadDate on invalid input.
func Reformat(s, from, to string) (string, error) {
	src, err := ParsePattern(from)
	if err != nil {
		return "", err
	}
	dst, err := ParsePattern(to)
	if err != nil {
		return "", err
	}
	t, err := src.Parse(s)
	if err != nil {
		return "", err
	}
	return dst.Render(t), nil
}

// translate converts a Java-style pattern into a Go reference layout.
func translate(pattern string) (string, error) {
	var b strings.Builder

	for i := 0; i < len(pattern); {
		c := pattern[i]

		if c == '\'' {
			end := strings.IndexByte(pattern[i+1:], '\'')
			if end < 0 {
				return "", errs.New(errs.ErrBadPattern, "unterminated quote in "+pattern)
			}
			b.WriteString(pattern[i+1 : i+1+end])
			i += end + 2
			continue
		}

		if !isLetter(c) {
			b.WriteByte(c)
			i++
			continue
		}

		run := 1
		for i+run < len(pattern) && pattern[i+run] == c {
			run++
		}

		layout, ok := tokens[pattern[i:i+run]]
		if !ok {
			return "", errs.New(errs.ErrBadPattern, fmt.Sprintf("unsupported token %q in %q", pattern[i:i+run], pattern))
		}
		b.WriteString(layout)
		i += run
	}

	return b.String(), nil
}

var tokens = map[string]string{
	"yyyy": "2006",
	"yy":   "06",
	"MMMM": "January",
	"MMM":  "Jan",
	"MM":   "01",
	"dd":   "02",
	"HH":   "15",
	"hh":   "03",
	"mm":   "04",
	"ss":   "05",
	"a":    "PM",
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

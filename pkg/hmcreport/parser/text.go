package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// MissingMarker is the text a stringified missing spreadsheet value turns into.
const MissingMarker = "nan"

var ansiEscape = regexp.MustCompile(`\x1B(?:[@-Z\\-_]|\[[0-?]*[ -/]*[@-~])`)

// Normalize converts a cell value to trimmed text with ANSI escape sequences
// and C0/C1 control characters removed. Nil and empty values yield "".
func Normalize(v any) string {
	s := Stringify(v)
	if s == "" {
		return ""
	}
	s = ansiEscape.ReplaceAllString(s, "")
	if clean, _, err := transform.String(runes.Remove(runes.In(unicode.Cc)), s); err == nil {
		s = clean
	}
	return strings.TrimSpace(s)
}

// Value normalizes v and returns nil when nothing is left or when the result
// is the missing-value marker.
func Value(v any) *string {
	s := Normalize(v)
	if s == "" || s == MissingMarker {
		return nil
	}
	return &s
}

// Stringify converts a cell value of any type to text without cleaning it.
// Zero numbers and false render as "0" and "FALSE"; only nil and NaN are empty.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case *string:
		if t == nil {
			return ""
		}
		return *t
	case []byte:
		return string(t)
	case float64:
		if math.IsNaN(t) {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		if math.IsNaN(float64(t)) {
			return ""
		}
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case bool:
		if t {
			return "TRUE"
		}
		return "FALSE"
	case time.Time:
		if t.IsZero() {
			return ""
		}
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
			return t.Format("2006-01-02")
		}
		return t.Format("2006-01-02 15:04:05")
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

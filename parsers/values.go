package parsers

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"korea-realestate/models"
)

// numberRegexp captures the first numeric value, commas included.
var numberRegexp = regexp.MustCompile(`-?[\d,]*\d(?:\.\d+)?`)

// Str renders an upstream scalar as trimmed text. Missing values become "".
func Str(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

// ParseNumber extracts a number from text such as " 82,500" or "84.97㎡".
// ok is false when no number is present.
func ParseNumber(raw string) (float64, bool) {
	match := numberRegexp.FindString(raw)
	if match == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Float coerces an upstream value to float64, zero when absent or malformed.
func Float(v any) float64 {
	f, _ := ParseNumber(Str(v))
	return f
}

// Int coerces an upstream value to int, zero when absent or malformed.
func Int(v any) int {
	return int(math.Round(Float(v)))
}

// Amount coerces a 10,000 KRW money field. Absent or malformed values stay
// nil so summaries can tell "0" from "not reported".
func Amount(v any) *int64 {
	f, ok := ParseNumber(Str(v))
	if !ok {
		return nil
	}
	n := int64(math.Round(f))
	return &n
}

// CoerceInt reads paging counters that upstream may send as numbers or
// strings. Anything non-numeric is zero.
func CoerceInt(v any) int {
	s := Str(v)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

func tradeDate(it models.Item) string {
	y, m, d := Int(it["dealYear"]), Int(it["dealMonth"]), Int(it["dealDay"])
	if y == 0 || m == 0 {
		return ""
	}
	if d == 0 {
		return strconv.Itoa(y) + "-" + pad2(m)
	}
	return strconv.Itoa(y) + "-" + pad2(m) + "-" + pad2(d)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// normaliseText collapses internal whitespace.
func normaliseText(v any) string {
	return strings.Join(strings.Fields(Str(v)), " ")
}

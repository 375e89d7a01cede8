// Package modelmeta interprets free-form model metadata for the registry
// listing path.
package modelmeta

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseParameterCount turns a free-form parameter-size string ("7b", "1.5b",
// "7 billion", "7,000,000,000") into an absolute count. Anything it cannot
// confidently parse yields 0; it never panics.
//
// A bare number below 1000 with no recognized unit is assumed to be
// billions, so terse identifiers like "7" read as 7B. That heuristic
// misreads genuinely small counts (a literal "500" meaning five hundred
// becomes 500 billion) and is kept for compatibility with existing metadata.
func ParseParameterCount(s string) int64 {
	cleaned := strings.ToLower(strings.TrimSpace(s))
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.Join(strings.Fields(cleaned), "")
	if cleaned == "" {
		return 0
	}

	wordUnits := []struct {
		suffix     string
		multiplier float64
	}{
		{"billion", 1e9},
		{"million", 1e6},
		{"thousand", 1e3},
		{"k", 1e3},
	}
	for _, u := range wordUnits {
		if !strings.HasSuffix(cleaned, u.suffix) {
			continue
		}
		prefix := strings.TrimSuffix(cleaned, u.suffix)
		if v, err := strconv.ParseFloat(prefix, 64); err == nil {
			return int64(v * u.multiplier)
		}
		// Unparseable prefix: fall through to the remaining strategies.
		break
	}

	letterUnits := map[byte]float64{'b': 1e9, 'm': 1e6, 't': 1e12}
	if mult, ok := letterUnits[cleaned[len(cleaned)-1]]; ok {
		prefix := cleaned[:len(cleaned)-1]
		if v, err := strconv.ParseFloat(prefix, 64); err == nil {
			return int64(v * mult)
		}
	}

	// Last resort: keep digits and at most one decimal point.
	var b strings.Builder
	seenDot := false
	for i := 0; i < len(cleaned); i++ {
		c := cleaned[i]
		switch {
		case c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == '.' && !seenDot:
			b.WriteByte(c)
			seenDot = true
		}
	}

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	if v < 1000 {
		return int64(v * 1e9)
	}
	return int64(v)
}

// FormatParameterCount renders an absolute parameter count in the short human
// form used in model listings ("7B", "135M", "1.5B").
func FormatParameterCount(n int64) string {
	format := func(v float64, unit string) string {
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d%s", int64(v), unit)
		}
		return fmt.Sprintf("%.1f%s", v, unit)
	}

	switch {
	case n >= 1e12:
		return format(float64(n)/1e12, "T")
	case n >= 1e9:
		return format(float64(n)/1e9, "B")
	case n >= 1e6:
		return format(float64(n)/1e6, "M")
	case n >= 1e3:
		return format(float64(n)/1e3, "K")
	default:
		return strconv.FormatInt(n, 10)
	}
}

// Package timeutil provides time parsing and formatting utilities for MP4Box
// commands and output.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDurationToken converts an MP4Box duration token to total seconds.
//
// MP4Box -info reports durations as four integer fields — hours, minutes,
// seconds, milliseconds — separated by ':' and/or '.' (the millisecond field
// is usually dot-separated, e.g. "00:01:30.000"). The token is normalized to
// a single separator before splitting, so "01.02.03.004" and "01:02:03.004"
// parse identically.
//
// Example:
//
//	ParseDurationToken("01.02.03.004") // 3723.004
func ParseDurationToken(token string) (float64, error) {
	normalized := strings.ReplaceAll(token, ".", ":")

	fields := strings.Split(normalized, ":")
	if len(fields) != 4 {
		return 0, fmt.Errorf("expected 4 duration fields, got %d in %q", len(fields), token)
	}

	values := make([]int, 4)
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return 0, fmt.Errorf("duration field %q in %q is not an integer", field, token)
		}
		if v < 0 {
			return 0, fmt.Errorf("duration field %q in %q is negative", field, token)
		}
		values[i] = v
	}

	hours, minutes, seconds, millis := values[0], values[1], values[2], values[3]
	return float64(hours)*3600 + float64(minutes)*60 + float64(seconds) + float64(millis)/1000, nil
}

// FormatSeconds renders a seconds value the way MP4Box expects time offsets:
// a plain decimal number with no trailing zeros.
//
// Example:
//
//	FormatSeconds(60)   // "60"
//	FormatSeconds(90.5) // "90.5"
func FormatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}

// FormatRange renders a start/end offset pair for the MP4Box -splitx flag.
//
// Example:
//
//	FormatRange(60, 120) // "60:120"
func FormatRange(start, end float64) string {
	return FormatSeconds(start) + ":" + FormatSeconds(end)
}

// Package memlimit parses memory-limit configuration strings in the
// GOMEMLIMIT syntax: an integer byte count with an optional unit suffix.
package memlimit

import (
	"fmt"
	"strconv"
	"strings"
)

var multipliers = map[string]int64{
	"":    1,
	"B":   1,
	"KiB": 1 << 10,
	"MiB": 1 << 20,
	"GiB": 1 << 30,
	"TiB": 1 << 40,
}

// Parse converts a limit string such as "100MiB" or "1073741824" into a
// byte count. An unexpected unit suffix or a non-numeric count is an error.
func Parse(limit string) (int64, error) {
	digits := limit
	for len(digits) > 0 && (digits[len(digits)-1] < '0' || digits[len(digits)-1] > '9') {
		digits = digits[:len(digits)-1]
	}

	suffix := strings.TrimSpace(limit[len(digits):])
	mult, ok := multipliers[suffix]
	if !ok {
		return 0, fmt.Errorf("memlimit: unexpected unit suffix %q in %q", suffix, limit)
	}

	count, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("memlimit: malformed byte count in %q: %w", limit, err)
	}
	if count < 0 {
		return 0, fmt.Errorf("memlimit: negative byte count in %q", limit)
	}

	return count * mult, nil
}

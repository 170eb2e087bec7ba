package bmime

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// generateBoundary produces a delimiter token that combines a random UUID
// component with a timestamp-derived component, making collisions across
// builder instances and across time negligible. Whether the token happens
// to occur inside part content is not checked; that remains the caller's
// responsibility.
func generateBoundary() string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")
	return random + strconv.FormatInt(time.Now().UnixNano(), 36)
}

// validateBoundary checks the token against the RFC 2046 section 5.1.1
// grammar, minus the space character which would require quoting in the
// Content-Type parameter.
func validateBoundary(boundary string) error {
	if len(boundary) < 1 || len(boundary) > 69 {
		return fmt.Errorf("bmime: invalid boundary length %d", len(boundary))
	}

	for _, b := range boundary {
		if 'A' <= b && b <= 'Z' || 'a' <= b && b <= 'z' || '0' <= b && b <= '9' {
			continue
		}
		switch b {
		case '\'', '(', ')', '+', '_', ',', '-', '.', '/', ':', '=', '?':
			continue
		}
		return fmt.Errorf("bmime: invalid boundary character %q", b)
	}

	return nil
}

package lookup

import (
	"errors"
	"strings"
)

// sentinel errors.
var (
	ErrNoInput       = errors.New("no cve id given")
	ErrValueRequired = errors.New("value required")
)

// ParseQuery splits raw input on commas and trims each part. Empty parts are
// dropped; order and duplicates are preserved. ErrNoInput is returned when
// nothing remains.
func ParseQuery(input string) ([]string, error) {
	parts := strings.Split(input, ",")

	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}

	if len(ids) == 0 {
		return nil, ErrNoInput
	}

	return ids, nil
}

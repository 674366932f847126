package shared

import (
	"fmt"
	"strconv"
)

// FormatID renders an entity id as its document key.
func FormatID(id int) string {
	return strconv.Itoa(id)
}

// ParseID converts a document key or command argument back into an id.
// Only the canonical decimal form produced by FormatID is accepted.
func ParseID(value string) (int, error) {
	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", value, err)
	}

	if FormatID(id) != value {
		return 0, fmt.Errorf("invalid id %q: not in canonical form", value)
	}

	return id, nil
}

// Ptr returns a pointer to value, for optional update fields.
func Ptr[T any](value T) *T {
	return &value
}

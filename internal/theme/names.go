package theme

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownName is returned when a name does not match any enumeration value.
var ErrUnknownName = errors.New("unknown name")

func nameOf[T ~int](names []string, value T) string {
	if int(value) < 0 || int(value) >= len(names) {
		return fmt.Sprintf("%d", int(value))
	}
	return names[value]
}

func parseName[T ~int](kind string, names []string, value string) (T, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.ReplaceAll(normalized, "_", "-")
	for i, name := range names {
		if name == normalized {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("%s %q: %w (expected one of %s)", kind, value, ErrUnknownName, strings.Join(names, ", "))
}

func allOf[T ~int](names []string) []T {
	values := make([]T, len(names))
	for i := range names {
		values[i] = T(i)
	}
	return values
}

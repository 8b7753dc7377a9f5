package pagination

import "errors"

var errIncompleteCursor = errors.New("cursor is missing id or created_at")

// IsValid reports whether encoded is empty or a cursor DecodeCursor accepts.
func IsValid(encoded string) bool {
	_, err := DecodeCursor(encoded)
	return err == nil
}

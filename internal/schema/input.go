package schema

import (
	"errors"
	"fmt"
	"io"
)

// DefaultMaxInputBytes bounds DDL read by ReadDDL when no limit is given.
const DefaultMaxInputBytes = 8 << 20

var ErrInputTooLarge = errors.New("ddl input too large")

// ReadDDL reads all of r, failing with ErrInputTooLarge once more than
// limit bytes arrive. A limit of zero or less means DefaultMaxInputBytes.
func ReadDDL(r io.Reader, limit int64) (string, error) {
	if limit <= 0 {
		limit = DefaultMaxInputBytes
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", fmt.Errorf("read ddl: %w", err)
	}
	if int64(len(data)) > limit {
		return "", fmt.Errorf("%w: limit is %d bytes", ErrInputTooLarge, limit)
	}
	return string(data), nil
}

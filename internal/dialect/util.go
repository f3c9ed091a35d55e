package dialect

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// literalStyle holds the per-dialect pieces of literal rendering.
type literalStyle struct {
	quote      func(string) string
	trueLit    string
	falseLit   string
	bytes      func([]byte) string
	timeLayout string
}

// formatLiteral renders v as a SQL literal. Unsupported types fall back
// to their fmt representation, quoted as a string.
func formatLiteral(v any, style literalStyle) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case bool:
		if x {
			return style.trueLit
		}
		return style.falseLit
	case int:
		return strconv.Itoa(x)
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(x)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return style.quote(x)
	case []byte:
		return style.bytes(x)
	case time.Time:
		return style.quote(x.Format(style.timeLayout))
	default:
		return style.quote(fmt.Sprint(x))
	}
}

// quoteString is the ANSI string literal: single quotes, doubled inside.
func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func hexBytes(prefix, suffix string) func([]byte) string {
	return func(b []byte) string {
		return prefix + hex.EncodeToString(b) + suffix
	}
}

// quoteColumns quotes every column with the dialect's identifier quoting
// and joins them for a column list.
func quoteColumns(d Dialect, cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = d.QuoteIdentifier(c)
	}
	return strings.Join(quoted, ", ")
}

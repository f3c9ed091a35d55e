package dialect

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

type PostgresDialect struct{}

var postgresStyle = literalStyle{
	// QuoteLiteral switches to E'' syntax with a leading space when the
	// value holds a backslash.
	quote:      func(s string) string { return strings.TrimSpace(pq.QuoteLiteral(s)) },
	trueLit:    "TRUE",
	falseLit:   "FALSE",
	bytes:      hexBytes(`'\x`, `'::bytea`),
	timeLayout: "2006-01-02 15:04:05",
}

func (d *PostgresDialect) Name() string { return "postgres" }

func (d *PostgresDialect) QuoteIdentifier(name string) string {
	return pq.QuoteIdentifier(name)
}

func (d *PostgresDialect) Literal(v any) string {
	return formatLiteral(v, postgresStyle)
}

func (d *PostgresDialect) InsertStatement(table string, cols, values []string) string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT DO NOTHING;", d.QuoteIdentifier(table), quoteColumns(d, cols), strings.Join(values, ", "))
}

func (d *PostgresDialect) TruncateStatement(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s CASCADE;", d.QuoteIdentifier(table))
}

// BeforeScript defers constraint checks to commit. This only helps for
// foreign keys declared DEFERRABLE, which is why the script runs in one
// transaction.
func (d *PostgresDialect) BeforeScript(tables []string) []string {
	return []string{"BEGIN;", "SET CONSTRAINTS ALL DEFERRED;"}
}

func (d *PostgresDialect) AfterScript(tables []string) []string {
	return []string{"SET CONSTRAINTS ALL IMMEDIATE;", "COMMIT;"}
}

func (d *PostgresDialect) BeforeTable(table string) []string { return nil }
func (d *PostgresDialect) AfterTable(table string) []string  { return nil }

// SchemaFromDSN accepts both postgres:// URLs and key=value conninfo
// strings and returns the dbname, or "public" when none is set.
func (d *PostgresDialect) SchemaFromDSN(dsn string) (string, error) {
	conninfo := strings.TrimSpace(dsn)
	if strings.HasPrefix(conninfo, "postgres://") || strings.HasPrefix(conninfo, "postgresql://") {
		var err error
		if conninfo, err = pq.ParseURL(conninfo); err != nil {
			return "", fmt.Errorf("parse postgres url: %w", err)
		}
	}
	if name := conninfoValue(conninfo, "dbname"); name != "" {
		return name, nil
	}
	return "public", nil
}

// conninfoValue looks up key in a libpq conninfo string. Spaces around
// '=' are allowed, values may be single-quoted, and a backslash escapes
// the next character.
func conninfoValue(conninfo, key string) string {
	var (
		pairs   []string
		b       strings.Builder
		quoted  bool
		escaped bool
		space   bool // unquoted blank seen; ends the pair unless next to '='
		afterEq bool
	)
	for _, r := range conninfo {
		if !escaped && !quoted {
			switch r {
			case ' ', '\t', '\n':
				space = true
				continue
			case '=':
				space, afterEq = false, true
				b.WriteRune(r)
				continue
			}
		}
		if space && !afterEq && b.Len() > 0 {
			pairs = append(pairs, b.String())
			b.Reset()
		}
		space, afterEq = false, false

		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '\'':
			quoted = !quoted
		default:
			b.WriteRune(r)
		}
	}
	if b.Len() > 0 {
		pairs = append(pairs, b.String())
	}

	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if ok && strings.TrimSpace(k) == key {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

package dialect

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownDialect = errors.New("unknown dialect")

// Names lists the canonical dialect names accepted by GetDialect.
var Names = []string{"mysql", "postgres", "sqlserver", "oracle"}

// GetDialect returns the Dialect for a driver or dialect name. An empty
// name selects MySQL.
func GetDialect(driver string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "mysql", "mariadb":
		return &MysqlDialect{}, nil
	case "postgres", "postgresql", "pgx":
		return &PostgresDialect{}, nil
	case "sqlserver", "mssql":
		return &MSSQLDialect{}, nil
	case "oracle":
		return &OracleDialect{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownDialect, driver, strings.Join(Names, ", "))
	}
}

// Ensure interface implementation
var _ Dialect = (*MysqlDialect)(nil)
var _ Dialect = (*PostgresDialect)(nil)
var _ Dialect = (*MSSQLDialect)(nil)
var _ Dialect = (*OracleDialect)(nil)

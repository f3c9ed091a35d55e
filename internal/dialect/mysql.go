package dialect

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

type MysqlDialect struct{}

// MySQL treats backslash as an escape inside string literals.
var mysqlStringEscaper = strings.NewReplacer(`\`, `\\`, `'`, `''`)

var mysqlStyle = literalStyle{
	quote:      func(s string) string { return "'" + mysqlStringEscaper.Replace(s) + "'" },
	trueLit:    "1",
	falseLit:   "0",
	bytes:      hexBytes("X'", "'"),
	timeLayout: time.DateTime,
}

func (d *MysqlDialect) Name() string { return "mysql" }

func (d *MysqlDialect) QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func (d *MysqlDialect) Literal(v any) string {
	return formatLiteral(v, mysqlStyle)
}

func (d *MysqlDialect) InsertStatement(table string, cols, values []string) string {
	return fmt.Sprintf("INSERT IGNORE INTO %s (%s) VALUES (%s);", d.QuoteIdentifier(table), quoteColumns(d, cols), strings.Join(values, ", "))
}

func (d *MysqlDialect) TruncateStatement(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s;", d.QuoteIdentifier(table))
}

func (d *MysqlDialect) BeforeScript(tables []string) []string {
	return []string{"SET FOREIGN_KEY_CHECKS = 0;"}
}

func (d *MysqlDialect) AfterScript(tables []string) []string {
	return []string{"SET FOREIGN_KEY_CHECKS = 1;"}
}

func (d *MysqlDialect) BeforeTable(table string) []string { return nil }
func (d *MysqlDialect) AfterTable(table string) []string  { return nil }

// SchemaFromDSN returns the database name of a go-sql-driver DSN such as
// user:pass@tcp(localhost:3306)/shop.
func (d *MysqlDialect) SchemaFromDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	return cfg.DBName, nil
}

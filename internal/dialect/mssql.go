package dialect

import (
	"fmt"
	"strings"

	"github.com/microsoft/go-mssqldb/msdsn"
)

type MSSQLDialect struct{}

var mssqlStyle = literalStyle{
	quote:      func(s string) string { return "N" + quoteString(s) },
	trueLit:    "1",
	falseLit:   "0",
	bytes:      hexBytes("0x", ""),
	timeLayout: "2006-01-02T15:04:05",
}

func (d *MSSQLDialect) Name() string { return "sqlserver" }

func (d *MSSQLDialect) QuoteIdentifier(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

func (d *MSSQLDialect) Literal(v any) string {
	return formatLiteral(v, mssqlStyle)
}

func (d *MSSQLDialect) InsertStatement(table string, cols, values []string) string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);", d.QuoteIdentifier(table), quoteColumns(d, cols), strings.Join(values, ", "))
}

// TruncateStatement uses DELETE since SQL Server refuses to truncate a
// table referenced by a foreign key, even with the constraint disabled.
func (d *MSSQLDialect) TruncateStatement(table string) string {
	return fmt.Sprintf("DELETE FROM %s;", d.QuoteIdentifier(table))
}

func (d *MSSQLDialect) BeforeScript(tables []string) []string {
	return []string{"SET NOCOUNT ON;"}
}

// AfterScript re-enables constraints on every table. WITH CHECK validates
// the rows inserted while they were off.
func (d *MSSQLDialect) AfterScript(tables []string) []string {
	stmts := make([]string, 0, len(tables))
	for _, t := range tables {
		stmts = append(stmts, fmt.Sprintf("ALTER TABLE %s WITH CHECK CHECK CONSTRAINT all;", d.QuoteIdentifier(t)))
	}
	return stmts
}

// BeforeTable disables all constraints on the table so circular
// references (store <-> staff) can be filled in any order. They are
// enabled again globally in AfterScript.
func (d *MSSQLDialect) BeforeTable(table string) []string {
	return []string{fmt.Sprintf("ALTER TABLE %s NOCHECK CONSTRAINT all;", d.QuoteIdentifier(table))}
}

func (d *MSSQLDialect) AfterTable(table string) []string { return nil }

// SchemaFromDSN returns the database of a sqlserver:// URL, ADO or ODBC
// connection string, or "dbo" when none is set.
func (d *MSSQLDialect) SchemaFromDSN(dsn string) (string, error) {
	cfg, err := msdsn.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("parse sqlserver dsn: %w", err)
	}
	if cfg.Database == "" {
		return "dbo", nil
	}
	return cfg.Database, nil
}

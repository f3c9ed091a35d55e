package dialect

// Dialect abstracts database-specific SQL for generated seed scripts.
// Every statement it returns is complete, terminator included, so a
// script is just the statements joined by newlines.
type Dialect interface {
	Name() string

	// Quoting
	QuoteIdentifier(name string) string
	Literal(v any) string

	// Statement Generation
	InsertStatement(table string, cols, values []string) string
	TruncateStatement(table string) string

	// Script Hooks (Global Level), e.g. foreign key check toggles
	BeforeScript(tables []string) []string
	AfterScript(tables []string) []string

	// Script Hooks (Table Level)
	BeforeTable(table string) []string
	AfterTable(table string) []string

	// SchemaFromDSN derives a schema label from a connection string
	// without connecting.
	SchemaFromDSN(dsn string) (string, error)
}

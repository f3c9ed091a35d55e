package engine

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"daogen/internal/dialect"
	"daogen/internal/schema"

	"go.uber.org/zap"
)

// Seed result statuses.
const (
	StatusOK        = "OK"
	StatusLimited   = "LIMITED"
	StatusNoColumns = "NO COLUMNS"
)

// SeedResult reports what Seed wrote for one table.
type SeedResult struct {
	TableName string `json:"tableName" yaml:"table_name"`
	Target    int    `json:"target" yaml:"target"`
	Written   int    `json:"written" yaml:"written"`
	Status    string `json:"status" yaml:"status"`
	Note      string `json:"note,omitempty" yaml:"note,omitempty"`
}

// SeedOptions tune Seed. Count is the number of rows requested per table.
type SeedOptions struct {
	Count int
	// Truncate emits a truncate statement before each table's rows.
	Truncate bool
	// Tables restricts seeding to these tables, matched
	// case-insensitively. Empty means every table.
	Tables     []string
	OnProgress func()
	Logger     *zap.Logger
}

// getDataTypeMaxValue returns the maximum value for a given data type
func getDataTypeMaxValue(dataType string) int {
	switch strings.ToLower(dataType) {
	case "tinyint":
		return 255
	case "smallint", "smallserial":
		return 32767
	case "mediumint":
		return 8388607
	default:
		return 2147483647 // Default to int max
	}
}

// calculateMaxInsertCount caps the row count by the range of the table's
// auto-increment columns, which the database fills on its own.
func calculateMaxInsertCount(table schema.Table, requestedCount int, logger *zap.Logger) int {
	maxCount := requestedCount
	for _, c := range table.Fields() {
		if !c.AutoIncrement() {
			continue
		}
		if typeMax := getDataTypeMaxValue(c.Type()); typeMax < maxCount {
			maxCount = typeMax
			logger.Info("auto-increment column limits row count",
				zap.String("table", table.TableName()),
				zap.String("column", c.Name()),
				zap.String("type", c.Type()),
				zap.Int("max", typeMax))
		}
	}
	return maxCount
}

// insertableFields drops auto-increment columns.
func insertableFields(table schema.Table) []schema.Field {
	var fields []schema.Field
	for _, f := range table.Fields() {
		if !f.AutoIncrement() {
			fields = append(fields, f)
		}
	}
	return fields
}

// selectTables returns db's tables in declaration order, keeping only
// the named ones when names are given.
func selectTables(db *schema.Database, only []string) []schema.Table {
	tables := db.Tables()
	if len(only) == 0 {
		return tables
	}
	var selected []schema.Table
	for _, t := range tables {
		for _, name := range only {
			if strings.EqualFold(strings.TrimSpace(name), t.TableName()) {
				selected = append(selected, t)
				break
			}
		}
	}
	return selected
}

func tableNames(tables []schema.Table) []string {
	names := make([]string, 0, len(tables))
	for _, t := range tables {
		names = append(names, t.TableName())
	}
	return names
}

// Seed writes an INSERT script filling every table of db with fake rows
// in d's syntax. Tables are written in declaration order between the
// dialect's script hooks, which switch foreign key checks off and on.
func Seed(w io.Writer, db *schema.Database, d dialect.Dialect, g *Generator, opts SeedOptions) ([]SeedResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bw := bufio.NewWriter(w)
	writeLines := func(lines ...string) {
		for _, l := range lines {
			bw.WriteString(l)
			bw.WriteByte('\n')
		}
	}

	tables := selectTables(db, opts.Tables)
	names := tableNames(tables)
	writeLines(fmt.Sprintf("-- Seed data for database %s (%s), %d rows per table", db.Name(), d.Name(), opts.Count))
	writeLines(d.BeforeScript(names)...)

	out := make([]SeedResult, 0, len(tables))
	for _, table := range tables {
		res := SeedResult{TableName: table.TableName(), Target: opts.Count, Status: StatusOK}

		fields := insertableFields(table)
		if len(fields) == 0 {
			res.Status = StatusNoColumns
			res.Note = "every column is auto-increment"
			logger.Warn("skipping table without insertable columns", zap.String("table", table.TableName()))
			out = append(out, res)
			continue
		}

		adjustedCount := calculateMaxInsertCount(table, opts.Count, logger)
		if adjustedCount < opts.Count {
			res.Status = StatusLimited
			res.Note = fmt.Sprintf("auto-increment range allows %d rows", adjustedCount)
		}

		cols := make([]string, len(fields))
		for i, f := range fields {
			cols[i] = f.Name()
		}

		writeLines("", "-- "+table.TableName())
		if opts.Truncate {
			writeLines(d.TruncateStatement(table.TableName()))
		}
		writeLines(d.BeforeTable(table.TableName())...)
		for range adjustedCount {
			values := make([]string, len(fields))
			for i, f := range fields {
				values[i] = d.Literal(g.GenerateValue(f))
			}
			writeLines(d.InsertStatement(table.TableName(), cols, values))
			res.Written++
			if opts.OnProgress != nil {
				opts.OnProgress()
			}
		}
		writeLines(d.AfterTable(table.TableName())...)

		logger.Debug("seeded table", zap.String("table", res.TableName), zap.Int("rows", res.Written))
		out = append(out, res)
	}

	writeLines("")
	writeLines(d.AfterScript(names)...)
	if err := bw.Flush(); err != nil {
		return out, fmt.Errorf("write seed script: %w", err)
	}
	return out, nil
}

// Rows returns count fake rows for a table as column-to-value maps, for
// JSON fixtures. Auto-increment columns get their sequence number.
func Rows(table schema.Table, g *Generator, count int) []map[string]any {
	fields := table.Fields()
	rows := make([]map[string]any, 0, count)
	for i := range count {
		row := make(map[string]any, len(fields))
		for _, f := range fields {
			if f.AutoIncrement() {
				row[f.Name()] = i + 1
				continue
			}
			row[f.Name()] = g.GenerateValue(f)
		}
		rows = append(rows, row)
	}
	return rows
}

// TotalRows sums the rows Seed will write for db, for sizing progress bars.
func TotalRows(db *schema.Database, opts SeedOptions) int {
	total := 0
	for _, t := range selectTables(db, opts.Tables) {
		if len(insertableFields(t)) == 0 {
			continue
		}
		total += calculateMaxInsertCount(t, opts.Count, zap.NewNop())
	}
	return total
}

package schema

import (
	"maps"
	"slices"
	"strings"
)

// Field is one parsed column definition. It is immutable; all accessors
// are side-effect free and may be called repeatedly.
type Field struct {
	definition    string
	name          string
	typ           string
	length        string
	hasLength     bool
	def           string
	hasDefault    bool
	notNull       bool
	autoIncrement bool
	comment       string
	meaning       string
}

// Definition returns the whitespace-normalized source line.
func (f Field) Definition() string { return f.definition }

// Name returns the lowercased column name without identifier quotes.
func (f Field) Name() string { return f.name }

// UcwName returns the name with underscores removed and every word
// capitalized, e.g. user_id becomes UserId.
func (f Field) UcwName() string { return ucwName(f.name) }

// Type returns the raw SQL type without its length suffix.
func (f Field) Type() string { return f.typ }

// Length returns the unparsed text between the type's parentheses.
func (f Field) Length() (string, bool) { return f.length, f.hasLength }

// Default returns the raw default value. A CONVERT(...) default is
// reported as the literal "null".
func (f Field) Default() (string, bool) { return f.def, f.hasDefault }

func (f Field) NotNull() bool { return f.notNull }

// AutoIncrement reports AUTO_INCREMENT, IDENTITY and serial columns.
func (f Field) AutoIncrement() bool { return f.autoIncrement }

// Comment returns the column COMMENT text, if any.
func (f Field) Comment() string { return f.comment }

// Meaning returns the semantic hint derived from the name and comment
// (e.g. "email", "phone").
func (f Field) Meaning() string { return f.meaning }

// Usable reports whether the definition produced at least a name or a
// type. Degenerate fields are dropped by ExtractTable.
func (f Field) Usable() bool { return f.name != "" || f.typ != "" }

// Table is one CREATE TABLE statement as an ordered list of fields.
type Table struct {
	name   string
	fields []Field
}

func newTable(name string, fields []Field) Table {
	return Table{name: name, fields: fields}
}

// TableName returns the declared table identifier without quotes or
// schema qualifier.
func (t Table) TableName() string { return t.name }

// ClassName returns a PascalCase identifier safe for use as a class name.
func (t Table) ClassName() string { return className(t.name) }

// Fields returns the fields in declaration order.
func (t Table) Fields() []Field { return slices.Clone(t.fields) }

// Field looks up a field by name, case-insensitively.
func (t Table) Field(name string) (Field, bool) {
	for _, f := range t.fields {
		if strings.EqualFold(f.name, name) {
			return f, true
		}
	}
	return Field{}, false
}

// Database is the root aggregate handed to generators.
type Database struct {
	name    string
	tables  []Table
	options Options
}

func (d *Database) Name() string { return d.name }

// Tables returns the tables in declaration order.
func (d *Database) Tables() []Table { return slices.Clone(d.tables) }

// Table looks up a table by name, case-insensitively.
func (d *Database) Table(name string) (Table, bool) {
	for _, t := range d.tables {
		if strings.EqualFold(t.name, name) {
			return t, true
		}
	}
	return Table{}, false
}

// Options returns a copy of the pass-through generator options.
func (d *Database) Options() Options { return maps.Clone(d.options) }

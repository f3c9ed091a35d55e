package schema

import "strings"

// Category is the semantic class of a SQL column type.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryInteger
	CategoryDecimal
	CategoryText
	CategoryDateTime
)

func (c Category) String() string {
	switch c {
	case CategoryInteger:
		return "integer"
	case CategoryDecimal:
		return "decimal"
	case CategoryText:
		return "text"
	case CategoryDateTime:
		return "datetime"
	default:
		return "unknown"
	}
}

type typeSet map[string]struct{}

func newTypeSet(names ...string) typeSet {
	s := make(typeSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s typeSet) has(typ string) bool {
	_, ok := s[strings.ToUpper(typ)]
	return ok
}

// The four classification sets are pairwise disjoint.
var (
	integerTypes  = newTypeSet("TINYINT", "SMALLINT", "INTEGER", "BIGINT", "INT")
	decimalTypes  = newTypeSet("NUMERIC", "DECIMAL", "MONEY", "DEC", "FIXED", "FLOAT", "DOUBLE", "REAL")
	textTypes     = newTypeSet("NVARCHAR", "VARCHAR", "NCHAR", "CHAR", "TINYBLOB", "BLOB", "MEDIUMBLOB", "LONGBLOB", "TINYTEXT", "TEXT", "MEDIUMTEXT", "LONGTEXT", "MULTILINETEXT")
	dateTimeTypes = newTypeSet("TIMESTAMP", "DATETIME")
)

func (f Field) IsInteger() bool  { return integerTypes.has(f.typ) }
func (f Field) IsDecimal() bool  { return decimalTypes.has(f.typ) }
func (f Field) IsText() bool     { return textTypes.has(f.typ) }
func (f Field) IsDateTime() bool { return dateTimeTypes.has(f.typ) }

// Category returns the semantic class of the field's type.
func (f Field) Category() Category {
	switch {
	case f.IsInteger():
		return CategoryInteger
	case f.IsDecimal():
		return CategoryDecimal
	case f.IsText():
		return CategoryText
	case f.IsDateTime():
		return CategoryDateTime
	default:
		return CategoryUnknown
	}
}

// Representation selects the target syntax of DefaultLiteral.
type Representation string

const (
	// LiteralJSON renders a type-based placeholder value as a JSON literal.
	LiteralJSON Representation = "json"
	// LiteralPHP and LiteralGo render the column's declared default in
	// host-language syntax.
	LiteralPHP Representation = "php"
	LiteralGo  Representation = "go"
)

type hostSyntax struct {
	null string
	now  string
}

var hostLiterals = map[Representation]hostSyntax{
	LiteralPHP: {null: "null", now: `(new \DateTime('@' . time()))->format('Y-m-d\TH:i:s\Z')`},
	LiteralGo:  {null: "nil", now: "time.Now().UTC().Format(time.RFC3339)"},
}

// typePrefix returns the first 8 characters of the uppercased type. The
// JSON default and host type tables match on this prefix, so TIMESTAMPTZ
// behaves like TIMESTAMP and DATETIME2 like DATETIME.
func typePrefix(typ string) string {
	r := []rune(strings.ToUpper(typ))
	if len(r) > 8 {
		r = r[:8]
	}
	return string(r)
}

// DefaultLiteral returns a default value literal for rep. Unknown
// representations yield "null".
func (f Field) DefaultLiteral(rep Representation) string {
	rep = Representation(strings.ToLower(string(rep)))
	if rep == LiteralJSON {
		return f.jsonDefault()
	}

	host, ok := hostLiterals[rep]
	if !ok {
		return "null"
	}
	switch {
	case f.def == "":
		return host.null
	case strings.EqualFold(f.def, "CURRENT_TIMESTAMP"):
		return host.now
	default:
		return f.def
	}
}

func (f Field) jsonDefault() string {
	switch typePrefix(f.typ) {
	case "DATE":
		return `"1970-01-01"`
	case "TIME":
		return `"00:00:00"`
	case "TIMESTAM":
		return `"1970-01-01T00:00:00Z"`
	case "DATETIME":
		return `""`
	}
	switch f.Category() {
	case CategoryInteger, CategoryDecimal:
		return "0"
	default:
		return `""`
	}
}

// HostType is the target-language primitive category of a field.
type HostType string

const (
	HostString HostType = "string"
	HostInt    HostType = "int"
	HostMixed  HostType = "mixed"
)

// HostType maps text and date-like types to string, integer and decimal
// types to int, and everything else to mixed. Decimals deliberately share
// the int category.
func (f Field) HostType() HostType {
	switch typePrefix(f.typ) {
	case "DATE", "TIME", "TIMESTAM", "DATETIME":
		return HostString
	}
	switch f.Category() {
	case CategoryText:
		return HostString
	case CategoryInteger, CategoryDecimal:
		return HostInt
	default:
		return HostMixed
	}
}

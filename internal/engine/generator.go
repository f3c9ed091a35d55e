package engine

import (
	"math"
	"strconv"
	"strings"
	"time"

	"daogen/internal/schema"

	"github.com/brianvoe/gofakeit/v6"
)

// Generated dates fall in this window so a fixed seed reproduces them.
var (
	dateFrom = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	dateTo   = time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
)

// Generator produces fake column values. It is not safe for concurrent
// use; give each goroutine its own.
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator returns a Generator. A seed of 0 picks a random seed;
// any other seed makes the output reproducible.
func NewGenerator(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return s
}

// lengthInts parses "10" or "10,2" into its integer parts. Non-numeric
// lengths (ENUM lists) yield nil.
func lengthInts(f schema.Field) []int {
	length, ok := f.Length()
	if !ok {
		return nil
	}
	var out []int
	for _, p := range strings.Split(length, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil
		}
		out = append(out, n)
	}
	return out
}

// enumValues returns the quoted members of ENUM('a','b') and SET(...).
func enumValues(f schema.Field) []string {
	typ := strings.ToUpper(f.Type())
	if typ != "ENUM" && typ != "SET" {
		return nil
	}
	length, _ := f.Length()
	var values []string
	for _, v := range strings.Split(length, ",") {
		v = strings.TrimSpace(v)
		v = strings.TrimSuffix(strings.TrimPrefix(v, "'"), "'")
		if v != "" {
			values = append(values, strings.ReplaceAll(v, "''", "'"))
		}
	}
	return values
}

func isYesNo(f schema.Field) bool {
	name := f.Name()
	return strings.Contains(f.Meaning(), "yesno") || strings.HasPrefix(name, "is_") ||
		strings.Contains(name, "active") || strings.Contains(name, "enabled")
}

func isYear(f schema.Field) bool {
	return strings.Contains(f.Name(), "year") || strings.Contains(f.Meaning(), "year")
}

// GenerateValue returns a fake value for one column, driven by its
// category, meaning and declared length. Values are Go primitives,
// time.Time or []byte; nil means the type is not understood.
func (g *Generator) GenerateValue(f schema.Field) any {
	if values := enumValues(f); len(values) > 0 {
		return values[g.faker.Number(0, len(values)-1)]
	}

	switch f.Category() {
	case schema.CategoryText:
		return g.text(f)
	case schema.CategoryInteger:
		return g.integer(f)
	case schema.CategoryDecimal:
		return g.decimal(f)
	case schema.CategoryDateTime:
		return g.faker.DateRange(dateFrom, dateTo).Truncate(time.Second)
	}
	return g.other(f)
}

func (g *Generator) text(f schema.Field) any {
	limit := 0
	if ints := lengthInts(f); len(ints) > 0 {
		limit = ints[0]
	}
	name := f.Name()
	isID := name == "id" || strings.HasSuffix(name, "_id")

	switch {
	case isYear(f):
		return strconv.Itoa(g.faker.Number(2000, 2025))
	case isYesNo(f):
		return truncate(g.faker.RandomString([]string{"Y", "N"}), limit)
	case isID:
		return truncate(g.faker.UUID(), limit)
	}
	if fn, ok := lookupMeaning(f.Meaning()); ok {
		return truncate(fn(g.faker), limit)
	}
	if limit > 0 && limit < 20 {
		return truncate(g.faker.Word(), limit)
	}
	return truncate(g.faker.Sentence(5), limit)
}

func (g *Generator) integer(f schema.Field) any {
	if isYesNo(f) {
		return g.faker.Number(0, 1)
	}
	if isYear(f) {
		return g.faker.Number(2000, 2025)
	}

	switch strings.ToUpper(f.Type()) {
	case "TINYINT":
		return g.faker.Number(0, 127)
	case "SMALLINT":
		return g.faker.Number(1, 30000)
	}

	// Respect the display width when it is small enough to matter.
	maxVal := 50000
	if ints := lengthInts(f); len(ints) > 0 && ints[0] > 0 && ints[0] < 10 {
		if limit := int(math.Pow10(ints[0])) - 1; limit < maxVal {
			maxVal = limit
		}
	}
	return g.faker.Number(1, maxVal)
}

// decimal honors DECIMAL(precision, scale): the integer part never has
// more than precision-scale digits and the value is rounded to scale.
func (g *Generator) decimal(f schema.Field) any {
	upper := 99.99
	scale := 2
	if ints := lengthInts(f); len(ints) > 0 {
		if len(ints) > 1 {
			scale = ints[1]
		} else {
			scale = 0
		}
		if digits := ints[0] - scale; digits >= 0 && digits < 3 {
			upper = math.Pow10(digits) - math.Pow10(-scale)
		}
	}
	lower := math.Min(0.99, upper)
	if strings.Contains(f.Meaning(), "price") {
		return round(g.faker.Price(lower, upper), scale)
	}
	return round(g.faker.Float64Range(lower, upper), scale)
}

func round(v float64, scale int) float64 {
	p := math.Pow10(scale)
	return math.Round(v*p) / p
}

// other covers types outside the four categories, matched by prefix so
// TIMESTAMPTZ and DATETIME2 behave like their base types.
func (g *Generator) other(f schema.Field) any {
	typ := strings.ToUpper(f.Type())
	when := g.faker.DateRange(dateFrom, dateTo)

	switch {
	case strings.HasPrefix(typ, "TIMESTAMP"), strings.HasPrefix(typ, "DATETIME"), typ == "SMALLDATETIME":
		return when.Truncate(time.Second)
	case typ == "DATE":
		return when.Format(time.DateOnly)
	case typ == "TIME":
		return when.Format(time.TimeOnly)
	case typ == "YEAR":
		return g.faker.Number(2000, 2025)
	case typ == "MEDIUMINT", typ == "INT2", typ == "INT4", typ == "INT8", typ == "SERIAL", typ == "BIGSERIAL", typ == "SMALLSERIAL":
		return g.faker.Number(1, 50000)
	case strings.HasPrefix(typ, "BOOL"), typ == "BIT":
		return g.faker.Bool()
	case typ == "UUID", typ == "UNIQUEIDENTIFIER":
		return g.faker.UUID()
	case strings.HasPrefix(typ, "JSON"):
		return "{}"
	case strings.Contains(typ, "BINARY"), typ == "BYTEA", typ == "IMAGE", typ == "RAW":
		return []byte(g.faker.LetterN(8))
	case strings.Contains(typ, "CHAR"), strings.Contains(typ, "TEXT"), strings.Contains(typ, "CLOB"), typ == "STRING":
		return truncate(g.faker.Word(), 20)
	}
	return nil
}

package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeSets_Disjoint(t *testing.T) {
	sets := map[string]typeSet{
		"integer":  integerTypes,
		"decimal":  decimalTypes,
		"text":     textTypes,
		"datetime": dateTimeTypes,
	}
	for nameA, a := range sets {
		for nameB, b := range sets {
			if nameA >= nameB {
				continue
			}
			for typ := range a {
				assert.False(t, b.has(typ), "%s appears in both %s and %s", typ, nameA, nameB)
			}
		}
	}
}

func TestClassify_EveryListedTypeHasOneCategory(t *testing.T) {
	want := map[Category]typeSet{
		CategoryInteger:  integerTypes,
		CategoryDecimal:  decimalTypes,
		CategoryText:     textTypes,
		CategoryDateTime: dateTimeTypes,
	}
	for category, set := range want {
		for typ := range set {
			f := ParseField("c " + strings.ToLower(typ))
			assert.Equal(t, category, f.Category(), typ)

			flags := 0
			for _, b := range []bool{f.IsInteger(), f.IsDecimal(), f.IsText(), f.IsDateTime()} {
				if b {
					flags++
				}
			}
			assert.Equal(t, 1, flags, typ)
		}
	}
}

func TestClassify_UnknownTypes(t *testing.T) {
	for _, typ := range []string{"BOOLEAN", "GEOMETRY", "DATE", "TIME", "UUID", "JSON", ""} {
		f := ParseField("c " + typ)
		assert.False(t, f.IsInteger() || f.IsDecimal() || f.IsText() || f.IsDateTime(), typ)
		assert.Equal(t, CategoryUnknown, f.Category(), typ)
	}
}

func TestDefaultLiteral_JSON(t *testing.T) {
	tests := []struct {
		def  string
		want string
	}{
		{"c VARCHAR(255)", `""`},
		{"c INT", "0"},
		{"c TINYINT(1)", "0"},
		{"c DECIMAL(10,2)", "0"},
		{"c DATE", `"1970-01-01"`},
		{"c TIME", `"00:00:00"`},
		{"c TIMESTAMP", `"1970-01-01T00:00:00Z"`},
		{"c TIMESTAMPTZ", `"1970-01-01T00:00:00Z"`},
		{"c DATETIME", `""`},
		{"c DATETIME2", `""`},
		{"c MEDIUMTEXT", `""`},
		{"c LONGBLOB", `""`},
		{"c GEOMETRY", `""`},
		{"c", `""`},
	}

	for _, tt := range tests {
		t.Run(tt.def, func(t *testing.T) {
			f := ParseField(tt.def)
			assert.Equal(t, tt.want, f.DefaultLiteral(LiteralJSON))
			assert.Equal(t, tt.want, f.DefaultLiteral("JSON"))
		})
	}
}

func TestDefaultLiteral_Host(t *testing.T) {
	noDefault := ParseField("c INT")
	assert.Equal(t, "null", noDefault.DefaultLiteral(LiteralPHP))
	assert.Equal(t, "nil", noDefault.DefaultLiteral(LiteralGo))

	emptyDefault := ParseField("c TIMESTAMP DEFAULT ON UPDATE CURRENT_TIMESTAMP")
	assert.Equal(t, "null", emptyDefault.DefaultLiteral(LiteralPHP))

	now := ParseField("c TIMESTAMP DEFAULT current_timestamp")
	assert.Equal(t, hostLiterals[LiteralPHP].now, now.DefaultLiteral(LiteralPHP))
	assert.Equal(t, "time.Now().UTC().Format(time.RFC3339)", now.DefaultLiteral(LiteralGo))

	raw := ParseField("c VARCHAR(9) DEFAULT 'abc'")
	assert.Equal(t, "'abc'", raw.DefaultLiteral(LiteralPHP))
	assert.Equal(t, "'abc'", raw.DefaultLiteral(LiteralGo))

	assert.Equal(t, "null", raw.DefaultLiteral("xml"))
}

func TestHostType(t *testing.T) {
	tests := map[string]HostType{
		"VARCHAR":   HostString,
		"LONGTEXT":  HostString,
		"BLOB":      HostString,
		"DATE":      HostString,
		"TIME":      HostString,
		"TIMESTAMP": HostString,
		"DATETIME":  HostString,
		"INT":       HostInt,
		"BIGINT":    HostInt,
		"DECIMAL":   HostInt,
		"FLOAT":     HostInt,
		"BOOLEAN":   HostMixed,
		"UUID":      HostMixed,
	}
	for typ, want := range tests {
		assert.Equal(t, want, ParseField("c "+typ).HostType(), typ)
	}
}

package schema

import "strings"

// ParseField parses one column definition line such as
//
//	`created` TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
//
// Token 0 is the name and token 1 the type. Malformed or empty input never
// fails; it yields a Field with empty name and type.
func ParseField(line string) Field {
	def := normalizeDefinition(line)
	f := Field{definition: def}

	tokens := tokenize(def)
	if len(tokens) == 0 {
		return f
	}
	f.name = strings.ToLower(unquoteIdentifier(tokens[0]))

	if len(tokens) > 1 {
		typ, length, ok := lengthRule(tokens[1])
		f.typ = unquoteIdentifier(typ)
		f.length, f.hasLength = length, ok
	}

	if value, ok := defaultRule(tokens); ok {
		f.def, f.hasDefault = convertRule(value), true
	}
	f.notNull = notNullRule(tokens)
	f.autoIncrement = autoIncrementRule(f.typ, tokens)
	f.comment = commentRule(tokens)
	f.meaning = AnalyzeMeaning(f.name, f.comment)

	return f
}

package schema

import (
	"regexp"
	"strings"
)

// unnamedTable names tables built from bare column lines without a
// CREATE TABLE header.
const unnamedTable = "unnamed"

// headerPattern matches the CREATE TABLE prefix up to the table name.
// Go's regexp engine runs in linear time, so hostile input cannot make it
// backtrack.
var headerPattern = regexp.MustCompile(`(?i)\bCREATE\s+(?:OR\s+REPLACE\s+)?(?:(?:GLOBAL\s+|LOCAL\s+)?TEMP(?:ORARY)?\s+)?TABLE\s+(?:IF\s+NOT\s+EXISTS\s+)?`)

// structuralPrefixes open table-level clauses that are not columns.
var structuralPrefixes = []string{
	"PRIMARY KEY", "FOREIGN KEY", "UNIQUE KEY", "UNIQUE INDEX", "UNIQUE",
	"KEY", "INDEX", "CONSTRAINT", "CHECK", "FULLTEXT", "SPATIAL", "PERIOD FOR",
}

// ExtractTable builds a Table from one CREATE TABLE statement. Without a
// header the segment is read as bare column lines, one per line or comma.
func ExtractTable(segment string) Table {
	loc := headerPattern.FindStringIndex(segment)
	if loc == nil {
		clauses := splitTopLevel(segment, func(r rune) bool { return r == ',' || r == '\n' })
		return newTable(unnamedTable, extractFields(clauses))
	}

	rest := segment[loc[1]:]
	open := indexTopLevel(rest, '(')
	if open < 0 {
		return newTable(parseTableName(rest), nil)
	}

	body := rest[open+1:]
	if end := matchingParen(rest, open); end >= 0 {
		body = rest[open+1 : end]
	}
	clauses := splitTopLevel(body, func(r rune) bool { return r == ',' })
	return newTable(parseTableName(rest[:open]), extractFields(clauses))
}

// parseTableName reads the first identifier of a header and drops any
// database or schema qualifier: `db`.`users`, [dbo].[Users], "USERS".
func parseTableName(header string) string {
	tokens := tokenize(normalizeDefinition(header))
	if len(tokens) == 0 {
		return unnamedTable
	}
	parts := splitTopLevel(tokens[0], func(r rune) bool { return r == '.' })
	name := strings.TrimSpace(unquoteIdentifier(parts[len(parts)-1]))
	if name == "" {
		return unnamedTable
	}
	return name
}

func extractFields(clauses []string) []Field {
	var fields []Field
	for _, clause := range clauses {
		def := normalizeDefinition(clause)
		if isStructural(def) {
			continue
		}
		if f := ParseField(def); f.Usable() {
			fields = append(fields, f)
		}
	}
	return fields
}

// isStructural reports clauses that must be skipped rather than parsed as
// fields: table-level keys and constraints, and lone parentheses.
func isStructural(def string) bool {
	if strings.Trim(def, "(); ") == "" {
		return true
	}
	upper := strings.ToUpper(def)
	for _, p := range structuralPrefixes {
		if upper == p || strings.HasPrefix(upper, p+" ") || strings.HasPrefix(upper, p+"(") {
			return true
		}
	}
	return false
}

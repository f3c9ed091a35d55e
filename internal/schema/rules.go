package schema

import (
	"strings"
)

// Each rule below handles one DDL quirk and can be tested on its own.

var whitespaceReplacer = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

// normalizeDefinition collapses runs of spaces, folds the Firebird "( xx)"
// length quirk and trims the line including trailing list separators.
// Applying it twice yields the same string.
func normalizeDefinition(line string) string {
	s := whitespaceReplacer.Replace(line)
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	for strings.Contains(s, "( ") {
		s = strings.ReplaceAll(s, "( ", "(")
	}
	return strings.TrimRight(strings.TrimSpace(s), ",; ")
}

var identifierQuotes = strings.NewReplacer(`"`, "", "`", "", "[", "", "]", "")

// unquoteIdentifier removes ANSI, MySQL and MSSQL identifier quoting.
func unquoteIdentifier(s string) string {
	return identifierQuotes.Replace(s)
}

// lengthRule splits a type token such as VARCHAR(255) or DECIMAL(10,2)
// into the bare type and the raw text between its parentheses. An
// unclosed group keeps everything after '('.
func lengthRule(token string) (typ, length string, ok bool) {
	open := strings.IndexByte(token, '(')
	if open < 0 {
		return token, "", false
	}
	typ = token[:open]
	if end := matchingParen(token, open); end >= 0 {
		return typ, token[open+1 : end], true
	}
	return typ, token[open+1:], true
}

// clauseKeywords end a DEFAULT value. ON covers `ON UPDATE CURRENT_TIMESTAMP`.
var clauseKeywords = map[string]bool{
	"ON":             true,
	"NOT":            true,
	"NULL":           true,
	"COMMENT":        true,
	"COLLATE":        true,
	"CHECK":          true,
	"CONSTRAINT":     true,
	"PRIMARY":        true,
	"UNIQUE":         true,
	"REFERENCES":     true,
	"AUTO_INCREMENT": true,
	"AUTOINCREMENT":  true,
	"IDENTITY":       true,
}

var parenStripper = strings.NewReplacer("(", "", ")", "")

// defaultRule extracts the text after the DEFAULT keyword up to the next
// column clause. A leading NULL is the value itself. Parentheses are
// stripped; the value keeps its source casing.
func defaultRule(tokens []string) (string, bool) {
	for i := 2; i < len(tokens); i++ {
		var value []string
		switch upper := strings.ToUpper(tokens[i]); {
		case strings.EqualFold(tokens[i-1], "BY"):
			// GENERATED BY DEFAULT AS IDENTITY is not a default value.
			continue
		case upper == "DEFAULT":
		case strings.HasPrefix(upper, "DEFAULT("):
			// MSSQL writes DEFAULT(getdate()) without a space.
			value = append(value, tokens[i][len("DEFAULT"):])
		default:
			continue
		}
		for _, tok := range tokens[i+1:] {
			upper := strings.ToUpper(tok)
			if clauseKeywords[upper] && !(len(value) == 0 && upper == "NULL") {
				break
			}
			value = append(value, tok)
		}
		return parenStripper.Replace(strings.Join(value, " ")), true
	}
	return "", false
}

// convertRule discards MSSQL CONVERT(...) defaults, which have no
// portable representation.
func convertRule(value string) string {
	if strings.Contains(strings.ToUpper(value), "CONVERT") {
		return "null"
	}
	return value
}

// notNullRule reports whether the tokens NOT NULL appear after the type.
func notNullRule(tokens []string) bool {
	for i := 2; i+1 < len(tokens); i++ {
		if strings.EqualFold(tokens[i], "NOT") && strings.EqualFold(tokens[i+1], "NULL") {
			return true
		}
	}
	return false
}

// commentRule returns the unquoted text of a MySQL column COMMENT.
func commentRule(tokens []string) string {
	for i := 2; i+1 < len(tokens); i++ {
		if strings.EqualFold(tokens[i], "COMMENT") {
			return unquoteString(tokens[i+1])
		}
	}
	return ""
}

var serialTypes = newTypeSet("SERIAL", "SMALLSERIAL", "BIGSERIAL")

// autoIncrementRule detects MySQL AUTO_INCREMENT, SQLite AUTOINCREMENT,
// MSSQL/Firebird IDENTITY and Postgres serial types.
func autoIncrementRule(typ string, tokens []string) bool {
	if serialTypes.has(typ) {
		return true
	}
	for _, tok := range tokens[min(2, len(tokens)):] {
		upper := strings.ToUpper(tok)
		if upper == "AUTO_INCREMENT" || upper == "AUTOINCREMENT" || upper == "IDENTITY" ||
			strings.HasPrefix(upper, "IDENTITY(") {
			return true
		}
	}
	return false
}

var stringUnescaper = strings.NewReplacer(`\\`, `\`, `\'`, "'", "''", "'")

func unquoteString(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		s = s[1 : len(s)-1]
	}
	return stringUnescaper.Replace(s)
}

package schema

import "strings"

// ---------------------------------------------------------------------
// Quote and parenthesis aware scanning helpers
// ---------------------------------------------------------------------

// scanState tracks whether the scanner sits inside a quoted run or a
// parenthesized group. Brackets are MSSQL identifier quotes.
type scanState struct {
	quote   rune
	depth   int
	escaped bool
}

// backslashEscapes reports whether a backslash escapes the next character
// inside quote. MySQL strings allow `\'`; identifier quotes do not.
func backslashEscapes(quote byte) bool {
	return quote == '\'' || quote == '"'
}

// step advances the state over r and reports whether r is at top level,
// i.e. outside quotes and parentheses before r was consumed.
func (s *scanState) step(r rune) bool {
	if s.quote != 0 {
		switch {
		case s.escaped:
			s.escaped = false
		case r == '\\' && backslashEscapes(byte(s.quote)):
			s.escaped = true
		case r == s.quote:
			s.quote = 0
		}
		return false
	}
	switch r {
	case '\'', '"', '`':
		s.quote = r
		return false
	case '[':
		s.quote = ']'
		return false
	case '(':
		s.depth++
		return false
	case ')':
		if s.depth > 0 {
			s.depth--
		}
		return false
	}
	return s.depth == 0
}

// splitTopLevel splits s at every rune matched by isSep that is outside
// quotes and parentheses. Separators are dropped.
func splitTopLevel(s string, isSep func(r rune) bool) []string {
	var (
		parts []string
		b     strings.Builder
		state scanState
	)
	for _, r := range s {
		if state.step(r) && isSep(r) {
			parts = append(parts, b.String())
			b.Reset()
			continue
		}
		b.WriteRune(r)
	}
	return append(parts, b.String())
}

// tokenize splits a normalized definition on spaces that are outside
// quotes and parentheses, so `DECIMAL(10, 2)` and `'a b'` stay whole.
func tokenize(def string) []string {
	var tokens []string
	for _, t := range splitTopLevel(def, func(r rune) bool { return r == ' ' }) {
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// indexTopLevel returns the byte offset of the first b outside quotes,
// or -1. Parentheses are not tracked, so it can locate an opening '('.
func indexTopLevel(s string, b byte) int {
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' && backslashEscapes(quote) {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"' || c == '`':
			quote = c
		case c == '[':
			quote = ']'
		case c == b:
			return i
		}
	}
	return -1
}

// matchingParen returns the byte offset of the ')' closing the '(' at
// open, skipping quoted runs. It returns -1 when the group never closes.
func matchingParen(s string, open int) int {
	depth := 0
	var quote byte
	for i := open; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' && backslashEscapes(quote) {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"' || c == '`':
			quote = c
		case c == '(':
			depth++
		case c == ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// stripComments removes `-- ...`, `/* ... */` and MySQL `# ...` comments.
// Quoted text is left untouched and line breaks are preserved.
func stripComments(s string) string {
	var (
		b         strings.Builder
		quote     byte
		lineStart = true
	)
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			b.WriteByte(c)
			if c == '\\' && backslashEscapes(quote) && i+1 < len(s) {
				i++
				b.WriteByte(s[i])
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch {
		case c == '-' && i+1 < len(s) && s[i+1] == '-',
			c == '#' && hashStartsComment(s, i, lineStart):
			for i < len(s) && s[i] != '\n' {
				i++
			}
			if i < len(s) {
				b.WriteByte('\n')
			}
			lineStart = true
			continue
		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				return b.String()
			}
			i += end + 3
			b.WriteByte(' ')
			continue
		case c == '\'' || c == '"' || c == '`':
			quote = c
		}
		b.WriteByte(c)
		switch c {
		case '\n':
			lineStart = true
		case ' ', '\t', '\r':
		default:
			lineStart = false
		}
	}
	return b.String()
}

// hashStartsComment reports whether the '#' at i opens a MySQL comment.
// It does not when glued to an identifier (`col#2`) or when it names an
// MSSQL temporary table (`CREATE TABLE #tmp`).
func hashStartsComment(s string, i int, lineStart bool) bool {
	if lineStart {
		return true
	}
	prev := s[i-1]
	if prev != ' ' && prev != '\t' && prev != ',' && prev != '(' && prev != ')' {
		return false
	}
	before := strings.TrimRight(s[:i], " \t")
	return !hasSuffixFold(before, "TABLE") || (len(before) > 5 && isIdentByte(before[len(before)-6]))
}

func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}

func isIdentByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

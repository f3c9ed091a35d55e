package schema

import (
	"maps"
	"strings"

	"go.uber.org/zap"
)

// UnknownDatabase is the schema name used when the caller supplies none.
const UnknownDatabase = "Unknown"

// Config carries everything Build needs besides the DDL text.
type Config struct {
	// Name is the schema name; empty means UnknownDatabase.
	Name string
	// Options are passed through untouched for generators.
	Options Options
	Logger  *zap.Logger
}

// Build parses raw DDL holding any number of CREATE TABLE statements into
// a Database. It never fails: unreadable input degrades to fewer tables,
// and tables without usable fields are dropped.
func Build(ddl string, cfg Config) *Database {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = UnknownDatabase
	}

	db := &Database{name: name, options: maps.Clone(cfg.Options)}
	for _, segment := range splitStatements(stripComments(ddl)) {
		t := ExtractTable(segment)
		if len(t.fields) == 0 {
			logger.Debug("skipping table without usable fields", zap.String("table", t.name))
			continue
		}
		logger.Debug("extracted table",
			zap.String("table", t.name),
			zap.String("class", t.ClassName()),
			zap.Int("fields", len(t.fields)))
		db.tables = append(db.tables, t)
	}
	return db
}

// splitStatements cuts ddl at every CREATE TABLE header. Text before the
// first header (SET statements, USE, GO) is ignored. Without any header
// the whole text is a single headerless segment.
func splitStatements(ddl string) []string {
	locs := headerPattern.FindAllStringIndex(ddl, -1)
	if len(locs) == 0 {
		if strings.TrimSpace(ddl) == "" {
			return nil
		}
		return []string{ddl}
	}

	segments := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(ddl)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		segments = append(segments, ddl[loc[0]:end])
	}
	return segments
}

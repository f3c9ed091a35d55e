package schema

// Snapshot is a serializable view of a Database with every derived
// accessor evaluated, for JSON/YAML output.
type Snapshot struct {
	Name    string          `json:"name" yaml:"name"`
	Options Options         `json:"options,omitempty" yaml:"options,omitempty"`
	Tables  []TableSnapshot `json:"tables" yaml:"tables"`
}

type TableSnapshot struct {
	TableName string          `json:"tableName" yaml:"table_name"`
	ClassName string          `json:"className" yaml:"class_name"`
	Fields    []FieldSnapshot `json:"fields" yaml:"fields"`
}

type FieldSnapshot struct {
	Name          string   `json:"name" yaml:"name"`
	UcwName       string   `json:"ucwName" yaml:"ucw_name"`
	Type          string   `json:"type" yaml:"type"`
	Length        *string  `json:"length,omitempty" yaml:"length,omitempty"`
	Default       *string  `json:"default,omitempty" yaml:"default,omitempty"`
	NotNull       bool     `json:"notNull" yaml:"not_null"`
	AutoIncrement bool     `json:"autoIncrement,omitempty" yaml:"auto_increment,omitempty"`
	Comment       string   `json:"comment,omitempty" yaml:"comment,omitempty"`
	Category      string   `json:"category" yaml:"category"`
	HostType      HostType `json:"hostType" yaml:"host_type"`
	JSONDefault   string   `json:"jsonDefault" yaml:"json_default"`
}

// Snapshot evaluates the model into plain structs.
func (d *Database) Snapshot() Snapshot {
	s := Snapshot{Name: d.name, Options: d.Options(), Tables: make([]TableSnapshot, 0, len(d.tables))}
	for _, t := range d.tables {
		ts := TableSnapshot{TableName: t.name, ClassName: t.ClassName(), Fields: make([]FieldSnapshot, 0, len(t.fields))}
		for _, f := range t.fields {
			ts.Fields = append(ts.Fields, f.snapshot())
		}
		s.Tables = append(s.Tables, ts)
	}
	return s
}

func (f Field) snapshot() FieldSnapshot {
	fs := FieldSnapshot{
		Name:          f.name,
		UcwName:       f.UcwName(),
		Type:          f.typ,
		NotNull:       f.notNull,
		AutoIncrement: f.autoIncrement,
		Comment:       f.comment,
		Category:      f.Category().String(),
		HostType:      f.HostType(),
		JSONDefault:   f.DefaultLiteral(LiteralJSON),
	}
	if f.hasLength {
		length := f.length
		fs.Length = &length
	}
	if f.hasDefault {
		def := f.def
		fs.Default = &def
	}
	return fs
}

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"daogen/internal/schema"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func optional(value string, ok bool) string {
	if !ok {
		return "-"
	}
	if value == "" {
		return "''"
	}
	return value
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return ""
}

// renderTables lists every table with its class name and field count,
// and the model path the namespace maps it to.
func renderTables(w io.Writer, db *schema.Database) {
	ns := schema.FormatNamespace(db.Options().Namespace())

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Table", "Class", "Fields", "Model"})
	for i, tbl := range db.Tables() {
		t.AppendRow(table.Row{i + 1, tbl.TableName(), tbl.ClassName(), len(tbl.Fields()), "Models" + ns + "/" + tbl.ClassName()})
	}
	t.Render()
}

// renderFields prints one table of columns per database table.
func renderFields(w io.Writer, db *schema.Database) {
	for _, tbl := range db.Tables() {
		fmt.Fprintf(w, "\nTable: %s (%s)\n", tbl.TableName(), tbl.ClassName())
		fmt.Fprintln(w, strings.Repeat("-", 60))

		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Column", "Type", "Length", "Default", "Not Null", "Auto Inc", "Category", "Host Type", "JSON Default", "Meaning"})
		for _, f := range tbl.Fields() {
			length, hasLength := f.Length()
			def, hasDefault := f.Default()
			t.AppendRow(table.Row{
				f.Name(), f.Type(), optional(length, hasLength), optional(def, hasDefault),
				yesNo(f.NotNull()), yesNo(f.AutoIncrement()), f.Category(), f.HostType(),
				f.DefaultLiteral(schema.LiteralJSON), f.Meaning(),
			})
		}
		t.Render()
	}
}

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"slices"

	"daogen/internal/dialect"
	"daogen/internal/schema"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cleanSource sourceFlags

var cleanCmd = &cobra.Command{
	Use:   "clean [ddl-file]",
	Short: "Generate a script that empties every table",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := cleanSource.build(cmd, args)
		if err != nil {
			return err
		}

		d, err := resolveDialect(cmd)
		if err != nil {
			return err
		}
		Logger.Debug("using dialect", zap.String("dialect", d.Name()))

		return cleanDatabase(cmd.OutOrStdout(), db.Tables(), d)
	},
}

func init() {
	RootCmd.AddCommand(cleanCmd)

	cleanSource.register(cleanCmd)
	cleanCmd.Flags().String("dialect", "", "Target dialect: mysql, postgres, sqlserver or oracle (overrides config)")
}

// cleanDatabase writes truncate statements in reverse declaration order,
// between the dialect's foreign key toggles.
func cleanDatabase(w io.Writer, tables []schema.Table, d dialect.Dialect) error {
	names := make([]string, 0, len(tables))
	for _, t := range tables {
		names = append(names, t.TableName())
	}

	bw := bufio.NewWriter(w)
	writeLines := func(lines ...string) {
		for _, l := range lines {
			bw.WriteString(l)
			bw.WriteByte('\n')
		}
	}

	writeLines(d.BeforeScript(names)...)
	for _, name := range names {
		writeLines(d.BeforeTable(name)...)
	}
	for _, t := range slices.Backward(tables) {
		writeLines(d.TruncateStatement(t.TableName()))

		// DELETE keeps the IDENTITY counter; reset it.
		if _, ok := d.(*dialect.MSSQLDialect); ok && hasAutoIncrement(t) {
			writeLines(fmt.Sprintf("DBCC CHECKIDENT (%s, RESEED, 0);", d.Literal(t.TableName())))
		}
	}
	writeLines(d.AfterScript(names)...)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write clean script: %w", err)
	}
	return nil
}

func hasAutoIncrement(t schema.Table) bool {
	for _, f := range t.Fields() {
		if f.AutoIncrement() {
			return true
		}
	}
	return false
}

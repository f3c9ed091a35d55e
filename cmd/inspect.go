package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	inspectSource sourceFlags
	showFields    bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [ddl-file]",
	Short: "Parse a DDL script and print the schema model",
	Long: `Parse CREATE TABLE statements (MySQL, Firebird, SQL Server, PostgreSQL, SQLite)
from a file or stdin and print the extracted tables as a report, JSON or YAML.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()
		db, err := inspectSource.build(cmd, args)
		if err != nil {
			return err
		}
		Logger.Info("schema extracted", zap.String("database", db.Name()), zap.Int("tables", len(db.Tables())))

		w := cmd.OutOrStdout()
		switch format := viper.GetString("settings.output"); format {
		case "json":
			return renderJSON(w, db.Snapshot())
		case "yaml", "yml":
			return renderYAML(w, db.Snapshot())
		case "text", "":
			report := newReport(db, time.Since(start))
			report.WriteHeader(w)
			renderTables(w, db)
			if showFields {
				renderFields(w, db)
			}
			report.WriteSummary(w)
			return nil
		default:
			return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
		}
	},
}

func init() {
	RootCmd.AddCommand(inspectCmd)

	inspectSource.register(inspectCmd)
	inspectCmd.Flags().StringP("output", "o", "", "Output format: text, json or yaml (overrides config)")
	inspectCmd.Flags().BoolVar(&showFields, "fields", false, "Also list the columns of every table")

	viper.BindPFlag("settings.output", inspectCmd.Flags().Lookup("output"))
}

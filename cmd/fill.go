package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"daogen/internal/engine"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	fillSource sourceFlags
	count      int
	clean      bool
	seed       int64
	outFile    string
	format     string
	tables     []string
)

var fillCmd = &cobra.Command{
	Use:     "seed [ddl-file]",
	Aliases: []string{"fill"},
	Short:   "Generate an INSERT script with fake rows for every table",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		db, err := fillSource.build(cmd, args)
		if err != nil {
			return err
		}

		d, err := resolveDialect(cmd)
		if err != nil {
			return err
		}
		Logger.Debug("using dialect", zap.String("dialect", d.Name()))

		// Filter tables strategy: --tables flag, then settings.tables, then all.
		targetTables := tables
		if len(targetTables) == 0 {
			targetTables = viper.GetStringSlice("settings.tables")
		}
		for _, name := range targetTables {
			if _, ok := db.Table(name); !ok {
				return fmt.Errorf("no matching table found for input: %s", name)
			}
		}

		targetCount := viper.GetInt("settings.default_count")
		if targetCount < 1 {
			return fmt.Errorf("count must be positive, got %d", targetCount)
		}

		var w io.Writer = cmd.OutOrStdout()
		if outFile != "" {
			f, createErr := os.Create(outFile)
			if createErr != nil {
				return fmt.Errorf("failed to create output file: %w", createErr)
			}
			defer closeOutput(f, &err)
			w = f
		}

		g := engine.NewGenerator(seed)
		if format == "json" {
			fixtures := make(map[string][]map[string]any)
			for _, t := range db.Tables() {
				if len(targetTables) > 0 && !containsFold(targetTables, t.TableName()) {
					continue
				}
				fixtures[t.TableName()] = engine.Rows(t, g, targetCount)
			}
			return renderJSON(w, fixtures)
		}
		if format != "sql" {
			return fmt.Errorf("unknown format %q (want sql or json)", format)
		}

		opts := engine.SeedOptions{Count: targetCount, Truncate: clean, Tables: targetTables, Logger: Logger}

		// The progress bar shares the terminal with stdout, so it is only
		// drawn when the script goes to a file.
		start := time.Now()
		if outFile != "" {
			uiprogress.Start()
			bar := uiprogress.AddBar(engine.TotalRows(db, opts)).AppendCompleted().PrependElapsed()
			bar.PrependFunc(func(b *uiprogress.Bar) string {
				return "Generating: "
			})
			opts.OnProgress = func() { bar.Incr() }
		}

		results, err := engine.Seed(w, db, d, g, opts)

		if outFile != "" {
			uiprogress.Stop()
		}
		if err != nil {
			return err
		}

		printSeedSummary(cmd.ErrOrStderr(), results, time.Since(start))
		return nil
	},
}

// closeOutput closes the output file, reporting its error unless an
// earlier one is already set.
func closeOutput(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("failed to close output file: %w", cerr)
	}
}

func containsFold(names []string, name string) bool {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

func printSeedSummary(w io.Writer, results []engine.SeedResult, elapsed time.Duration) {
	fmt.Fprintln(w, "\nSummary Report:")
	total := 0
	for i, r := range results {
		icon := "✓"
		if r.Status != engine.StatusOK {
			icon = "!"
		}
		fmt.Fprintf(w, "[%s] [%02d/%02d] %-20s : %d rows (Target: %d) - %s\n",
			icon, i+1, len(results), r.TableName, r.Written, r.Target, r.Status)
		if r.Note != "" {
			fmt.Fprintf(w, "    └ %s\n", r.Note)
		}
		total += r.Written
	}
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Total Rows: %d (%s)\n", total, elapsed.Round(time.Millisecond))
}

func init() {
	RootCmd.AddCommand(fillCmd)

	fillSource.register(fillCmd)
	fillCmd.Flags().IntVar(&count, "count", 0, "Number of rows to generate per table (overrides config)")
	fillCmd.Flags().String("dialect", "", "Target dialect: mysql, postgres, sqlserver or oracle (overrides config)")
	fillCmd.Flags().BoolVar(&clean, "clean", false, "Truncate each table before its rows")
	fillCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible output (0 picks one)")
	fillCmd.Flags().StringVarP(&outFile, "out", "f", "", "Write the script to a file instead of stdout")
	fillCmd.Flags().StringVar(&format, "format", "sql", "Output format: sql or json")
	fillCmd.Flags().StringSliceVarP(&tables, "tables", "t", []string{}, "Specific tables to fill (comma-separated)")

	viper.BindPFlag("settings.default_count", fillCmd.Flags().Lookup("count"))
}

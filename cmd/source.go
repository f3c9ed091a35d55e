package cmd

import (
	"fmt"
	"os"

	"daogen/internal/dialect"
	"daogen/internal/schema"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// sourceFlags are shared by the commands that read DDL.
type sourceFlags struct {
	name      string
	namespace string
	pkg       string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Database name (default: active profile, then Unknown)")
	cmd.Flags().StringVar(&f.namespace, "namespace", "", "Namespace passed to generators, e.g. App\\Models")
	cmd.Flags().StringVar(&f.pkg, "package", "", "Package label passed to generators")
}

// readInput reads DDL from the file named by args[0], or from stdin when
// no file or "-" is given. Input is capped at settings.max_input_bytes.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	limit := viper.GetInt64("settings.max_input_bytes")
	if len(args) == 0 || args[0] == "-" {
		return schema.ReadDDL(cmd.InOrStdin(), limit)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to open ddl file: %w", err)
	}
	defer f.Close()
	return schema.ReadDDL(f, limit)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// build reads the DDL and parses it. Flags win over the active profile.
func (f *sourceFlags) build(cmd *cobra.Command, args []string) (*schema.Database, error) {
	ddl, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}

	profile, err := activeProfile()
	if err != nil {
		return nil, err
	}

	name := f.name
	if name == "" {
		if name, err = profile.SchemaName(); err != nil {
			return nil, err
		}
	}

	return schema.Build(ddl, schema.Config{
		Name:    name,
		Options: schema.NewOptions(firstNonEmpty(f.namespace, profile.Namespace), firstNonEmpty(f.pkg, profile.Package)),
		Logger:  Logger,
	}), nil
}

// resolveDialect prefers the command's --dialect flag over
// settings.dialect. Several commands define the flag, so it is not bound
// to viper.
func resolveDialect(cmd *cobra.Command) (dialect.Dialect, error) {
	name := viper.GetString("settings.dialect")
	if f := cmd.Flags().Lookup("dialect"); f != nil && f.Changed {
		name = f.Value.String()
	}
	return dialect.GetDialect(name)
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfgFile string
	verbose bool
	// Logger is built in PersistentPreRunE from --verbose.
	Logger = zap.NewNop()
)

var RootCmd = &cobra.Command{
	Use:   "daogen",
	Short: "A DDL to schema model tool",
	Long: `
  ____              ____
 |  _ \  __ _  ___ / ___| ___ _ __
 | | | |/ _` + "`" + ` |/ _ \ |  _ / _ \ '_ \
 | |_| | (_| | (_) | |_| |  __/ | | |
 |____/ \__,_|\___/ \____|\___|_| |_|

DaoGen - CREATE TABLE scripts to schema models, seed scripts and fixtures
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(viper.GetBool("verbose"))
		if err != nil {
			return fmt.Errorf("failed to init logger: %w", err)
		}
		Logger = logger
		if used := viper.ConfigFileUsed(); used != "" {
			Logger.Debug("using config file", zap.String("path", used))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = Logger.Sync()
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Define flags
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./daogen.yaml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))

	// Set default for Viper (fallback if no config/flag)
	viper.SetDefault("settings.default_count", 100)
	viper.SetDefault("settings.max_input_bytes", 8<<20)
	viper.SetDefault("settings.output", "text")
	viper.SetDefault("settings.dialect", "mysql")
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.max_seed_rows", 10000)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("daogen")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("DAOGEN")
	viper.AutomaticEnv() // read in environment variables that match

	// A missing config file is fine; everything has a default.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintln(os.Stderr, "Failed to read config file:", err)
		}
	}
}

// newLogger writes to stderr so stdout stays clean for scripts and JSON.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)

	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// Package root contains the root command for the application.
package root

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fjacquet/auszug-csv/internal/common"
	"fjacquet/auszug-csv/internal/config"
	"fjacquet/auszug-csv/internal/dialect"
	"fjacquet/auszug-csv/internal/logging"
)

// CommonFlags represents the flags that are common to multiple commands.
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// SharedFlags are accessible to all commands.
	SharedFlags = CommonFlags{}

	// DialectFile optionally overrides the built-in statement dialect.
	DialectFile string

	// ResolveSymbols enables ISIN-to-ticker enrichment of trade rows.
	ResolveSymbols bool

	appConfig  *config.Config
	appDialect *dialect.Dialect

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "auszug-csv",
		Short: "Convert broker account statements (PDF) to CSV.",
		Long: `auszug-csv recovers structured transactions from broker account
statements. It parses the PDF statement's flattened text (or the broker's own
CSV export), verifies the running balance of every row, and writes a
normalized CSV for portfolio trackers.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Error loading configuration: %v", err)
			}
			appConfig = cfg

			dialectFile := DialectFile
			if dialectFile == "" {
				dialectFile = cfg.Dialect.File
			}
			d, err := dialect.Load(dialectFile)
			if err != nil {
				Log.Fatalf("Error loading statement dialect: %v", err)
			}
			appDialect = d

			delim := cfg.CSV.Delimiter
			if env := os.Getenv("CSV_DELIMITER"); env != "" {
				delim = env
			}
			if delim != "" {
				common.SetDelimiter([]rune(delim)[0])
			}
			common.SetLogger(GetLogger())
		},
	}
)

// Init initializes the root command and all persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before conversion")
	Cmd.PersistentFlags().StringVar(&DialectFile, "dialect", "", "YAML file overriding the statement dialect")
	Cmd.PersistentFlags().BoolVar(&ResolveSymbols, "resolve-symbols", false, "Resolve ISINs in descriptions to ticker symbols")
}

// GetLogger returns the configured logger wrapped in the logging interface.
func GetLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// AppConfig returns the loaded configuration; valid after PersistentPreRun.
func AppConfig() *config.Config {
	return appConfig
}

// Dialect returns the compiled statement dialect; valid after PersistentPreRun.
func Dialect() *dialect.Dialect {
	return appDialect
}

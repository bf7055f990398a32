// Package convert handles single-file conversion commands.
package convert

import (
	"context"

	"github.com/spf13/cobra"

	cmdcommon "fjacquet/auszug-csv/cmd/common"
	"fjacquet/auszug-csv/cmd/root"
	"fjacquet/auszug-csv/internal/common"
	"fjacquet/auszug-csv/internal/parserfactory"
	"fjacquet/auszug-csv/internal/symbols"
)

var format string

// Cmd represents the convert command.
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a statement PDF or CSV export to the standard CSV",
	Long: `Convert parses a single input file and writes the normalized
transaction CSV.

Example:
  auszug-csv convert -i kontoauszug.pdf -o transactions.csv
  auszug-csv convert --format csv -i export.csv -o transactions.csv`,
	Run: convertFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", string(parserfactory.Statement),
		"Input format: statement (PDF) or csv (broker export)")
}

func convertFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		logger.Fatal("Input and output files must be specified")
	}

	p, err := parserfactory.GetParser(parserfactory.ParserType(format), root.Dialect(), logger)
	if err != nil {
		logger.Fatalf("Error creating parser: %v", err)
	}

	if !root.ResolveSymbols {
		cmdcommon.ProcessFile(p, root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Validate, logger)
		return
	}

	// Symbol enrichment needs the transactions in hand before writing.
	transactions, err := p.ParseFile(root.SharedFlags.Input)
	if err != nil && len(transactions) == 0 {
		logger.Fatalf("Error parsing input: %v", err)
	}
	if err != nil {
		logger.WithError(err).Warn("Continuing with partial results")
	}

	resolver := symbols.NewResolver(root.AppConfig().Symbols.APIKey, logger)
	resolver.Enrich(context.Background(), transactions)

	if err := common.WriteTransactionsToCSV(transactions, root.SharedFlags.Output); err != nil {
		logger.Fatalf("Error writing CSV: %v", err)
	}
	logger.Info("Conversion completed successfully!")
}

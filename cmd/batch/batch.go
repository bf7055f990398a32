// Package batch handles batch processing of statement files.
package batch

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"fjacquet/auszug-csv/cmd/root"
	"fjacquet/auszug-csv/internal/logging"
	"fjacquet/auszug-csv/internal/parserfactory"
)

// Cmd represents the batch command.
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process statement files from a directory",
	Long: `Batch converts every statement PDF and CSV export in the input
directory, writing one CSV per input file to the output directory. Each file
is converted independently; a failing file does not stop the run.

Example:
  auszug-csv batch -i statements/ -o csv/`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output
	if inputDir == "" || outputDir == "" {
		logger.Fatal("Input and output directories must be specified")
	}

	if err := os.MkdirAll(outputDir, 0750); err != nil {
		logger.Fatalf("Failed to create output directory: %v", err)
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		logger.Fatalf("Failed to read input directory: %v", err)
	}

	converted := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		var parserType parserfactory.ParserType
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".pdf":
			parserType = parserfactory.Statement
		case ".csv":
			parserType = parserfactory.CSVExport
		default:
			continue
		}

		inputFile := filepath.Join(inputDir, entry.Name())
		outputFile := filepath.Join(outputDir,
			strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))+".csv")

		p, err := parserfactory.GetParser(parserType, root.Dialect(), logger)
		if err != nil {
			logger.Fatalf("Error creating parser: %v", err)
		}

		if err := p.ConvertToCSV(inputFile, outputFile); err != nil {
			logger.WithError(err).Error("Failed to convert file",
				logging.Field{Key: logging.FieldInputFile, Value: inputFile})
			continue
		}
		converted++
	}

	logger.Info("Batch conversion finished",
		logging.Field{Key: logging.FieldCount, Value: converted})
}

// Package common contains shared functionality for command handlers.
package common

import (
	"fjacquet/auszug-csv/internal/logging"
	"fjacquet/auszug-csv/internal/models"
)

// ProcessFile converts a single input file using the given parser.
func ProcessFile(p models.Parser, inputFile, outputFile string, validate bool, log logging.Logger) {
	p.SetLogger(log)

	if validate {
		log.Info("Validating format...")
		valid, err := p.ValidateFormat(inputFile)
		if err != nil {
			log.Fatalf("Error validating file: %v", err)
		}
		if !valid {
			log.Fatal("The file is not in a valid format")
		}
		log.Info("Validation successful.")
	}

	if err := p.ConvertToCSV(inputFile, outputFile); err != nil {
		log.Fatalf("Error converting to CSV: %v", err)
	}
	log.Info("Conversion completed successfully!")
}

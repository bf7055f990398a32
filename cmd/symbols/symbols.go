// Package symbols provides a one-off ISIN lookup command.
package symbols

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/auszug-csv/cmd/root"
	"fjacquet/auszug-csv/internal/symbols"
)

// Cmd represents the symbols command.
var Cmd = &cobra.Command{
	Use:   "symbols ISIN [ISIN...]",
	Short: "Resolve ISINs to exchange ticker symbols",
	Args:  cobra.MinimumNArgs(1),
	Run:   symbolsFunc,
}

func symbolsFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	resolver := symbols.NewResolver(root.AppConfig().Symbols.APIKey, logger)

	for _, isin := range args {
		sym, err := resolver.Resolve(context.Background(), isin)
		if err != nil {
			logger.WithError(err).Error("Lookup failed")
			continue
		}
		fmt.Printf("%s\t%s\t%s\n", isin, sym.Ticker(), sym.Name)
	}
}

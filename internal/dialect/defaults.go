package dialect

// Default returns the built-in dialect for the German neo-broker account
// statement ("Kontoauszug") this tool was written for. Every value can be
// overridden from a YAML file, see Load.
//
// The dialect is uncompiled; callers other than Load must call Compile.
func Default() *Dialect {
	return &Dialect{
		HolderChapter: "KONTOINHABER",
		ChapterHeadings: []string{
			"KONTOÜBERSICHT",
			"KONTOTRANSAKTIONEN",
			"CASH-KONTO",
			"GELDMARKTFONDS-TRANSAKTIONEN",
			"HINWEISE",
		},
		LedgerChapters: []string{
			"KONTOTRANSAKTIONEN",
			"GELDMARKTFONDS-TRANSAKTIONEN",
		},
		TableHeaders: []string{
			"DATUM TYP BESCHREIBUNG ZAHLUNGSEINGANG ZAHLUNGSAUSGANG SALDO",
		},
		BoilerplateLines: []string{
			"Musterbank AG",
			"Brunnenstraße 19-21",
			"10119 Berlin",
			"Amtsgericht Charlottenburg HRB 244347 B",
			"Umsatzsteuer-ID DE307510626",
			"Geschäftsführung: A. Torp, J. Hecker",
			"www.musterbank.de",
		},
		FooterPatterns: []string{
			`^Erstellt am \d{2}\.\d{2}\.\d{4}( um \d{2}:\d{2})?$`,
			`^Seite \d+ von \d+$`,
			`^\d{2}\.\d{2}\.\d{4} \d{2}:\d{2} Seite \d+ / \d+$`,
		},
		Months: map[string]int{
			"jan":  1,
			"feb":  2,
			"mär":  3,
			"märz": 3,
			"apr":  4,
			"mai":  5,
			"jun":  6,
			"juni": 6,
			"jul":  7,
			"juli": 7,
			"aug":  8,
			"sep":  9,
			"sept": 9,
			"okt":  10,
			"nov":  11,
			"dez":  12,
		},
		IncomingCategories: []string{
			"Überweisung",
			"Zinszahlung",
			"Prämie",
			"Bonus",
			"Gutschrift",
		},
		OutgoingCategories: []string{
			"Kartentransaktion",
			"Handel",
			"Sparplan",
			"Gebühren",
			"Steuern",
			"Lastschrift",
			"Auszahlung",
		},
		AmountPattern:  `(?:\d{1,3}(?:\.\d{3})+|\d+)(?:,\d{1,2})?\s?€`,
		Currency:       "EUR",
		BalanceEpsilon: "0.01",
	}
}

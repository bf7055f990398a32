// Package symbols resolves ISINs found in transaction descriptions to
// exchange ticker symbols. Lookups go through a disk-cached HTTP client so
// re-running a conversion does not repeat queries for the same day.
package symbols

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"fjacquet/auszug-csv/internal/logging"
	"fjacquet/auszug-csv/internal/models"
)

// DefaultBaseURL is the EODHD search endpoint.
const DefaultBaseURL = "https://eodhd.com/api/search"

// Symbol is one search result for an ISIN.
type Symbol struct {
	Code     string `json:"Code"`
	Exchange string `json:"Exchange"`
	Name     string `json:"Name"`
	ISIN     string `json:"ISIN"`
}

// Ticker returns the exchange-qualified ticker, e.g. "VWCE.XETRA".
func (s Symbol) Ticker() string {
	if s.Exchange == "" {
		return s.Code
	}
	return s.Code + "." + s.Exchange
}

// Resolver looks up ticker symbols for ISINs.
type Resolver struct {
	client  *http.Client
	baseURL string
	apiKey  string
	logger  logging.Logger

	// per-run memo so one statement with many rows for the same security
	// costs a single lookup even on a cold disk cache
	memo map[string]Symbol
}

// NewResolver creates a resolver with a daily disk-cached HTTP client.
func NewResolver(apiKey string, logger logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Resolver{
		client:  cachedClient(),
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		logger:  logger,
		memo:    make(map[string]Symbol),
	}
}

// NewResolverWithClient creates a resolver against a custom endpoint and
// client; used in tests.
func NewResolverWithClient(baseURL string, client *http.Client, apiKey string, logger logging.Logger) *Resolver {
	r := NewResolver(apiKey, logger)
	r.baseURL = baseURL
	r.client = client
	return r
}

// Resolve returns the ticker symbol for an ISIN. When several listings
// match, the one whose ISIN echoes the query wins, otherwise the first.
func (r *Resolver) Resolve(ctx context.Context, isin string) (Symbol, error) {
	if isin == "" {
		return Symbol{}, fmt.Errorf("empty ISIN")
	}
	if s, ok := r.memo[isin]; ok {
		return s, nil
	}

	addr := fmt.Sprintf("%s/%s?api_token=%s&fmt=json", r.baseURL, url.PathEscape(isin), url.QueryEscape(r.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return Symbol{}, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return Symbol{}, fmt.Errorf("symbol lookup failed for %s: %w", isin, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return Symbol{}, fmt.Errorf("symbol lookup for %s returned %s", isin, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Symbol{}, err
	}

	var results []Symbol
	if err := json.Unmarshal(body, &results); err != nil {
		return Symbol{}, fmt.Errorf("cannot decode symbol search response for %s: %w", isin, err)
	}
	if len(results) == 0 {
		return Symbol{}, fmt.Errorf("no symbol found for ISIN %s", isin)
	}

	chosen := results[0]
	for _, res := range results {
		if res.ISIN == isin {
			chosen = res
			break
		}
	}

	r.memo[isin] = chosen
	return chosen, nil
}

// Enrich fills the Symbol column of every transaction that carries an ISIN.
// Failed lookups are logged and leave the transaction untouched.
func (r *Resolver) Enrich(ctx context.Context, transactions []models.Transaction) {
	for i := range transactions {
		if transactions[i].ISIN == "" || transactions[i].Symbol != "" {
			continue
		}
		sym, err := r.Resolve(ctx, transactions[i].ISIN)
		if err != nil {
			r.logger.WithError(err).Warn("Symbol resolution failed",
				logging.Field{Key: logging.FieldISIN, Value: transactions[i].ISIN})
			continue
		}
		transactions[i].Symbol = sym.Ticker()
		r.logger.Debug("Resolved symbol",
			logging.Field{Key: logging.FieldISIN, Value: transactions[i].ISIN},
			logging.Field{Key: logging.FieldSymbol, Value: transactions[i].Symbol})
	}
}

package symbols

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/auszug-csv/internal/logging"
	"fjacquet/auszug-csv/internal/models"
)

func TestSymbolTicker(t *testing.T) {
	assert.Equal(t, "VWCE.XETRA", Symbol{Code: "VWCE", Exchange: "XETRA"}.Ticker())
	assert.Equal(t, "VWCE", Symbol{Code: "VWCE"}.Ticker())
}

func TestResolvePrefersMatchingISIN(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "/IE00B3RBWM25", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("api_token"))
		fmt.Fprint(w, `[
			{"Code":"VWRL","Exchange":"AMS","Name":"Vanguard FTSE All-World","ISIN":"IE00B3RBWM26"},
			{"Code":"VWCE","Exchange":"XETRA","Name":"Vanguard FTSE All-World","ISIN":"IE00B3RBWM25"}
		]`)
	}))
	defer server.Close()

	r := NewResolverWithClient(server.URL, server.Client(), "secret", &logging.MockLogger{})

	sym, err := r.Resolve(context.Background(), "IE00B3RBWM25")
	require.NoError(t, err)
	assert.Equal(t, "VWCE.XETRA", sym.Ticker())

	// Second lookup is served from the memo.
	_, err = r.Resolve(context.Background(), "IE00B3RBWM25")
	require.NoError(t, err)
	assert.Equal(t, 1, requests)
}

func TestResolveFallsBackToFirstResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"Code":"SAP","Exchange":"XETRA","Name":"SAP SE","ISIN":""}]`)
	}))
	defer server.Close()

	r := NewResolverWithClient(server.URL, server.Client(), "secret", &logging.MockLogger{})

	sym, err := r.Resolve(context.Background(), "DE0007164600")
	require.NoError(t, err)
	assert.Equal(t, "SAP.XETRA", sym.Ticker())
}

func TestResolveErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/EMPTY0000000":
			fmt.Fprint(w, `[]`)
		case "/GARBAGE00000":
			fmt.Fprint(w, `not json`)
		default:
			w.WriteHeader(http.StatusForbidden)
		}
	}))
	defer server.Close()

	r := NewResolverWithClient(server.URL, server.Client(), "secret", &logging.MockLogger{})
	ctx := context.Background()

	_, err := r.Resolve(ctx, "")
	assert.Error(t, err)

	_, err = r.Resolve(ctx, "EMPTY0000000")
	assert.Error(t, err)

	_, err = r.Resolve(ctx, "GARBAGE00000")
	assert.Error(t, err)

	_, err = r.Resolve(ctx, "DENIED000000")
	assert.Error(t, err)
}

func TestEnrich(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/IE00B3RBWM25" {
			fmt.Fprint(w, `[{"Code":"VWCE","Exchange":"XETRA","Name":"Vanguard","ISIN":"IE00B3RBWM25"}]`)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	mock := &logging.MockLogger{}
	r := NewResolverWithClient(server.URL, server.Client(), "secret", mock)

	txs := []models.Transaction{
		{Description: "Kauf", ISIN: "IE00B3RBWM25"},
		{Description: "Einzahlung"},
		{Description: "Kauf", ISIN: "XX0000000000"},
		{Description: "schon gesetzt", ISIN: "IE00B3RBWM25", Symbol: "OLD"},
	}
	r.Enrich(context.Background(), txs)

	assert.Equal(t, "VWCE.XETRA", txs[0].Symbol)
	assert.Empty(t, txs[1].Symbol)
	assert.Empty(t, txs[2].Symbol)
	assert.Equal(t, "OLD", txs[3].Symbol)
	assert.True(t, mock.HasMessage("Symbol resolution failed"))
}

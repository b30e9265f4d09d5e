package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anashany189-droid/ShareEstate1/store"
	"github.com/anashany189-droid/ShareEstate1/utils"
)

func investRequest(t *testing.T, c *PortfolioController, body string) (*httptest.ResponseRecorder, utils.APIResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "http://example.local/v1/invest", strings.NewReader(body))
	rec := httptest.NewRecorder()
	c.Invest(rec, req)

	var resp utils.APIResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("response is not a valid envelope: %v", err)
	}
	return rec, resp
}

func TestInvestHandlerSuccess(t *testing.T) {
	st := store.NewDemoStore()
	c := NewPortfolioController(st)

	rec, resp := investRequest(t, c, `{"property_id":"1","amount":50000}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	if !resp.Success {
		t.Fatalf("expected success envelope, got %+v", resp)
	}

	p, _ := st.Catalog.FindByID("1")
	if p.FundedAmount != 3250000 {
		t.Fatalf("expected funded amount 3250000 after invest, got %.2f", p.FundedAmount)
	}
	if got := st.Ledger.Profile().WalletBalance; got != 200000 {
		t.Fatalf("expected wallet 200000 after invest, got %.2f", got)
	}
}

func TestInvestHandlerInvalidJSON(t *testing.T) {
	c := NewPortfolioController(store.NewDemoStore())
	rec, resp := investRequest(t, c, `{"property_id":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad JSON, got %d", rec.Code)
	}
	if resp.Success {
		t.Fatalf("expected failure envelope")
	}
}

func TestInvestHandlerErrorCodes(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"below minimum", `{"property_id":"1","amount":5000}`, http.StatusBadRequest, "BELOW_MINIMUM"},
		{"insufficient funds", `{"property_id":"1","amount":500000}`, http.StatusBadRequest, "INSUFFICIENT_FUNDS"},
		{"property closed", `{"property_id":"4","amount":50000}`, http.StatusConflict, "PROPERTY_CLOSED"},
		{"not found", `{"property_id":"999","amount":50000}`, http.StatusNotFound, "NOT_FOUND"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := store.NewDemoStore()
			c := NewPortfolioController(st)
			rec, resp := investRequest(t, c, tc.body)
			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d (%s)", tc.status, rec.Code, rec.Body.String())
			}
			if resp.Code != tc.code {
				t.Fatalf("expected code %s, got %s", tc.code, resp.Code)
			}
			// No mutation on any validation failure.
			if got := st.Ledger.Profile().WalletBalance; got != 250000 {
				t.Fatalf("wallet mutated on failure: %.2f", got)
			}
		})
	}
}

func TestPortfolioHandlerAggregatesHoldings(t *testing.T) {
	st := store.NewDemoStore()
	if _, err := st.ExecuteInvestment("1", 50000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := st.ExecuteInvestment("1", 20000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := NewPortfolioController(st)

	req := httptest.NewRequest(http.MethodGet, "http://example.local/v1/portfolio", nil)
	rec := httptest.NewRecorder()
	c.Get(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data struct {
			Holdings []holding `json:"holdings"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data.Holdings) != 1 {
		t.Fatalf("expected one holding, got %d", len(resp.Data.Holdings))
	}
	h := resp.Data.Holdings[0]
	if h.Invested != 70000 || h.Positions != 2 {
		t.Fatalf("unexpected holding aggregate: %+v", h)
	}
}

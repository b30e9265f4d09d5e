package store

import (
	"errors"
	"testing"

	"github.com/anashany189-droid/ShareEstate1/models"
)

func fundingProperty() models.Property {
	return models.Property{
		ID:            "p1",
		Title:         "Test Property",
		TotalPrice:    4500000,
		FundedAmount:  3200000,
		MinInvestment: 10000,
		Status:        models.StatusFunding,
	}
}

func TestInvestBelowMinimum(t *testing.T) {
	l := NewLedger(models.UserProfile{WalletBalance: 250000})
	_, _, err := l.Invest(fundingProperty(), 5000)
	if !errors.Is(err, ErrBelowMinimum) {
		t.Fatalf("expected ErrBelowMinimum, got %v", err)
	}
	if got := l.Profile().WalletBalance; got != 250000 {
		t.Fatalf("wallet must be untouched on failure, got %.2f", got)
	}
	if len(l.Records()) != 0 {
		t.Fatalf("no record may be created on failure")
	}
}

func TestInvestInsufficientFunds(t *testing.T) {
	l := NewLedger(models.UserProfile{WalletBalance: 1000})
	p := fundingProperty()
	p.MinInvestment = 100
	_, _, err := l.Invest(p, 5000)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if got := l.Profile().WalletBalance; got != 1000 {
		t.Fatalf("wallet must be untouched on failure, got %.2f", got)
	}
}

func TestInvestClosedProperty(t *testing.T) {
	l := NewLedger(models.UserProfile{WalletBalance: 250000})
	p := fundingProperty()
	p.FundedAmount = p.TotalPrice
	p.Status = models.StatusCompleted
	_, _, err := l.Invest(p, 50000)
	if !errors.Is(err, ErrPropertyClosed) {
		t.Fatalf("expected ErrPropertyClosed, got %v", err)
	}
}

func TestInvestValidationOrder(t *testing.T) {
	// A closed property with a too-small amount must report BelowMinimum
	// first: checks run in a fixed order.
	l := NewLedger(models.UserProfile{WalletBalance: 250000})
	p := fundingProperty()
	p.Status = models.StatusSold
	if _, _, err := l.Invest(p, 5000); !errors.Is(err, ErrBelowMinimum) {
		t.Fatalf("expected ErrBelowMinimum before ErrPropertyClosed, got %v", err)
	}
}

func TestInvestDoesNotCommit(t *testing.T) {
	l := NewLedger(models.UserProfile{WalletBalance: 250000})
	profile, record, err := l.Invest(fundingProperty(), 50000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.WalletBalance != 200000 {
		t.Fatalf("derived wallet expected 200000, got %.2f", profile.WalletBalance)
	}
	if record.CurrentValue != 50000 {
		t.Fatalf("record must start at cost basis, got %.2f", record.CurrentValue)
	}
	// Nothing is installed until Commit.
	if got := l.Profile().WalletBalance; got != 250000 {
		t.Fatalf("ledger state must be unchanged before commit, got %.2f", got)
	}
	if len(l.Records()) != 0 {
		t.Fatalf("no record before commit")
	}
}

func TestCommitInstallsStateAndJournals(t *testing.T) {
	l := NewLedger(models.UserProfile{WalletBalance: 250000})
	profile, record, err := l.Invest(fundingProperty(), 50000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l.Commit(profile, record, "Investment in Test Property")

	got := l.Profile()
	if got.WalletBalance != 200000 {
		t.Fatalf("wallet expected 200000, got %.2f", got.WalletBalance)
	}
	if got.TotalInvested != 50000 {
		t.Fatalf("total invested expected 50000, got %.2f", got.TotalInvested)
	}
	if got.TotalReturns != 0 {
		t.Fatalf("total returns must not move on invest, got %.2f", got.TotalReturns)
	}

	records := l.Records()
	if len(records) != 1 {
		t.Fatalf("expected one record, got %d", len(records))
	}
	if records[0].ID == "" || records[0].Reference == "" {
		t.Fatalf("record must carry id and reference")
	}
	if records[0].PurchaseDate.IsZero() {
		t.Fatalf("record must carry a purchase date")
	}

	journal := l.Transactions()
	if len(journal) != 1 {
		t.Fatalf("expected one journal entry, got %d", len(journal))
	}
	if journal[0].Flow != models.FlowCredit || journal[0].Type != models.TransactionTypeInvestment {
		t.Fatalf("unexpected journal entry: %+v", journal[0])
	}
	if journal[0].Amount != 50000 {
		t.Fatalf("journal amount expected 50000, got %.2f", journal[0].Amount)
	}
}

func TestSequentialInvestmentsEqualCombined(t *testing.T) {
	p := fundingProperty()

	seq := NewLedger(models.UserProfile{WalletBalance: 250000})
	for _, amount := range []float64{50000, 30000} {
		profile, record, err := seq.Invest(p, amount)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seq.Commit(profile, record, "seq")
	}

	combined := NewLedger(models.UserProfile{WalletBalance: 250000})
	profile, record, err := combined.Invest(p, 80000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	combined.Commit(profile, record, "combined")

	a, b := seq.Profile(), combined.Profile()
	if a.WalletBalance != b.WalletBalance || a.TotalInvested != b.TotalInvested {
		t.Fatalf("sequential %+v differs from combined %+v", a, b)
	}
}

func TestRevalueAccruesReturns(t *testing.T) {
	l := NewLedger(models.UserProfile{WalletBalance: 250000})
	profile, record, err := l.Invest(fundingProperty(), 50000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l.Commit(profile, record, "invest")

	// Identity valuation moves nothing.
	got := l.Revalue(IdentityValuation)
	if got.TotalReturns != 0 {
		t.Fatalf("identity valuation must not accrue returns, got %.2f", got.TotalReturns)
	}
	if len(l.Transactions()) != 1 {
		t.Fatalf("identity valuation must not journal")
	}

	// A 10% uplift accrues into TotalReturns and journals a debit.
	got = l.Revalue(func(r models.InvestmentRecord) float64 { return r.CurrentValue * 1.1 })
	if got.TotalReturns != 5000 {
		t.Fatalf("expected 5000 accrued returns, got %.2f", got.TotalReturns)
	}
	journal := l.Transactions()
	if len(journal) != 2 || journal[1].Flow != models.FlowDebit || journal[1].Type != models.TransactionTypeValuation {
		t.Fatalf("expected a valuation debit entry, got %+v", journal)
	}
}

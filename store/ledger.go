package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/anashany189-droid/ShareEstate1/models"
	"github.com/anashany189-droid/ShareEstate1/utils"
)

// Valuation maps an investment record to its current value. The default is
// IdentityValuation: positions stay at cost basis until a real valuation
// process is plugged in.
type Valuation func(record models.InvestmentRecord) float64

func IdentityValuation(record models.InvestmentRecord) float64 {
	return record.CurrentValue
}

// Ledger owns the investor's wallet, aggregate totals, the append-only
// investment records, and the wallet journal.
type Ledger struct {
	mu      sync.RWMutex
	profile models.UserProfile
	records []models.InvestmentRecord
	journal []models.WalletTransaction
}

func NewLedger(profile models.UserProfile) *Ledger {
	return &Ledger{profile: profile}
}

func (l *Ledger) Profile() models.UserProfile {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.profile
}

// Records returns a copy of the investment records, oldest first.
func (l *Ledger) Records() []models.InvestmentRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.InvestmentRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Transactions returns a copy of the wallet journal, oldest first.
func (l *Ledger) Transactions() []models.WalletTransaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.WalletTransaction, len(l.journal))
	copy(out, l.journal)
	return out
}

// Invest validates an investment against the current wallet and derives the
// next profile plus the new record. It does NOT commit anything: the caller
// composes it with the catalog update and commits both together, so a
// validation failure on either side leaves all state untouched.
//
// Checks run in order, first failure wins:
//  1. amount below the property minimum
//  2. amount above the wallet balance
//  3. property not open for funding
func (l *Ledger) Invest(property models.Property, amount float64) (models.UserProfile, models.InvestmentRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if amount < property.MinInvestment {
		return models.UserProfile{}, models.InvestmentRecord{}, ErrBelowMinimum
	}
	if amount > l.profile.WalletBalance {
		return models.UserProfile{}, models.InvestmentRecord{}, ErrInsufficientFunds
	}
	if property.Status != models.StatusFunding {
		return models.UserProfile{}, models.InvestmentRecord{}, ErrPropertyClosed
	}

	next := l.profile
	next.WalletBalance = utils.RoundFloat(next.WalletBalance-amount, 2)
	next.TotalInvested = utils.RoundFloat(next.TotalInvested+amount, 2)

	record := models.InvestmentRecord{
		ID:             uuid.NewString(),
		Reference:      utils.GenerateReference(),
		PropertyID:     property.ID,
		AmountInvested: amount,
		PurchaseDate:   time.Now(),
		CurrentValue:   amount,
	}
	return next, record, nil
}

// Commit installs a profile/record pair produced by Invest and journals the
// wallet movement.
func (l *Ledger) Commit(profile models.UserProfile, record models.InvestmentRecord, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.profile = profile
	l.records = append(l.records, record)
	l.journal = append(l.journal, models.WalletTransaction{
		ID:        uuid.NewString(),
		Reference: record.Reference,
		Flow:      models.FlowCredit,
		Type:      models.TransactionTypeInvestment,
		Amount:    record.AmountInvested,
		Message:   message,
		CreatedAt: time.Now(),
	})
}

// Revalue runs a valuation pass over all records, accruing the aggregate
// delta into TotalReturns. With IdentityValuation this is a no-op.
func (l *Ledger) Revalue(valuation Valuation) models.UserProfile {
	l.mu.Lock()
	defer l.mu.Unlock()

	var delta float64
	for i := range l.records {
		next := valuation(l.records[i])
		delta += next - l.records[i].CurrentValue
		l.records[i].CurrentValue = next
	}
	if delta != 0 {
		l.profile.TotalReturns = utils.RoundFloat(l.profile.TotalReturns+delta, 2)
		l.journal = append(l.journal, models.WalletTransaction{
			ID:        uuid.NewString(),
			Reference: utils.GenerateReference(),
			Flow:      models.FlowDebit,
			Type:      models.TransactionTypeValuation,
			Amount:    utils.RoundFloat(delta, 2),
			Message:   fmt.Sprintf("Portfolio revaluation across %d positions", len(l.records)),
			CreatedAt: time.Now(),
		})
	}
	return l.profile
}

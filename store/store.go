package store

import (
	"fmt"
	"log"
	"sync"

	"github.com/anashany189-droid/ShareEstate1/models"
)

// Store composes the property catalog and the portfolio ledger and owns the
// only operation that mutates both.
type Store struct {
	mu      sync.Mutex
	Catalog *Catalog
	Ledger  *Ledger
}

func New(catalog *Catalog, ledger *Ledger) *Store {
	return &Store{Catalog: catalog, Ledger: ledger}
}

// InvestmentResult is the consistent state triple produced by a successful
// investment.
type InvestmentResult struct {
	Profile  models.UserProfile      `json:"profile"`
	Record   models.InvestmentRecord `json:"record"`
	Property models.Property         `json:"property"`
}

// ExecuteInvestment runs the invest transaction: re-fetch the property from
// the catalog (never trust a stale render), validate against the ledger,
// then commit wallet and funding together. Either both sides mutate or
// neither does.
func (s *Store) ExecuteInvestment(propertyID string, amount float64) (*InvestmentResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	property, ok := s.Catalog.FindByID(propertyID)
	if !ok {
		return nil, ErrNotFound
	}

	profile, record, err := s.Ledger.Invest(property, amount)
	if err != nil {
		return nil, err
	}

	updated, err := s.Catalog.ApplyFunding(propertyID, amount)
	if err != nil {
		// Unreachable while s.mu is held: the property was just fetched.
		return nil, err
	}
	s.Ledger.Commit(profile, record, fmt.Sprintf("Investment in %s", property.Title))

	log.Printf("[store] investment committed: property=%s amount=%.2f funded=%.2f wallet=%.2f",
		propertyID, amount, updated.FundedAmount, profile.WalletBalance)

	return &InvestmentResult{Profile: profile, Record: record, Property: updated}, nil
}

// RunValuation applies a valuation pass under the same lock investments
// use, so revaluation never interleaves with a commit.
func (s *Store) RunValuation(valuation Valuation) models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Ledger.Revalue(valuation)
}

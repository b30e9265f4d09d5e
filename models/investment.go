package models

import "time"

// InvestmentRecord is one committed investment. Records are append-only:
// created exactly once per successful investment, never mutated afterwards
// except for CurrentValue, which only the valuation process touches.
type InvestmentRecord struct {
	ID             string    `json:"id"`
	Reference      string    `json:"reference"`
	PropertyID     string    `json:"property_id"`
	AmountInvested float64   `json:"amount_invested"`
	PurchaseDate   time.Time `json:"purchase_date"`
	CurrentValue   float64   `json:"current_value"`
}

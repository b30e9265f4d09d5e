package models

// UserProfile is the state of the demo session's investor.
//
// WalletBalance never goes below zero: every successful investment deducts
// exactly the committed principal and adds it to TotalInvested.
// TotalReturns is only moved by the valuation process, never by investing.
type UserProfile struct {
	Name          string  `json:"name"`
	WalletBalance float64 `json:"wallet_balance"`
	TotalInvested float64 `json:"total_invested"`
	TotalReturns  float64 `json:"total_returns"`
}

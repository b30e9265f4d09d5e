package models

import "time"

type TransactionFlow string

const (
	FlowDebit  TransactionFlow = "debit"
	FlowCredit TransactionFlow = "credit"
)

const (
	TransactionTypeInvestment = "investment"
	TransactionTypeValuation  = "valuation"
)

// WalletTransaction is one entry in the wallet journal. Credit entries move
// money out of the wallet (an investment), debit entries move money in
// (valuation returns).
type WalletTransaction struct {
	ID        string          `json:"id"`
	Reference string          `json:"reference"`
	Flow      TransactionFlow `json:"transaction_flow"`
	Type      string          `json:"transaction_type"`
	Amount    float64         `json:"amount"`
	Message   string          `json:"message,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

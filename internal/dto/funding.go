package dto

import (
	"github.com/shopspring/decimal"
)

// DepositRequest is a payment-gateway-verified deposit instruction. The
// gateway handshake happens out of band; by the time this arrives the amount
// is already authenticated.
type DepositRequest struct {
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	PaymentRef string          `json:"paymentRef"`
}

// DepositResponse reports the credited deposit.
type DepositResponse struct {
	NewBalance decimal.Decimal `json:"newBalance"`
}

// CollectIncomeResponse reports the outcome of an income collection.
type CollectIncomeResponse struct {
	CollectedAmount decimal.Decimal `json:"collectedAmount"`
}

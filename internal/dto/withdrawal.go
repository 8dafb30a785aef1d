package dto

import (
	"github.com/shopspring/decimal"
)

// WithdrawalRequest asks to move funds out of earnings to the account's bank.
type WithdrawalRequest struct {
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	WithdrawalSecret string          `json:"withdrawalSecret" binding:"required"`
}

// WithdrawalResponse reports the post-withdrawal state.
type WithdrawalResponse struct {
	NewBalance  decimal.Decimal `json:"newBalance"`
	NewEarnings decimal.Decimal `json:"newEarnings"`
}

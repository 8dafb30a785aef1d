package dto

import (
	"time"
)

// RegisterRequest defines the data needed to create a new account.
// ReferralCode, when present, is the referrer's mobile number and must
// resolve to an existing account.
type RegisterRequest struct {
	FullName     string `json:"fullName" binding:"required"`
	MobileNumber string `json:"mobileNumber" binding:"required,mobile"`
	Password     string `json:"password" binding:"required,min=6"`
	ReferralCode string `json:"referralCode"` // Optional
}

// LoginRequest defines the credentials for a login attempt.
type LoginRequest struct {
	MobileNumber string `json:"mobileNumber" binding:"required"`
	Password     string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Account   AccountResponse `json:"account"`
}

package dto

import (
	"time"

	"github.com/driveyield/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BankDetailsResponse mirrors domain.BankDetails.
type BankDetailsResponse struct {
	AccountNumber string `json:"accountNumber"`
	IFSC          string `json:"ifsc"`
}

// AccountResponse defines the data returned for an account.
// Credential hashes never leave the service layer.
type AccountResponse struct {
	AccountID           string              `json:"accountID"`
	FullName            string              `json:"fullName"`
	MobileNumber        string              `json:"mobileNumber"`
	ReferrerID          string              `json:"referrerID,omitempty"`
	Balance             decimal.Decimal     `json:"balance"`
	Earnings            decimal.Decimal     `json:"earnings"`
	BankDetails         BankDetailsResponse `json:"bankDetails"`
	HasWithdrawalSecret bool                `json:"hasWithdrawalSecret"`
	LastAccrualDate     *time.Time          `json:"lastAccrualDate,omitempty"`
	CreatedAt           time.Time           `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:    acc.AccountID,
		FullName:     acc.FullName,
		MobileNumber: acc.MobileNumber,
		ReferrerID:   acc.ReferrerID,
		Balance:      acc.Balance,
		Earnings:     acc.Earnings,
		BankDetails: BankDetailsResponse{
			AccountNumber: acc.BankDetails.AccountNumber,
			IFSC:          acc.BankDetails.IFSC,
		},
		HasWithdrawalSecret: acc.HasWithdrawalSecret(),
		LastAccrualDate:     acc.LastAccrualDate,
		CreatedAt:           acc.CreatedAt,
	}
}

// UpdateBankDetailsRequest replaces the account's bank coordinates.
type UpdateBankDetailsRequest struct {
	AccountNumber string `json:"accountNumber" binding:"required"`
	IFSC          string `json:"ifsc" binding:"required"`
}

// ChangePasswordRequest replaces the login password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// SetWithdrawalSecretRequest sets or replaces the withdrawal secret after
// re-authenticating with the login password.
type SetWithdrawalSecretRequest struct {
	LoginPassword    string `json:"loginPassword" binding:"required"`
	WithdrawalSecret string `json:"withdrawalSecret" binding:"required,min=4"`
}

// TeamMemberResponse is one referred account in the caller's team.
type TeamMemberResponse struct {
	FullName string    `json:"fullName"`
	JoinedAt time.Time `json:"joinedAt"`
}

// ToTeamMemberResponses converts referred accounts to team entries.
func ToTeamMemberResponses(accounts []domain.Account) []TeamMemberResponse {
	res := make([]TeamMemberResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = TeamMemberResponse{FullName: acc.FullName, JoinedAt: acc.CreatedAt}
	}
	return res
}

// DashboardResponse composes everything the account dashboard needs.
type DashboardResponse struct {
	Account      AccountResponse       `json:"account"`
	Holdings     []HoldingResponse     `json:"holdings"`
	Transactions []LedgerEntryResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

package dto

import (
	"time"

	"github.com/driveyield/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerEntryResponse defines the data returned for one transaction-log record.
type LedgerEntryResponse struct {
	EntryID   string             `json:"entryID"`
	Kind      domain.EntryKind   `json:"kind"`
	Amount    decimal.Decimal    `json:"amount"`
	Detail    domain.EntryDetail `json:"detail"`
	EntryDate time.Time          `json:"entryDate"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:   e.EntryID,
		Kind:      e.Kind,
		Amount:    e.Amount,
		Detail:    e.Detail,
		EntryDate: e.EntryDate,
	}
}

// ToLedgerEntryResponses converts a slice of entries.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	res := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToLedgerEntryResponse(&entries[i])
	}
	return res
}

// ListEntriesParams defines query parameters for listing transaction history.
type ListEntriesParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListEntriesResponse wraps a page of transaction history.
type ListEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

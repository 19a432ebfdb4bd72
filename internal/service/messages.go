package service

import "github.com/mmynk/splitsettle/internal/models"

// AllocateItemRequest asks how one item is shared among participants.
type AllocateItemRequest struct {
	Item         models.Item          `json:"item"`
	Participants []models.Participant `json:"participants"`
}

// AllocateItemResponse holds the item price and each participant's share.
type AllocateItemResponse struct {
	ItemTotal models.ItemTotal        `json:"itemTotal"`
	Shares    map[string]models.Money `json:"shares"`
}

// CalculateSplitRequest carries a full bill snapshot.
type CalculateSplitRequest struct {
	models.Bill
}

// CalculateSplitResponse is everything derived from a bill snapshot.
type CalculateSplitResponse struct {
	Items        []models.ItemTotal        `json:"items"`
	Participants []models.ParticipantShare `json:"participants"`
	Transactions []models.Transaction      `json:"transactions"`
	Summary      models.BillSummary        `json:"summary"`
}

// ComputeSettlementRequest carries paid and owed totals per person.
type ComputeSettlementRequest struct {
	Participants []models.Balance `json:"participants"`
}

// ComputeSettlementResponse lists the payments that settle the balances.
type ComputeSettlementResponse struct {
	Transactions []models.Transaction `json:"transactions"`
}

// GetGroupBalancesRequest carries several bills and the payments already made.
type GetGroupBalancesRequest struct {
	Bills    []models.Bill    `json:"bills"`
	Payments []models.Payment `json:"payments,omitempty"`
}

// GetGroupBalancesResponse holds member positions and suggested transactions.
type GetGroupBalancesResponse struct {
	MemberBalances []models.MemberBalance `json:"memberBalances"`
	Transactions   []models.Transaction   `json:"transactions"`
}

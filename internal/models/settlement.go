package models

// Transaction is a suggested payment between two participants.
type Transaction struct {
	// From is the name of the person who pays.
	From string `json:"from"`

	// To is the name of the person who receives.
	To string `json:"to"`

	// Amount is the payment amount with two decimal places, e.g. "50.00".
	Amount string `json:"amount"`
}

// Balance is a person's paid and owed totals, the input to a settlement.
type Balance struct {
	Name       string `json:"name"`
	AmountPaid Number `json:"amountPaid"`
	AmountOwed Number `json:"amountOwed"`
}

// Payment is a transfer already made between group members to clear debts.
type Payment struct {
	// FromID is the participant who paid (debtor settling up).
	FromID string `json:"fromId"`

	// ToID is the participant who received payment (creditor being paid).
	ToID string `json:"toId"`

	// Amount is the payment amount.
	Amount Number `json:"amount"`

	// Note is an optional description for the payment.
	Note string `json:"note,omitempty"`
}

// MemberBalance is the aggregate position of one participant across bills.
type MemberBalance struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	TotalPaid  Money  `json:"totalPaid"`
	TotalOwed  Money  `json:"totalOwed"`
	NetBalance Money  `json:"netBalance"` // Positive = owed money, Negative = owes money
}

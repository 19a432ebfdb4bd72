package models

// Bill is one snapshot of a bill: its line items and the people splitting it.
type Bill struct {
	// Items are the line items on the bill.
	Items []Item `json:"items"`

	// Participants are the people splitting the bill, with what each paid.
	Participants []Participant `json:"participants"`
}

// Item represents a single line item on a bill.
type Item struct {
	// ID is the unique identifier for the item. Assigned by the service when empty.
	ID string `json:"id,omitempty"`

	// Description is the name of the item (e.g., "Pizza", "Beer").
	Description string `json:"description,omitempty"`

	// Price is the unit price before tax.
	Price Number `json:"price"`

	// Quantity multiplies Price. Missing or non-positive means 1.
	Quantity Number `json:"quantity,omitempty"`

	// TaxRate is a percentage applied to price × quantity.
	TaxRate Number `json:"taxRate,omitempty"`

	// SplitType is one of equal, unequal-money, unequal-percent, unequal-shares.
	SplitType string `json:"splitType"`

	// Splits maps participant ID to an amount, a percentage or a share weight,
	// depending on SplitType.
	Splits map[string]Number `json:"splits,omitempty"`

	// IncludedParticipants restricts an equal split to these participant IDs.
	// Empty means everyone.
	IncludedParticipants []string `json:"includedParticipants,omitempty"`
}

// Participant is one person splitting a bill.
type Participant struct {
	// ID is the opaque participant identifier. Assigned by the service when empty.
	ID string `json:"id,omitempty"`

	// Name is the display name used in transactions.
	Name string `json:"name"`

	// AmountPaid is how much this person paid towards the bill.
	AmountPaid Number `json:"amountPaid,omitempty"`
}

// ParticipantShare is a participant with their computed amounts.
type ParticipantShare struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AmountPaid Money  `json:"amountPaid"`

	// AmountOwed is recomputed from the items on every request.
	AmountOwed Money `json:"amountOwed"`
}

// ItemTotal is the priced breakdown of one item.
type ItemTotal struct {
	ItemID   string `json:"itemId"`
	Subtotal Money  `json:"subtotal"`
	Tax      Money  `json:"tax"`
	Total    Money  `json:"total"`

	// Discrepancy is the total minus the entered money splits. Always zero
	// for split types that distribute the whole total.
	Discrepancy Money `json:"discrepancy"`
}

// BillSummary compares what was billed with what was paid and allocated.
type BillSummary struct {
	BillTotal   Money `json:"billTotal"`
	TotalPaid   Money `json:"totalPaid"`
	TotalOwed   Money `json:"totalOwed"`
	Unallocated Money `json:"unallocated"`
	Unpaid      Money `json:"unpaid"`
	Balanced    bool  `json:"balanced"`
}

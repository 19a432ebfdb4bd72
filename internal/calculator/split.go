package calculator

import (
	"github.com/shopspring/decimal"
)

// SplitType selects how an item's cost is divided among participants.
type SplitType string

const (
	SplitEqual          SplitType = "equal"
	SplitUnequalMoney   SplitType = "unequal-money"
	SplitUnequalPercent SplitType = "unequal-percent"
	SplitUnequalShares  SplitType = "unequal-shares"
)

// Valid reports whether t is one of the known split policies.
func (t SplitType) Valid() bool {
	switch t {
	case SplitEqual, SplitUnequalMoney, SplitUnequalPercent, SplitUnequalShares:
		return true
	}
	return false
}

// Participant is one person splitting the bill.
type Participant struct {
	ID         string
	Name       string
	AmountPaid decimal.Decimal
	// AmountOwed is derived by AllocateBill and never set by callers.
	AmountOwed decimal.Decimal
}

// Item represents a single line item on the bill.
type Item struct {
	ID          string
	Description string
	// Price is the unit price; the subtotal multiplies it by Quantity.
	Price    decimal.Decimal
	Quantity decimal.Decimal
	// TaxRate is a percentage, e.g. 8.25.
	TaxRate   decimal.Decimal
	SplitType SplitType
	// Splits maps participant ID to the raw value the user typed. Its meaning
	// depends on SplitType: an amount, a percentage or a weight.
	Splits map[string]string
	// IncludedParticipants restricts an equal split. Empty means everyone.
	IncludedParticipants []string
}

// ItemTotal is the priced breakdown of one item.
type ItemTotal struct {
	ItemID   string
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// CalculateItemTotal prices an item, rounding to cents after every stage:
// subtotal = round2(price × quantity), tax = round2(subtotal × rate / 100),
// total = round2(subtotal + tax).
func CalculateItemTotal(item Item) ItemTotal {
	price := clampNonNegative(item.Price)
	rate := clampNonNegative(item.TaxRate)

	subtotal := Round2(price.Mul(quantityOf(item)))
	tax := Round2(subtotal.Mul(rate).Div(hundred))
	return ItemTotal{
		ItemID:   item.ID,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    Round2(subtotal.Add(tax)),
	}
}

// quantityOf returns the item's quantity, defaulting to 1 when unset or not positive.
func quantityOf(item Item) decimal.Decimal {
	if !item.Quantity.IsPositive() {
		return decimal.NewFromInt(1)
	}
	return item.Quantity
}

// AllocateItem computes how much of item each participant owes.
// Every participant is present in the result; those the policy does not
// credit owe zero. Shares are not rounded here, see AllocateBill.
//
// Malformed split values count as zero and negative ones are clamped to zero.
// An unknown split type allocates nothing.
func AllocateItem(item Item, participants []Participant) map[string]decimal.Decimal {
	total := CalculateItemTotal(item).Total
	return allocate(item, total, participants)
}

func allocate(item Item, total decimal.Decimal, participants []Participant) map[string]decimal.Decimal {
	owed := make(map[string]decimal.Decimal, len(participants))
	for _, p := range participants {
		owed[p.ID] = decimal.Zero
	}

	switch item.SplitType {
	case SplitEqual:
		relevant := equalSplitSet(item.IncludedParticipants, participants)
		divisor := int64(len(relevant))
		if divisor == 0 {
			divisor = 1
		}
		share := total.Div(decimal.NewFromInt(divisor))
		for _, id := range relevant {
			if _, ok := owed[id]; ok {
				owed[id] = share
			}
		}

	case SplitUnequalMoney:
		for id, raw := range item.Splits {
			if _, ok := owed[id]; ok {
				owed[id] = ParseNonNegative(raw)
			}
		}

	case SplitUnequalPercent, SplitUnequalShares:
		weights := make(map[string]decimal.Decimal, len(item.Splits))
		denominator := decimal.Zero
		for id, raw := range item.Splits {
			w := ParseNonNegative(raw)
			weights[id] = w
			denominator = denominator.Add(w)
		}
		if denominator.IsZero() {
			break
		}
		for id, w := range weights {
			if _, ok := owed[id]; ok {
				owed[id] = total.Mul(w).Div(denominator)
			}
		}
	}

	return owed
}

// equalSplitSet returns the IDs sharing an equal split: the included
// participants when any are listed, otherwise everyone. Duplicates are dropped.
func equalSplitSet(included []string, participants []Participant) []string {
	ids := included
	if len(ids) == 0 {
		ids = make([]string, 0, len(participants))
		for _, p := range participants {
			ids = append(ids, p.ID)
		}
	}

	set := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			set = append(set, id)
		}
	}
	return set
}

// AllocateBill recomputes AmountOwed for every participant from items.
// Each per-item share is rounded to cents before it is summed, and the
// accumulated rounding error is kept as is. The input slice is not modified.
func AllocateBill(items []Item, participants []Participant) []Participant {
	out := make([]Participant, len(participants))
	copy(out, participants)

	owed := make(map[string]decimal.Decimal, len(participants))
	for _, item := range items {
		for id, share := range AllocateItem(item, participants) {
			owed[id] = owed[id].Add(Round2(share))
		}
	}

	for i := range out {
		out[i].AmountOwed = owed[out[i].ID]
	}
	return out
}

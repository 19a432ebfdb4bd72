package calculator

import "github.com/shopspring/decimal"

// Summary compares what was billed with what was paid and allocated.
// Non-zero Unallocated or Unpaid values are for display; nothing is rejected.
type Summary struct {
	BillTotal   decimal.Decimal
	TotalPaid   decimal.Decimal
	TotalOwed   decimal.Decimal
	Unallocated decimal.Decimal // BillTotal - TotalOwed
	Unpaid      decimal.Decimal // BillTotal - TotalPaid
}

// Balanced reports whether the bill is fully allocated and fully paid.
func (s Summary) Balanced() bool {
	return isSettled(s.Unallocated) && isSettled(s.Unpaid)
}

// BillResult is everything derived from one bill snapshot.
type BillResult struct {
	Items        []ItemTotal
	Participants []Participant
	Transactions []Transaction
	Summary      Summary
}

// ItemTotals prices every item in order.
func ItemTotals(items []Item) []ItemTotal {
	totals := make([]ItemTotal, len(items))
	for i, item := range items {
		totals[i] = CalculateItemTotal(item)
	}
	return totals
}

// SettleBill runs the whole pipeline for one bill: it allocates owed amounts,
// reduces the resulting balances to transactions and summarises the totals.
func SettleBill(items []Item, participants []Participant) BillResult {
	totals := ItemTotals(items)
	allocated := AllocateBill(items, participants)

	balances := make([]Balance, len(allocated))
	for i, p := range allocated {
		balances[i] = Balance{
			Name:       p.Name,
			AmountPaid: clampNonNegative(p.AmountPaid),
			AmountOwed: p.AmountOwed,
		}
	}

	return BillResult{
		Items:        totals,
		Participants: allocated,
		Transactions: ComputeSettlement(balances),
		Summary:      summarize(totals, balances),
	}
}

func summarize(totals []ItemTotal, balances []Balance) Summary {
	var s Summary
	for _, t := range totals {
		s.BillTotal = s.BillTotal.Add(t.Total)
	}
	for _, b := range balances {
		s.TotalPaid = s.TotalPaid.Add(b.AmountPaid)
		s.TotalOwed = s.TotalOwed.Add(b.AmountOwed)
	}
	s.Unallocated = s.BillTotal.Sub(s.TotalOwed)
	s.Unpaid = s.BillTotal.Sub(s.TotalPaid)
	return s
}

// SplitDiscrepancy returns the item total minus the sum of its money splits.
// Only unequal-money splits can disagree with the total; every other type
// returns zero. A positive result means the splits under-allocate the item.
func SplitDiscrepancy(item Item) decimal.Decimal {
	if item.SplitType != SplitUnequalMoney {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, raw := range item.Splits {
		sum = sum.Add(ParseNonNegative(raw))
	}
	return CalculateItemTotal(item).Total.Sub(sum)
}

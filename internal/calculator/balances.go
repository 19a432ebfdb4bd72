package calculator

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Balance is the paid and owed totals of one person, the input of ComputeSettlement.
type Balance struct {
	Name       string
	AmountPaid decimal.Decimal
	AmountOwed decimal.Decimal
}

// NetBalance returns paid minus owed. Positive means the person is owed money.
func (b Balance) NetBalance() decimal.Decimal {
	return b.AmountPaid.Sub(b.AmountOwed)
}

// Transaction is one payment instruction that settles part of a debt.
type Transaction struct {
	From   string // Person who owes
	To     string // Person who is owed
	Amount decimal.Decimal
}

// AmountString returns the amount with exactly two decimal places.
func (t Transaction) AmountString() string {
	return t.Amount.StringFixed(MoneyPlaces)
}

type netEntry struct {
	name string
	net  decimal.Decimal
}

// ComputeSettlement reduces balances to a short list of transactions.
//
// Algorithm:
//   - net = paid - owed per person; anyone within 0.0001 of zero is settled
//   - debtors sorted most negative first, creditors largest first
//   - greedy: the current debtor pays the current creditor min(debt, credit),
//     and whichever side reaches zero moves on
//
// Every step settles at least one side, so n unsettled people produce at most
// n-1 transactions. If total paid and total owed differ, the loop stops when
// either side runs out and the remainder stays unsettled. Ties keep input order.
func ComputeSettlement(balances []Balance) []Transaction {
	var debtors, creditors []netEntry
	for _, b := range balances {
		net := b.NetBalance()
		if isSettled(net) {
			continue
		}
		if net.IsNegative() {
			debtors = append(debtors, netEntry{name: b.Name, net: net})
		} else {
			creditors = append(creditors, netEntry{name: b.Name, net: net})
		}
	}

	slices.SortStableFunc(debtors, func(a, b netEntry) int {
		return a.net.Cmp(b.net)
	})
	slices.SortStableFunc(creditors, func(a, b netEntry) int {
		return b.net.Cmp(a.net)
	})

	var transactions []Transaction
	d, c := 0, 0
	for d < len(debtors) && c < len(creditors) {
		debtor := &debtors[d]
		creditor := &creditors[c]

		amount := decimal.Min(debtor.net.Abs(), creditor.net)
		transactions = append(transactions, Transaction{
			From:   debtor.name,
			To:     creditor.name,
			Amount: Round2(amount),
		})

		debtor.net = debtor.net.Add(amount)
		creditor.net = creditor.net.Sub(amount)

		if isSettled(debtor.net) {
			d++
		}
		if creditor.net.LessThan(settleEpsilon) {
			c++
		}
	}

	return transactions
}

// BillSnapshot is one bill's items and participants, as used for group balances.
type BillSnapshot struct {
	Items        []Item
	Participants []Participant
}

// Payment is a transfer already made between two participants to clear debts.
type Payment struct {
	FromID string // Who paid (debtor settling up)
	ToID   string // Who received (creditor being paid)
	Amount decimal.Decimal
}

// MemberBalance is the aggregate position of one participant across bills.
type MemberBalance struct {
	ID         string
	Name       string
	TotalPaid  decimal.Decimal
	TotalOwed  decimal.Decimal
	NetBalance decimal.Decimal // Positive = owed money, Negative = owes money
}

// CalculateGroupBalances aggregates several bills and recorded payments and
// suggests the transactions that settle what remains.
//
// Algorithm:
//   - For each bill: every participant's paid and allocated owed amounts are added
//   - For each payment: the payer's paid grows, the receiver's owed grows
//   - net_balance = total_paid - total_owed
//   - Transactions: ComputeSettlement over the member balances
//
// Members are keyed by participant ID and returned in first-seen order.
// Payments naming unknown IDs add a member with an empty name.
func CalculateGroupBalances(bills []BillSnapshot, payments []Payment) ([]MemberBalance, []Transaction) {
	index := make(map[string]int)
	var members []MemberBalance

	member := func(id, name string) *MemberBalance {
		i, ok := index[id]
		if !ok {
			i = len(members)
			index[id] = i
			members = append(members, MemberBalance{ID: id, Name: name})
		}
		m := &members[i]
		if m.Name == "" {
			m.Name = name
		}
		return m
	}

	for _, bill := range bills {
		for _, p := range AllocateBill(bill.Items, bill.Participants) {
			m := member(p.ID, p.Name)
			m.TotalPaid = m.TotalPaid.Add(clampNonNegative(p.AmountPaid))
			m.TotalOwed = m.TotalOwed.Add(p.AmountOwed)
		}
	}

	for _, pay := range payments {
		amount := clampNonNegative(pay.Amount)
		from := member(pay.FromID, "")
		from.TotalPaid = from.TotalPaid.Add(amount)
		to := member(pay.ToID, "")
		to.TotalOwed = to.TotalOwed.Add(amount)
	}

	balances := make([]Balance, len(members))
	for i := range members {
		m := &members[i]
		m.NetBalance = m.TotalPaid.Sub(m.TotalOwed)
		name := m.Name
		if name == "" {
			name = m.ID
		}
		balances[i] = Balance{Name: name, AmountPaid: m.TotalPaid, AmountOwed: m.TotalOwed}
	}

	return members, ComputeSettlement(balances)
}

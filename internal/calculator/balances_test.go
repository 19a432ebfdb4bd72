package calculator

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/shopspring/decimal"
)

// applyTransactions returns each person's net balance after the transactions are paid.
func applyTransactions(balances []Balance, txs []Transaction) map[string]decimal.Decimal {
	net := make(map[string]decimal.Decimal, len(balances))
	for _, b := range balances {
		net[b.Name] = net[b.Name].Add(b.NetBalance())
	}
	for _, tx := range txs {
		net[tx.From] = net[tx.From].Add(tx.Amount)
		net[tx.To] = net[tx.To].Sub(tx.Amount)
	}
	return net
}

// sortTransactions orders transactions by payer then payee, so comparisons
// do not depend on how ties between equal balances were broken.
func sortTransactions(txs []Transaction) []Transaction {
	out := slices.Clone(txs)
	slices.SortFunc(out, func(a, b Transaction) int {
		return cmp.Or(cmp.Compare(a.From, b.From), cmp.Compare(a.To, b.To))
	})
	return out
}

func totalTransferred(txs []Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range txs {
		sum = sum.Add(tx.Amount)
	}
	return sum
}

func TestComputeSettlement(t *testing.T) {
	tests := []struct {
		name     string
		balances []Balance
		want     []Transaction
	}{
		{
			name: "two people",
			balances: []Balance{
				{Name: "Alice", AmountPaid: dec("100"), AmountOwed: dec("50")},
				{Name: "Bob", AmountPaid: dec("0"), AmountOwed: dec("50")},
			},
			want: []Transaction{{From: "Bob", To: "Alice", Amount: dec("50")}},
		},
		{
			name: "one payer for three",
			balances: []Balance{
				{Name: "Alice", AmountPaid: dec("30"), AmountOwed: dec("10")},
				{Name: "Bob", AmountPaid: dec("0"), AmountOwed: dec("10")},
				{Name: "Charlie", AmountPaid: dec("0"), AmountOwed: dec("10")},
			},
			want: []Transaction{
				{From: "Bob", To: "Alice", Amount: dec("10")},
				{From: "Charlie", To: "Alice", Amount: dec("10")},
			},
		},
		{
			name: "largest debtor pays largest creditor first",
			balances: []Balance{
				{Name: "A", AmountPaid: dec("50")},
				{Name: "B", AmountPaid: dec("10")},
				{Name: "C", AmountOwed: dec("40")},
				{Name: "D", AmountOwed: dec("20")},
			},
			want: []Transaction{
				{From: "C", To: "A", Amount: dec("40")},
				{From: "D", To: "A", Amount: dec("10")},
				{From: "D", To: "B", Amount: dec("10")},
			},
		},
		{
			name: "nobody paid",
			balances: []Balance{
				{Name: "Alice", AmountOwed: dec("10")},
				{Name: "Bob", AmountOwed: dec("20")},
			},
			want: nil,
		},
		{
			name: "already settled",
			balances: []Balance{
				{Name: "Alice", AmountPaid: dec("10"), AmountOwed: dec("10")},
				{Name: "Bob", AmountPaid: dec("20.00005"), AmountOwed: dec("20")},
			},
			want: nil,
		},
		{
			name: "overpaid bill leaves creditor residual",
			balances: []Balance{
				{Name: "Alice", AmountPaid: dec("100")},
				{Name: "Bob", AmountOwed: dec("30")},
			},
			want: []Transaction{{From: "Bob", To: "Alice", Amount: dec("30")}},
		},
		{
			name: "amounts rounded to cents",
			balances: []Balance{
				{Name: "Alice", AmountPaid: dec("10"), AmountOwed: dec("3.333")},
				{Name: "Bob", AmountOwed: dec("6.667")},
			},
			want: []Transaction{{From: "Bob", To: "Alice", Amount: dec("6.67")}},
		},
		{
			name:     "empty input",
			balances: nil,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sortTransactions(ComputeSettlement(tt.balances))
			want := sortTransactions(tt.want)
			if len(got) != len(want) {
				t.Fatalf("got %d transactions, want %d: %+v", len(got), len(want), got)
			}
			for i := range want {
				if got[i].From != want[i].From || got[i].To != want[i].To || !got[i].Amount.Equal(want[i].Amount) {
					t.Errorf("transaction %d = %+v, want %+v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestComputeSettlement_AmountString(t *testing.T) {
	got := ComputeSettlement([]Balance{
		{Name: "Alice", AmountPaid: dec("100"), AmountOwed: dec("50")},
		{Name: "Bob", AmountPaid: dec("0"), AmountOwed: dec("50")},
	})
	if len(got) != 1 {
		t.Fatalf("got %d transactions, want 1", len(got))
	}
	if s := got[0].AmountString(); s != "50.00" {
		t.Errorf("AmountString() = %q, want %q", s, "50.00")
	}
}

func TestComputeSettlement_TiesSettleEveryone(t *testing.T) {
	balances := []Balance{
		{Name: "A", AmountPaid: dec("20")},
		{Name: "B", AmountPaid: dec("20")},
		{Name: "C", AmountOwed: dec("20")},
		{Name: "D", AmountOwed: dec("20")},
	}

	txs := ComputeSettlement(balances)

	if len(txs) != 2 {
		t.Errorf("got %d transactions, want 2", len(txs))
	}
	for name, net := range applyTransactions(balances, txs) {
		if !net.IsZero() {
			t.Errorf("%s left with %s", name, net)
		}
	}
}

func TestComputeSettlement_BalancedInputsSettleFully(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 42))

	for round := 0; round < 200; round++ {
		n := 2 + rng.IntN(8)
		balances := make([]Balance, n)
		var totalCents int64
		for i := range balances {
			owed := rng.Int64N(10000)
			totalCents += owed
			balances[i] = Balance{
				Name:       string(rune('A' + i)),
				AmountOwed: decimal.New(owed, -2),
			}
		}
		// Spread the total over a random subset of payers.
		remaining := totalCents
		for i := range balances {
			if remaining == 0 {
				break
			}
			paid := remaining
			if i < n-1 {
				paid = rng.Int64N(remaining + 1)
			}
			balances[i].AmountPaid = decimal.New(paid, -2)
			remaining -= paid
		}

		txs := ComputeSettlement(balances)

		unsettled := 0
		for _, b := range balances {
			if !b.NetBalance().IsZero() {
				unsettled++
			}
		}
		if unsettled > 0 && len(txs) > unsettled-1 {
			t.Fatalf("round %d: %d transactions for %d unsettled people", round, len(txs), unsettled)
		}
		for name, net := range applyTransactions(balances, txs) {
			if !net.IsZero() {
				t.Fatalf("round %d: %s left with %s after %+v", round, name, net, txs)
			}
		}
	}
}

func TestComputeSettlement_Idempotent(t *testing.T) {
	balances := []Balance{
		{Name: "Alice", AmountPaid: dec("61.40"), AmountOwed: dec("20.10")},
		{Name: "Bob", AmountPaid: dec("0"), AmountOwed: dec("20.10")},
		{Name: "Charlie", AmountPaid: dec("12"), AmountOwed: dec("20.10")},
		{Name: "Diana", AmountPaid: dec("7.10"), AmountOwed: dec("20.10")},
	}

	first := totalTransferred(ComputeSettlement(balances))
	second := totalTransferred(ComputeSettlement(balances))

	if !first.Equal(second) {
		t.Errorf("total transferred changed between runs: %s then %s", first, second)
	}
	if !balances[0].AmountPaid.Equal(dec("61.40")) {
		t.Errorf("input modified: %+v", balances[0])
	}
}

func TestCalculateGroupBalances(t *testing.T) {
	alice := Participant{ID: "a", Name: "Alice"}
	bob := Participant{ID: "b", Name: "Bob"}

	paidBy := func(p Participant, amount string) Participant {
		p.AmountPaid = dec(amount)
		return p
	}

	bills := []BillSnapshot{
		{
			Items:        []Item{{Price: dec("30"), SplitType: SplitEqual}},
			Participants: []Participant{paidBy(alice, "30"), bob},
		},
		{
			Items:        []Item{{Price: dec("20"), SplitType: SplitEqual}},
			Participants: []Participant{alice, paidBy(bob, "20")},
		},
	}

	t.Run("aggregates bills", func(t *testing.T) {
		members, txs := CalculateGroupBalances(bills, nil)

		if len(members) != 2 {
			t.Fatalf("got %d members, want 2", len(members))
		}
		want := []struct{ id, paid, owed, net string }{
			{"a", "30", "25", "5"},
			{"b", "20", "25", "-5"},
		}
		for i, w := range want {
			m := members[i]
			if m.ID != w.id || !m.TotalPaid.Equal(dec(w.paid)) || !m.TotalOwed.Equal(dec(w.owed)) || !m.NetBalance.Equal(dec(w.net)) {
				t.Errorf("member %d = %+v, want %+v", i, m, w)
			}
		}

		if len(txs) != 1 {
			t.Fatalf("got %d transactions, want 1", len(txs))
		}
		if txs[0].From != "Bob" || txs[0].To != "Alice" || txs[0].AmountString() != "5.00" {
			t.Errorf("transaction = %+v, want Bob -> Alice 5.00", txs[0])
		}
	})

	t.Run("recorded payments clear debts", func(t *testing.T) {
		members, txs := CalculateGroupBalances(bills, []Payment{{FromID: "b", ToID: "a", Amount: dec("5")}})

		if len(txs) != 0 {
			t.Errorf("expected no transactions, got %+v", txs)
		}
		for _, m := range members {
			if !m.NetBalance.IsZero() {
				t.Errorf("%s net balance = %s, want 0", m.Name, m.NetBalance)
			}
		}
	})

	t.Run("payment to unknown member", func(t *testing.T) {
		members, _ := CalculateGroupBalances(nil, []Payment{{FromID: "x", ToID: "y", Amount: dec("3")}})

		if len(members) != 2 {
			t.Fatalf("got %d members, want 2", len(members))
		}
		if !members[0].NetBalance.Equal(dec("3")) || !members[1].NetBalance.Equal(dec("-3")) {
			t.Errorf("unexpected balances: %+v", members)
		}
	})
}

package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitsettle/internal/calculator"
	"github.com/mmynk/splitsettle/internal/models"
)

// idNamespace seeds the name-based UUIDs given to items and participants
// that arrive without an ID.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/mmynk/splitsettle"))

// positionalID returns a UUID derived from kind and position, so the same
// request always yields the same IDs.
func positionalID(kind string, index int) string {
	return uuid.NewSHA1(idNamespace, fmt.Appendf(nil, "%s/%d", kind, index)).String()
}

// inputs converts wire models to calculator types and counts how many
// numeric fields degraded to zero along the way.
type inputs struct {
	degraded int
}

func (in *inputs) amount(n models.Number) decimal.Decimal {
	raw := string(n)
	if calculator.IsDegraded(raw) {
		in.degraded++
	}
	return calculator.ParseNonNegative(raw)
}

func (in *inputs) item(item models.Item, index int) calculator.Item {
	id := item.ID
	if id == "" {
		id = positionalID("item", index)
	}

	var splits map[string]string
	if len(item.Splits) > 0 {
		splits = make(map[string]string, len(item.Splits))
		for pid, v := range item.Splits {
			if calculator.IsDegraded(string(v)) {
				in.degraded++
			}
			splits[pid] = string(v)
		}
	}

	return calculator.Item{
		ID:                   id,
		Description:          item.Description,
		Price:                in.amount(item.Price),
		Quantity:             in.amount(item.Quantity),
		TaxRate:              in.amount(item.TaxRate),
		SplitType:            calculator.SplitType(item.SplitType),
		Splits:               splits,
		IncludedParticipants: item.IncludedParticipants,
	}
}

func (in *inputs) items(items []models.Item) []calculator.Item {
	out := make([]calculator.Item, len(items))
	for i, item := range items {
		out[i] = in.item(item, i)
	}
	return out
}

// participants falls back to the name for a participant without an ID, so
// splits and included lists can refer to people by name and the same person
// matches across bills. A missing or already taken name gets a positional ID.
func (in *inputs) participants(ps []models.Participant) []calculator.Participant {
	taken := make(map[string]bool, len(ps))
	for _, p := range ps {
		if p.ID != "" {
			taken[p.ID] = true
		}
	}

	out := make([]calculator.Participant, len(ps))
	for i, p := range ps {
		id := p.ID
		switch {
		case id != "":
		case p.Name != "" && !taken[p.Name]:
			id = p.Name
		default:
			id = positionalID("participant", i)
		}
		taken[id] = true
		out[i] = calculator.Participant{
			ID:         id,
			Name:       p.Name,
			AmountPaid: in.amount(p.AmountPaid),
		}
	}
	return out
}

func (in *inputs) balances(bs []models.Balance) []calculator.Balance {
	out := make([]calculator.Balance, len(bs))
	for i, b := range bs {
		out[i] = calculator.Balance{
			Name:       b.Name,
			AmountPaid: in.amount(b.AmountPaid),
			AmountOwed: in.amount(b.AmountOwed),
		}
	}
	return out
}

func (in *inputs) payments(ps []models.Payment) []calculator.Payment {
	out := make([]calculator.Payment, len(ps))
	for i, p := range ps {
		out[i] = calculator.Payment{
			FromID: p.FromID,
			ToID:   p.ToID,
			Amount: in.amount(p.Amount),
		}
	}
	return out
}

func toItemTotal(t calculator.ItemTotal, item calculator.Item) models.ItemTotal {
	return models.ItemTotal{
		ItemID:      t.ItemID,
		Subtotal:    models.NewMoney(t.Subtotal),
		Tax:         models.NewMoney(t.Tax),
		Total:       models.NewMoney(t.Total),
		Discrepancy: models.NewMoney(calculator.SplitDiscrepancy(item)),
	}
}

func toTransactions(txs []calculator.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(txs))
	for i, tx := range txs {
		out[i] = models.Transaction{
			From:   tx.From,
			To:     tx.To,
			Amount: tx.AmountString(),
		}
	}
	return out
}

func toParticipantShares(ps []calculator.Participant) []models.ParticipantShare {
	out := make([]models.ParticipantShare, len(ps))
	for i, p := range ps {
		out[i] = models.ParticipantShare{
			ID:         p.ID,
			Name:       p.Name,
			AmountPaid: models.NewMoney(p.AmountPaid),
			AmountOwed: models.NewMoney(p.AmountOwed),
		}
	}
	return out
}

func toSummary(s calculator.Summary) models.BillSummary {
	return models.BillSummary{
		BillTotal:   models.NewMoney(s.BillTotal),
		TotalPaid:   models.NewMoney(s.TotalPaid),
		TotalOwed:   models.NewMoney(s.TotalOwed),
		Unallocated: models.NewMoney(s.Unallocated),
		Unpaid:      models.NewMoney(s.Unpaid),
		Balanced:    s.Balanced(),
	}
}

func toMemberBalances(ms []calculator.MemberBalance) []models.MemberBalance {
	out := make([]models.MemberBalance, len(ms))
	for i, m := range ms {
		out[i] = models.MemberBalance{
			ID:         m.ID,
			Name:       m.Name,
			TotalPaid:  models.NewMoney(m.TotalPaid),
			TotalOwed:  models.NewMoney(m.TotalOwed),
			NetBalance: models.NewMoney(m.NetBalance),
		}
	}
	return out
}

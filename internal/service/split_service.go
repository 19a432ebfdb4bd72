// Package service implements the Connect SplitService on top of the calculator.
//
// Every procedure is stateless: requests carry a full snapshot and responses
// are recomputed from it. Malformed numbers never fail a request; they count
// as zero and are reported through metrics and debug logs.
package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/splitsettle/internal/calculator"
	"github.com/mmynk/splitsettle/internal/metrics"
	"github.com/mmynk/splitsettle/internal/models"
)

// SplitService implements the Connect SplitService
type SplitService struct {
	metrics *metrics.Metrics
}

// NewSplitService creates a new SplitService reporting to the given metrics.
func NewSplitService(m *metrics.Metrics) *SplitService {
	return &SplitService{metrics: m}
}

// AllocateItem prices a single item and splits it among participants.
func (s *SplitService) AllocateItem(ctx context.Context, req *connect.Request[AllocateItemRequest]) (*connect.Response[AllocateItemResponse], error) {
	var in inputs
	item := in.item(req.Msg.Item, 0)
	participants := in.participants(req.Msg.Participants)
	s.record(ctx, in, item)

	shares := calculator.AllocateItem(item, participants)
	rounded := make(map[string]models.Money, len(shares))
	for id, share := range shares {
		rounded[id] = models.NewMoney(calculator.Round2(share))
	}

	total := calculator.CalculateItemTotal(item)
	slog.DebugContext(ctx, "Item allocated",
		"item_id", item.ID,
		"split_type", item.SplitType,
		"total", total.Total.StringFixed(calculator.MoneyPlaces),
		"participants", len(participants),
	)

	return connect.NewResponse(&AllocateItemResponse{
		ItemTotal: toItemTotal(total, item),
		Shares:    rounded,
	}), nil
}

// CalculateSplit allocates every item of a bill, then settles the balances.
func (s *SplitService) CalculateSplit(ctx context.Context, req *connect.Request[CalculateSplitRequest]) (*connect.Response[CalculateSplitResponse], error) {
	var in inputs
	items := in.items(req.Msg.Items)
	participants := in.participants(req.Msg.Participants)
	s.record(ctx, in, items...)

	result := calculator.SettleBill(items, participants)
	s.metrics.SettlementComputed(len(result.Transactions))

	itemTotals := make([]models.ItemTotal, len(result.Items))
	for i, t := range result.Items {
		itemTotals[i] = toItemTotal(t, items[i])
	}

	if !result.Summary.Balanced() {
		slog.DebugContext(ctx, "Bill not balanced",
			"bill_total", result.Summary.BillTotal.StringFixed(calculator.MoneyPlaces),
			"unallocated", result.Summary.Unallocated.StringFixed(calculator.MoneyPlaces),
			"unpaid", result.Summary.Unpaid.StringFixed(calculator.MoneyPlaces),
		)
	}
	slog.DebugContext(ctx, "Split calculated",
		"items", len(items),
		"participants", len(participants),
		"transactions", len(result.Transactions),
	)

	return connect.NewResponse(&CalculateSplitResponse{
		Items:        itemTotals,
		Participants: toParticipantShares(result.Participants),
		Transactions: toTransactions(result.Transactions),
		Summary:      toSummary(result.Summary),
	}), nil
}

// ComputeSettlement reduces paid and owed totals to a list of transactions.
func (s *SplitService) ComputeSettlement(ctx context.Context, req *connect.Request[ComputeSettlementRequest]) (*connect.Response[ComputeSettlementResponse], error) {
	var in inputs
	balances := in.balances(req.Msg.Participants)
	s.record(ctx, in)

	txs := calculator.ComputeSettlement(balances)
	s.metrics.SettlementComputed(len(txs))

	slog.DebugContext(ctx, "Settlement computed",
		"participants", len(balances),
		"transactions", len(txs),
	)

	return connect.NewResponse(&ComputeSettlementResponse{
		Transactions: toTransactions(txs),
	}), nil
}

// GetGroupBalances aggregates several bills and recorded payments.
func (s *SplitService) GetGroupBalances(ctx context.Context, req *connect.Request[GetGroupBalancesRequest]) (*connect.Response[GetGroupBalancesResponse], error) {
	var in inputs
	bills := make([]calculator.BillSnapshot, len(req.Msg.Bills))
	var allItems []calculator.Item
	for i, bill := range req.Msg.Bills {
		bills[i] = calculator.BillSnapshot{
			Items:        in.items(bill.Items),
			Participants: in.participants(bill.Participants),
		}
		allItems = append(allItems, bills[i].Items...)
	}
	payments := in.payments(req.Msg.Payments)
	s.record(ctx, in, allItems...)

	members, txs := calculator.CalculateGroupBalances(bills, payments)
	s.metrics.SettlementComputed(len(txs))

	slog.DebugContext(ctx, "Group balances calculated",
		"bills", len(bills),
		"payments", len(payments),
		"members", len(members),
		"transactions", len(txs),
	)

	return connect.NewResponse(&GetGroupBalancesResponse{
		MemberBalances: toMemberBalances(members),
		Transactions:   toTransactions(txs),
	}), nil
}

// record reports allocated items and degraded inputs.
func (s *SplitService) record(ctx context.Context, in inputs, items ...calculator.Item) {
	for _, item := range items {
		if !item.SplitType.Valid() {
			slog.WarnContext(ctx, "Unknown split type, item allocates nothing",
				"item_id", item.ID,
				"split_type", item.SplitType,
			)
			s.metrics.ItemAllocated("")
			continue
		}
		s.metrics.ItemAllocated(string(item.SplitType))
	}
	if in.degraded > 0 {
		s.metrics.DegradedInputs(in.degraded)
		slog.DebugContext(ctx, "Malformed numeric input counted as zero", "count", in.degraded)
	}
}

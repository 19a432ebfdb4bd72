package service

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// SplitServiceName is the fully-qualified name of the calculation service.
const SplitServiceName = "splitsettle.v1.SplitService"

// Procedure paths served by NewSplitServiceHandler.
const (
	AllocateItemProcedure      = "/" + SplitServiceName + "/AllocateItem"
	CalculateSplitProcedure    = "/" + SplitServiceName + "/CalculateSplit"
	ComputeSettlementProcedure = "/" + SplitServiceName + "/ComputeSettlement"
	GetGroupBalancesProcedure  = "/" + SplitServiceName + "/GetGroupBalances"
)

// NewSplitServiceHandler builds an HTTP handler serving every SplitService
// procedure. It returns the path prefix to mount the handler on.
func NewSplitServiceHandler(svc *SplitService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	allocateItem := connect.NewUnaryHandler(AllocateItemProcedure, svc.AllocateItem, opts...)
	calculateSplit := connect.NewUnaryHandler(CalculateSplitProcedure, svc.CalculateSplit, opts...)
	computeSettlement := connect.NewUnaryHandler(ComputeSettlementProcedure, svc.ComputeSettlement, opts...)
	getGroupBalances := connect.NewUnaryHandler(GetGroupBalancesProcedure, svc.GetGroupBalances, opts...)

	prefix := "/" + SplitServiceName + "/"
	return prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case AllocateItemProcedure:
			allocateItem.ServeHTTP(w, r)
		case CalculateSplitProcedure:
			calculateSplit.ServeHTTP(w, r)
		case ComputeSettlementProcedure:
			computeSettlement.ServeHTTP(w, r)
		case GetGroupBalancesProcedure:
			getGroupBalances.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// SplitServiceClient calls SplitService over Connect with the JSON codec.
type SplitServiceClient struct {
	allocateItem      *connect.Client[AllocateItemRequest, AllocateItemResponse]
	calculateSplit    *connect.Client[CalculateSplitRequest, CalculateSplitResponse]
	computeSettlement *connect.Client[ComputeSettlementRequest, ComputeSettlementResponse]
	getGroupBalances  *connect.Client[GetGroupBalancesRequest, GetGroupBalancesResponse]
}

// NewSplitServiceClient creates a client for the service hosted at baseURL.
func NewSplitServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *SplitServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)
	return &SplitServiceClient{
		allocateItem:      connect.NewClient[AllocateItemRequest, AllocateItemResponse](httpClient, baseURL+AllocateItemProcedure, opts...),
		calculateSplit:    connect.NewClient[CalculateSplitRequest, CalculateSplitResponse](httpClient, baseURL+CalculateSplitProcedure, opts...),
		computeSettlement: connect.NewClient[ComputeSettlementRequest, ComputeSettlementResponse](httpClient, baseURL+ComputeSettlementProcedure, opts...),
		getGroupBalances:  connect.NewClient[GetGroupBalancesRequest, GetGroupBalancesResponse](httpClient, baseURL+GetGroupBalancesProcedure, opts...),
	}
}

// AllocateItem calls SplitService.AllocateItem.
func (c *SplitServiceClient) AllocateItem(ctx context.Context, req *connect.Request[AllocateItemRequest]) (*connect.Response[AllocateItemResponse], error) {
	return c.allocateItem.CallUnary(ctx, req)
}

// CalculateSplit calls SplitService.CalculateSplit.
func (c *SplitServiceClient) CalculateSplit(ctx context.Context, req *connect.Request[CalculateSplitRequest]) (*connect.Response[CalculateSplitResponse], error) {
	return c.calculateSplit.CallUnary(ctx, req)
}

// ComputeSettlement calls SplitService.ComputeSettlement.
func (c *SplitServiceClient) ComputeSettlement(ctx context.Context, req *connect.Request[ComputeSettlementRequest]) (*connect.Response[ComputeSettlementResponse], error) {
	return c.computeSettlement.CallUnary(ctx, req)
}

// GetGroupBalances calls SplitService.GetGroupBalances.
func (c *SplitServiceClient) GetGroupBalances(ctx context.Context, req *connect.Request[GetGroupBalancesRequest]) (*connect.Response[GetGroupBalancesResponse], error) {
	return c.getGroupBalances.CallUnary(ctx, req)
}

package paystack

import "context"

type GatewayInterface interface {
	Initialize(ctx context.Context, req InitializeRequest) (*InitializeData, error)
	Verify(ctx context.Context, reference string) (*VerifyResult, error)
}

var _ GatewayInterface = (*Client)(nil)

package aptos

import (
	"context"

	"github.com/KeystoneHQ/bcs/bcs"
)

// SimulateTransaction simulates a transaction without committing it. The
// signed transaction is streamed to the node as it is BCS-encoded; it is
// never materialized as a standalone byte slice.
func (c *Client) SimulateTransaction(ctx context.Context, signedTxn bcs.Marshaler, opts ...SimulateOption) (Response[[]UserTransaction], error) {
	simOpts := ApplySimulateOptions(opts...)
	path := "/transactions/simulate"

	var params []string
	if simOpts.EstimateMaxGasAmount {
		params = append(params, "estimate_max_gas_amount=true")
	}
	if simOpts.EstimateGasUnitPrice {
		params = append(params, "estimate_gas_unit_price=true")
	}
	if simOpts.EstimatePrioritizedGasUnitPrice {
		params = append(params, "estimate_prioritized_gas_unit_price=true")
	}
	if len(params) > 0 {
		path += "?" + joinStrings(params, "&")
	}

	var result []UserTransaction
	metadata, err := c.http.postBCSValue(ctx, path, signedTxn, &result)
	if err != nil {
		return Response[[]UserTransaction]{}, err
	}
	return Response[[]UserTransaction]{Data: result, Metadata: metadata}, nil
}

// SubmitTransaction submits a signed transaction, streaming its BCS
// encoding directly into the HTTP request body.
func (c *Client) SubmitTransaction(ctx context.Context, signedTxn bcs.Marshaler) (Response[PendingTransaction], error) {
	path := "/transactions"

	var result PendingTransaction
	metadata, err := c.http.postBCSValue(ctx, path, signedTxn, &result)
	if err != nil {
		return Response[PendingTransaction]{}, err
	}
	return Response[PendingTransaction]{Data: result, Metadata: metadata}, nil
}

// SimulateOption is a function that modifies simulation options.
type SimulateOption func(*SimulateOptions)

// SimulateOptions contains options for transaction simulation.
type SimulateOptions struct {
	EstimateMaxGasAmount            bool
	EstimateGasUnitPrice            bool
	EstimatePrioritizedGasUnitPrice bool
}

// ApplySimulateOptions applies all simulation options.
func ApplySimulateOptions(opts ...SimulateOption) SimulateOptions {
	var options SimulateOptions
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// WithEstimateMaxGasAmount enables max gas amount estimation.
func WithEstimateMaxGasAmount() SimulateOption {
	return func(o *SimulateOptions) {
		o.EstimateMaxGasAmount = true
	}
}

// WithEstimateGasUnitPrice enables gas unit price estimation.
func WithEstimateGasUnitPrice() SimulateOption {
	return func(o *SimulateOptions) {
		o.EstimateGasUnitPrice = true
	}
}

// WithEstimatePrioritizedGasUnitPrice enables prioritized gas unit price estimation.
func WithEstimatePrioritizedGasUnitPrice() SimulateOption {
	return func(o *SimulateOptions) {
		o.EstimatePrioritizedGasUnitPrice = true
	}
}

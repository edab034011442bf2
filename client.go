package aptos

import (
	"context"
	"net/http"
	"time"
)

// Client is the main Aptos SDK client.
type Client struct {
	http    *httpClient
	chainID uint8
}

// NewClient creates a new Aptos client with the given configuration.
func NewClient(config ClientConfig) (*Client, error) {
	hc := config.HTTPClient
	if hc == nil {
		timeout := config.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{
		http: newHTTPClient(config.NodeURL, hc),
	}, nil
}

// GetLedgerInfo retrieves the current ledger information, including the
// chain ID needed to build a RawTransaction.
func (c *Client) GetLedgerInfo(ctx context.Context) (Response[LedgerInfo], error) {
	var info LedgerInfo
	metadata, err := c.http.get(ctx, "/", &info)
	if err != nil {
		return Response[LedgerInfo]{}, err
	}
	return Response[LedgerInfo]{Data: info, Metadata: metadata}, nil
}

// EstimateGasPrice retrieves the current gas price estimation.
func (c *Client) EstimateGasPrice(ctx context.Context) (Response[GasEstimation], error) {
	var estimation GasEstimation
	metadata, err := c.http.get(ctx, "/estimate_gas_price", &estimation)
	if err != nil {
		return Response[GasEstimation]{}, err
	}
	return Response[GasEstimation]{Data: estimation, Metadata: metadata}, nil
}

// GetAccount retrieves account information including sequence number and
// authentication key, the data BuildTransaction needs to fill in a
// RawTransaction's Sender/SequenceNumber fields.
func (c *Client) GetAccount(ctx context.Context, address AccountAddress, opts ...RequestOption) (Response[AccountData], error) {
	options := ApplyOptions(opts...)
	path := "/accounts/" + address.String() + options.BuildQueryParams()

	var account AccountData
	metadata, err := c.http.get(ctx, path, &account)
	if err != nil {
		return Response[AccountData]{}, err
	}
	return Response[AccountData]{Data: account, Metadata: metadata}, nil
}

package aptos

// RequestOptions contains options for API requests.
type RequestOptions struct {
	LedgerVersion *uint64
}

// RequestOption is a function that modifies request options.
type RequestOption func(*RequestOptions)

// ApplyOptions applies all options and returns the resulting RequestOptions.
func ApplyOptions(opts ...RequestOption) RequestOptions {
	var options RequestOptions
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// WithLedgerVersion specifies a ledger version for the request.
// This retrieves the state at a specific historical version.
func WithLedgerVersion(version uint64) RequestOption {
	return func(o *RequestOptions) {
		o.LedgerVersion = &version
	}
}

// BuildQueryParams builds query parameters from request options.
func (o *RequestOptions) BuildQueryParams() string {
	var params []string
	if o.LedgerVersion != nil {
		params = append(params, "ledger_version="+formatUint64(*o.LedgerVersion))
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + joinStrings(params, "&")
}

func formatUint64(v uint64) string {
	return formatUint(v)
}

func formatUint(v uint64) string {
	// Simple integer to string conversion
	if v == 0 {
		return "0"
	}
	var digits []byte
	for v > 0 {
		digits = append([]byte{byte('0' + v%10)}, digits...)
		v /= 10
	}
	return string(digits)
}

func joinStrings(strs []string, sep string) string {
	if len(strs) == 0 {
		return ""
	}
	result := strs[0]
	for _, s := range strs[1:] {
		result += sep + s
	}
	return result
}

// BuildOption is a function that modifies transaction build options.
type BuildOption func(*BuildOptions)

// BuildOptions contains options for building transactions.
type BuildOptions struct {
	MaxGasAmount            *uint64
	GasUnitPrice            *uint64
	ExpirationTimestampSecs *uint64
	SequenceNumber          *uint64
	ReplayProtectionNonce   *uint64 // Recorded only; BuildTransaction does not read it
}

// ApplyBuildOptions applies all build options.
func ApplyBuildOptions(opts ...BuildOption) BuildOptions {
	var options BuildOptions
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// WithMaxGasAmount sets the maximum gas amount for the transaction.
func WithMaxGasAmount(amount uint64) BuildOption {
	return func(o *BuildOptions) {
		o.MaxGasAmount = &amount
	}
}

// WithGasUnitPrice sets the gas unit price for the transaction.
func WithGasUnitPrice(price uint64) BuildOption {
	return func(o *BuildOptions) {
		o.GasUnitPrice = &price
	}
}

// WithExpirationTimestampSecs sets the expiration timestamp for the transaction.
func WithExpirationTimestampSecs(timestamp uint64) BuildOption {
	return func(o *BuildOptions) {
		o.ExpirationTimestampSecs = &timestamp
	}
}

// WithSequenceNumber sets the sequence number for the transaction.
func WithSequenceNumber(seqNum uint64) BuildOption {
	return func(o *BuildOptions) {
		o.SequenceNumber = &seqNum
	}
}

// WithReplayProtectionNonce sets BuildOptions.ReplayProtectionNonce.
// BuildTransaction does not use this field: it still fetches or takes a
// sequence number, leaves the payload as given, and does not build an
// orderless transaction or shorten its expiration. An orderless payload can
// be built directly with TransactionInnerPayloadV1 and TransactionExtraConfigV1.
func WithReplayProtectionNonce(nonce uint64) BuildOption {
	return func(o *BuildOptions) {
		o.ReplayProtectionNonce = &nonce
	}
}

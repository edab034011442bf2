package aptos

import "encoding/json"

// PendingTransaction represents a transaction that has been submitted but not
// yet executed. It is the response body of SubmitTransaction.
type PendingTransaction struct {
	Hash                    string          `json:"hash"`
	Sender                  string          `json:"sender"`
	SequenceNumber          string          `json:"sequence_number"`
	MaxGasAmount            string          `json:"max_gas_amount"`
	GasUnitPrice            string          `json:"gas_unit_price"`
	ExpirationTimestampSecs string          `json:"expiration_timestamp_secs"`
	Payload                 json.RawMessage `json:"payload"`
	Signature               json.RawMessage `json:"signature"`
}

// UserTransaction represents an executed user transaction: the outcome of a
// simulated or committed signed transaction. It is the response body of
// SimulateTransaction.
type UserTransaction struct {
	Version                 string          `json:"version"`
	Hash                    string          `json:"hash"`
	StateChangeHash         string          `json:"state_change_hash"`
	GasUsed                 string          `json:"gas_used"`
	Success                 bool            `json:"success"`
	VMStatus                string          `json:"vm_status"`
	Sender                  string          `json:"sender"`
	SequenceNumber          string          `json:"sequence_number"`
	MaxGasAmount            string          `json:"max_gas_amount"`
	GasUnitPrice            string          `json:"gas_unit_price"`
	ExpirationTimestampSecs string          `json:"expiration_timestamp_secs"`
	Payload                 json.RawMessage `json:"payload"`
	Signature               json.RawMessage `json:"signature"`
	Timestamp               string          `json:"timestamp"`
}

// GasUsedUint64 returns the gas used as uint64.
func (t *UserTransaction) GasUsedUint64() uint64 {
	return parseStringToUint64(t.GasUsed)
}

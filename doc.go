// Package aptos provides a Go SDK for building, signing, simulating, and
// submitting Aptos blockchain transactions.
//
// This SDK covers the signed-transaction path end to end: fetching the
// account/chain state a RawTransaction needs, constructing the Move
// transaction payload, signing it, and streaming its BCS encoding to a node.
// It does not cover the broader REST surface (block/event/resource
// browsing).
//
// # Quick Start
//
// Create a client connected to a network:
//
//	client, err := aptos.NewClient(aptos.MainnetConfig)
//	// or aptos.TestnetConfig, aptos.DevnetConfig, aptos.LocalnetConfig
//
// Query account information:
//
//	account, err := client.GetAccount(ctx, address)
//	fmt.Println(account.Data.SequenceNumber)
//
// Submit a transaction:
//
//	account, _ := aptos.AccountFromEd25519Seed(privateKey)
//	rawTxn, _ := client.BuildTransaction(ctx, account.Address, payload)
//	signedTxn, _ := account.SignTransaction(rawTxn)
//	pending, _ := client.SubmitTransaction(ctx, signedTxn)
//	fmt.Println(pending.Data.Hash)
//
// # Package Structure
//
// The SDK is organized as follows:
//
//   - aptos: Main package with Client, Account, and core types
//   - aptos/bcs: Binary Canonical Serialization - a deterministic,
//     non-self-describing encoder with bounded container nesting and
//     canonical map ordering, used for transaction encoding
//   - aptos/crypto: Cryptographic primitives (Ed25519, Secp256k1)
//
// # Response Metadata
//
// All API responses are wrapped in Response[T] which includes both the data
// and metadata from Aptos API headers:
//
//	type Response[T any] struct {
//	    Data     T
//	    Metadata ResponseMetadata
//	}
//
//	type ResponseMetadata struct {
//	    ChainID       uint8
//	    LedgerVersion uint64
//	    Epoch         uint64
//	    BlockHeight   uint64
//	    // ... other fields
//	}
//
// # Error Handling
//
// API errors are returned as *APIError and can be checked using errors.Is:
//
//	_, err := client.GetAccount(ctx, address)
//	if errors.Is(err, aptos.ErrAccountNotFound) {
//	    // Handle missing account
//	}
//
// # Transaction Building
//
// Build, sign, and submit transactions step by step:
//
//	rawTxn, err := client.BuildTransaction(ctx, sender, payload)
//	signedTxn, err := account.SignTransaction(rawTxn)
//	pending, err := client.SubmitTransaction(ctx, signedTxn)
package aptos

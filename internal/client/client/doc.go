// Package client contains the transport layer for talking to the banking
// service.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Login, FetchAccounts, FetchStatement, Transfer.
//  2. A concrete JSON-over-HTTP implementation (see RESTClient) that binds
//     the server address and scheme at construction, tags every request
//     with a correlation ID, and maps low-level failures to sentinel errors.
//  3. The Status code space shared with the service, including the
//     distinguished StatusNoError and StatusNoOp values.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrAuthRejected, ErrCommunication, ErrTrust. A rejected
// session key (ErrAuthRejected) obliges the caller to force a lock before
// re-raising the error.
//
// Concurrency & Contexts
//
// RESTClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package client

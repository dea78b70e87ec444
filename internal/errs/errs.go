// Package errs defines the error types returned to API clients.
//
// Every failure leaves the API as an HTTPError serialized to JSON, so clients
// always see the same shape: a machine code, a human message, the status and
// optional field-level errors.
package errs

// Package service holds the customer operations and the outbound probe.
//
// Handlers pass validated payloads in; services turn them into store calls
// and decide what counts as "not found". They never build HTTP responses.
package service

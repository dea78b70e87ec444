// Package handler is the first layer after the router.
//
// Every customer endpoint goes through the same typed pipeline in base.go:
// bind, validate, call the service, write JSON.
package handler

import "errors"

var errDatabaseNotConfigured = errors.New("database not configured")

// Package sqlerr specifically handles database driver errors.
//
// It parses SQLSTATE codes from the database driver into a small set of
// categories and converts driver errors into API errors (e.g. a missing row
// tagged with its table becomes "Customer not found").
package sqlerr

import (
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Code is a coarse category for a database error.
type Code string

const (
	Other               Code = "other"
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
	InvalidText         Code = "invalid_text_representation"
	UndefinedTable      Code = "undefined_table"
	UndefinedColumn     Code = "undefined_column"
	ConnectionFailure   Code = "connection_failure"
	QueryCanceled       Code = "query_canceled"
)

// MapCode maps a Postgres SQLSTATE onto a Code.
func MapCode(sqlState string) Code {
	switch sqlState {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	case "22P02":
		return InvalidText
	case "42P01":
		return UndefinedTable
	case "42703":
		return UndefinedColumn
	case "57014":
		return QueryCanceled
	}

	// Class 08 is "Connection Exception".
	if len(sqlState) == 5 && sqlState[:2] == "08" {
		return ConnectionFailure
	}

	return Other
}

// Severity mirrors the Postgres message severity.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

func MapSeverity(severity string) Severity {
	switch Severity(severity) {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning,
		SeverityNotice, SeverityDebug, SeverityInfo, SeverityLog:
		return Severity(severity)
	default:
		return SeverityError
	}
}

// Error is a normalized Postgres error.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Severity, e.DatabaseCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// NoRowsError reports that a lookup in Table matched nothing.
//
// It matches pgx.ErrNoRows through errors.Is.
type NoRowsError struct {
	Table string
}

// NoRows returns a NoRowsError for table.
func NoRows(table string) error {
	return &NoRowsError{Table: table}
}

func (e *NoRowsError) Error() string {
	return fmt.Sprintf("table:%s: %s", e.Table, pgx.ErrNoRows.Error())
}

func (e *NoRowsError) Unwrap() error {
	return pgx.ErrNoRows
}

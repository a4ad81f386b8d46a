// Package sqlerr translates database driver errors into API errors.
//
// It parses PostgreSQL SQLSTATE codes from pgx and turns them into
// friendly client errors, e.g. a unique violation becomes a 400 with the
// code "JOB_APPLICATION_ALREADY_EXISTS".
package sqlerr

import "fmt"

// Code is a coarse classification of a database error.
type Code string

const (
	Other               Code = "other"
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
	ExcludeViolation    Code = "exclusion_violation"
	TooManyConnections  Code = "too_many_connections"
	InvalidTextRep      Code = "invalid_text_representation"
)

// Severity mirrors the PostgreSQL severity field.
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

// Error is a driver-independent view of a PostgreSQL error.
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
	return fmt.Sprintf("%s: %s (SQLSTATE %s)", e.Severity, e.Message, e.DatabaseCode)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a SQLSTATE to a Code.
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
	case "23P01":
		return ExcludeViolation
	case "53300":
		return TooManyConnections
	case "22P02":
		return InvalidTextRep
	default:
		return Other
	}
}

// MapSeverity maps the textual severity to a Severity, defaulting to ERROR.
func MapSeverity(severity string) Severity {
	switch Severity(severity) {
	case SeverityFatal, SeverityPanic, SeverityWarning, SeverityNotice,
		SeverityDebug, SeverityInfo, SeverityLog:
		return Severity(severity)
	default:
		return SeverityError
	}
}

// WithTable annotates err with the table it came from so HandleError can
// name the missing entity ("Job Position not found").
func WithTable(table string, err error) error {
	return fmt.Errorf("table:%s: %w", table, err)
}

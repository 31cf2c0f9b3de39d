// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// ErrorClassification is the driver-independent category of a failed
// statement, returned by [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// Unclassified covers every error without a domain meaning.
	Unclassified ErrorClassification = iota

	// UniqueViolation means an INSERT collided with a unique constraint.
	UniqueViolation

	// ForeignKeyViolation means a row referenced a missing parent row.
	ForeignKeyViolation

	// Retryable means the statement may succeed if attempted again, e.g.
	// after a deadlock, a serialization failure or a busy database file.
	Retryable
)

// ErrorClassificator maps driver-specific errors to [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case ForeignKeyViolation:
		return "foreign_key_violation"
	case Retryable:
		return "retryable"
	default:
		return "unclassified"
	}
}

// Package errors provides sentinel errors and error types for the chess
// rules core and its tools. It defines common error conditions and
// structured error types that preserve context while allowing error
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a square name outside a1..h8.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidPosition indicates a board that cannot be played from,
	// e.g. one without exactly one king per side.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrPerftMismatch indicates a node count disagreeing with the reference generator.
	ErrPerftMismatch = errors.New("perft mismatch")
)

// FENError wraps errors with the FEN field that failed to parse.
// It supports unwrapping via errors.Is() and errors.As().
type FENError struct {
	Err   error  // The underlying error
	Field string // FEN field name, e.g. "placement" or "castling"
	Value string // Offending text (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *FENError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Value != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Value))
	}

	context := strings.Join(parts, " ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "FEN error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the FENError wrapper.
func (e *FENError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

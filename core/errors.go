package core

import (
	"errors"
	"fmt"
	"syscall"
)

// ErrorKind identifies one of the fixed, expected, user-facing failure
// categories. Anything outside this set is an unclassified failure and is
// reported with a full trace instead of a clean one-line message.
type ErrorKind string

// Recognized domain error kinds
const (
	// KindPermissionDenied covers filesystem or resource access refused by
	// the OS (EACCES-style failures).
	KindPermissionDenied ErrorKind = "PERMISSION_DENIED"

	// KindIsADirectory covers a path that resolved to a directory where a
	// regular file was required (EISDIR-style failures).
	KindIsADirectory ErrorKind = "IS_A_DIRECTORY"

	// KindParse covers malformed input: profiles, configuration files, and
	// any other text the front-end must parse before handing off to the
	// engine.
	KindParse ErrorKind = "PARSE_ERROR"
)

// DomainError represents an expected, user-facing failure. It carries
// everything the exit resolver needs at the top-level boundary: the kind
// (selects the stderr template), the detail string interpolated into that
// template, and the errno-style status code that becomes the process exit
// code.
//
// DomainErrors must not be handled deeper in the call graph - their exit
// code and message are authoritative only at the process boundary.
type DomainError struct {
	Kind   ErrorKind // Error kind for template selection
	Detail string    // Detail interpolated into the user-facing message
	Code   int       // Errno-style status, becomes the process exit code
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// ErrPermissionDenied returns a DomainError for an access-refused path.
// The carried code is EACCES (13 on Linux).
func ErrPermissionDenied(detail string) *DomainError {
	return &DomainError{
		Kind:   KindPermissionDenied,
		Detail: detail,
		Code:   int(syscall.EACCES),
	}
}

// ErrIsADirectory returns a DomainError for a path that is a directory
// where a regular file was expected. The carried code is EISDIR (21 on
// Linux).
func ErrIsADirectory(detail string) *DomainError {
	return &DomainError{
		Kind:   KindIsADirectory,
		Detail: detail,
		Code:   int(syscall.EISDIR),
	}
}

// ErrParse returns a DomainError for malformed input. The detail is the
// parser's own message and is written to stderr verbatim. Parse errors
// always exit with the generic failure code.
func ErrParse(detail string) *DomainError {
	return &DomainError{
		Kind:   KindParse,
		Detail: detail,
		Code:   ExitCodeError,
	}
}

// IsDomainError reports whether err is (or wraps) a DomainError and
// returns it if so.
func IsDomainError(err error) (*DomainError, bool) {
	var domErr *DomainError
	if errors.As(err, &domErr) {
		return domErr, true
	}
	return nil, false
}

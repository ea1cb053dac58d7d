package main

import (
	"errors"
	"fmt"
)

// =============================================================================
// Extraction Errors
// =============================================================================

// These indicate the site changed its markup or protocol. They are never
// retried.
var (
	ErrMissingHeader       = errors.New("no Set-Cookie header in response")
	ErrSessionCookieAbsent = errors.New("session cookie not found in Set-Cookie")
	ErrElementNotFound     = errors.New("element not found")
	ErrAttributeMissing    = errors.New("attribute missing")
	ErrPatternNotFound     = errors.New("pattern not found")
	ErrInvalidEncoding     = errors.New("invalid literal encoding")
	ErrInvalidCodePoint    = errors.New("invalid code point")
	ErrUnknownLetter       = errors.New("letter missing from letter map")
	ErrUnexpectedResponse  = errors.New("unexpected vote response")
)

// ResultParseError is returned when the election results page is not valid JSON.
type ResultParseError struct {
	Err error
}

func (e *ResultParseError) Error() string {
	return "could not read election result: " + e.Err.Error()
}

func (e *ResultParseError) Unwrap() error {
	return e.Err
}

// UnexpectedResponseError carries the raw vote response for diagnosis.
type UnexpectedResponseError struct {
	Body string
}

func (e *UnexpectedResponseError) Error() string {
	preview := e.Body
	if len(preview) > 500 {
		preview = preview[:500]
	}
	return fmt.Sprintf("%v: %s", ErrUnexpectedResponse, preview)
}

func (e *UnexpectedResponseError) Is(target error) bool {
	return target == ErrUnexpectedResponse
}

// =============================================================================
// Transport Errors
// =============================================================================

// StatusError reports a non-2xx response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Code)
}

// TransportError wraps a failure to complete an HTTP exchange at a given stage.
// Only these are candidates for a transaction replay.
type TransportError struct {
	Stage Stage
	Err   error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Stage, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError reports whether err came from the transport at any stage.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// =============================================================================
// Stage Errors
// =============================================================================

// StageError identifies the group and stage a transaction failed at.
type StageError struct {
	Group string
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("group %s: %s stage: %v", e.Group, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// FailedStage returns the stage recorded in err, or StageStart if none.
func FailedStage(err error) Stage {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return StageStart
}

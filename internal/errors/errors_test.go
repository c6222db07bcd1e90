package errors

import (
	"errors"
	"fmt"
	"testing"
)

// =============================================================================
// Test Error Types and Constructors
// =============================================================================

func TestNotFound(t *testing.T) {
	err := NotFound("record not found")

	if err.Kind != ErrNotFound {
		t.Errorf("expected Kind to be ErrNotFound (%d), got %d", ErrNotFound, err.Kind)
	}
	if err.Message != "record not found" {
		t.Errorf("expected Message to be 'record not found', got '%s'", err.Message)
	}
	if err.Err != nil {
		t.Errorf("expected Err to be nil, got %v", err.Err)
	}
}

func TestNotFoundf(t *testing.T) {
	err := NotFoundf("competitor %d not found", 123)

	if err.Kind != ErrNotFound {
		t.Errorf("expected Kind to be ErrNotFound (%d), got %d", ErrNotFound, err.Kind)
	}
	if err.Message != "competitor 123 not found" {
		t.Errorf("expected Message to be 'competitor 123 not found', got '%s'", err.Message)
	}
	if err.Err != nil {
		t.Errorf("expected Err to be nil, got %v", err.Err)
	}
}

func TestContract(t *testing.T) {
	err := Contract("attempt set has wrong length")

	if err.Kind != ErrContract {
		t.Errorf("expected Kind to be ErrContract (%d), got %d", ErrContract, err.Kind)
	}
	if err.Message != "attempt set has wrong length" {
		t.Errorf("expected Message to be 'attempt set has wrong length', got '%s'", err.Message)
	}
	if err.Err != nil {
		t.Errorf("expected Err to be nil, got %v", err.Err)
	}
}

func TestContractf(t *testing.T) {
	err := Contractf("event %s expects %d attempts, got %d", "333", 5, 3)

	if err.Kind != ErrContract {
		t.Errorf("expected Kind to be ErrContract (%d), got %d", ErrContract, err.Kind)
	}
	expectedMsg := "event 333 expects 5 attempts, got 3"
	if err.Message != expectedMsg {
		t.Errorf("expected Message to be '%s', got '%s'", expectedMsg, err.Message)
	}
	if err.Err != nil {
		t.Errorf("expected Err to be nil, got %v", err.Err)
	}
}

func TestConflict(t *testing.T) {
	err := Conflict("attempt already decided")

	if err.Kind != ErrConflict {
		t.Errorf("expected Kind to be ErrConflict (%d), got %d", ErrConflict, err.Kind)
	}
	if err.Message != "attempt already decided" {
		t.Errorf("expected Message to be 'attempt already decided', got '%s'", err.Message)
	}
	if err.Err != nil {
		t.Errorf("expected Err to be nil, got %v", err.Err)
	}
}

func TestConflictf(t *testing.T) {
	err := Conflictf("submission for event %s already finalized", "fmc")

	if err.Kind != ErrConflict {
		t.Errorf("expected Kind to be ErrConflict (%d), got %d", ErrConflict, err.Kind)
	}
	expectedMsg := "submission for event fmc already finalized"
	if err.Message != expectedMsg {
		t.Errorf("expected Message to be '%s', got '%s'", expectedMsg, err.Message)
	}
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("missing required field")

	if err.Kind != ErrInvalidInput {
		t.Errorf("expected Kind to be ErrInvalidInput (%d), got %d", ErrInvalidInput, err.Kind)
	}
	if err.Message != "missing required field" {
		t.Errorf("expected Message to be 'missing required field', got '%s'", err.Message)
	}
}

func TestInvalidInputf(t *testing.T) {
	err := InvalidInputf("invalid value %q for field %s", "abc", "centis")

	if err.Kind != ErrInvalidInput {
		t.Errorf("expected Kind to be ErrInvalidInput (%d), got %d", ErrInvalidInput, err.Kind)
	}
	expectedMsg := `invalid value "abc" for field centis`
	if err.Message != expectedMsg {
		t.Errorf("expected Message to be '%s', got '%s'", expectedMsg, err.Message)
	}
}

func TestInternal(t *testing.T) {
	underlyingErr := fmt.Errorf("database connection failed")
	err := Internal(underlyingErr)

	if err.Kind != ErrInternal {
		t.Errorf("expected Kind to be ErrInternal (%d), got %d", ErrInternal, err.Kind)
	}
	if err.Message != "internal error" {
		t.Errorf("expected Message to be 'internal error', got '%s'", err.Message)
	}
	if err.Err != underlyingErr {
		t.Errorf("expected Err to be %v, got %v", underlyingErr, err.Err)
	}
}

func TestInternalf(t *testing.T) {
	err := Internalf("failed to generate scrambles: %s", "timeout")

	if err.Kind != ErrInternal {
		t.Errorf("expected Kind to be ErrInternal (%d), got %d", ErrInternal, err.Kind)
	}
	expectedMsg := "failed to generate scrambles: timeout"
	if err.Message != expectedMsg {
		t.Errorf("expected Message to be '%s', got '%s'", expectedMsg, err.Message)
	}
	if err.Err != nil {
		t.Errorf("expected Err to be nil, got %v", err.Err)
	}
}

// =============================================================================
// Test Wrap Function
// =============================================================================

func TestWrap(t *testing.T) {
	underlyingErr := fmt.Errorf("original error")
	err := Wrap(underlyingErr, ErrNotFound, "wrapped context")

	if err.Kind != ErrNotFound {
		t.Errorf("expected Kind to be ErrNotFound (%d), got %d", ErrNotFound, err.Kind)
	}
	if err.Message != "wrapped context" {
		t.Errorf("expected Message to be 'wrapped context', got '%s'", err.Message)
	}
	if err.Err != underlyingErr {
		t.Errorf("expected Err to be %v, got %v", underlyingErr, err.Err)
	}
}

func TestWrapWithDifferentKinds(t *testing.T) {
	testCases := []struct {
		name string
		kind Kind
	}{
		{"ErrInternal", ErrInternal},
		{"ErrNotFound", ErrNotFound},
		{"ErrContract", ErrContract},
		{"ErrConflict", ErrConflict},
		{"ErrInvalidInput", ErrInvalidInput},
	}

	underlyingErr := fmt.Errorf("base error")

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Wrap(underlyingErr, tc.kind, "test message")
			if err.Kind != tc.kind {
				t.Errorf("expected Kind to be %d, got %d", tc.kind, err.Kind)
			}
		})
	}
}

// =============================================================================
// Test Error Interface
// =============================================================================

func TestErrorMethod_WithoutWrappedError(t *testing.T) {
	err := &Error{
		Kind:    ErrNotFound,
		Message: "competitor not found",
		Err:     nil,
	}

	expected := "competitor not found"
	if err.Error() != expected {
		t.Errorf("expected Error() to return '%s', got '%s'", expected, err.Error())
	}
}

func TestErrorMethod_WithWrappedError(t *testing.T) {
	underlyingErr := fmt.Errorf("database query failed")
	err := &Error{
		Kind:    ErrInternal,
		Message: "failed to load competition",
		Err:     underlyingErr,
	}

	expected := "failed to load competition: database query failed"
	if err.Error() != expected {
		t.Errorf("expected Error() to return '%s', got '%s'", expected, err.Error())
	}
}

func TestUnwrap(t *testing.T) {
	underlyingErr := fmt.Errorf("original error")
	err := &Error{
		Kind:    ErrInternal,
		Message: "wrapper",
		Err:     underlyingErr,
	}

	unwrapped := err.Unwrap()
	if unwrapped != underlyingErr {
		t.Errorf("expected Unwrap() to return %v, got %v", underlyingErr, unwrapped)
	}
}

func TestUnwrap_NilError(t *testing.T) {
	err := &Error{
		Kind:    ErrNotFound,
		Message: "not found",
		Err:     nil,
	}

	if err.Unwrap() != nil {
		t.Errorf("expected Unwrap() to return nil, got %v", err.Unwrap())
	}
}

// =============================================================================
// Test Error Type Checking with errors.As / errors.Is
// =============================================================================

func TestErrorsAs_DirectError(t *testing.T) {
	err := NotFound("competitor not found")

	var appErr *Error
	if !errors.As(err, &appErr) {
		t.Error("expected errors.As to return true for *Error")
	}
	if appErr.Kind != ErrNotFound {
		t.Errorf("expected Kind to be ErrNotFound, got %d", appErr.Kind)
	}
}

func TestErrorsAs_WrappedError(t *testing.T) {
	innerErr := fmt.Errorf("db error")
	appErr := Wrap(innerErr, ErrInternal, "service error")
	wrappedErr := fmt.Errorf("handler error: %w", appErr)

	var extractedErr *Error
	if !errors.As(wrappedErr, &extractedErr) {
		t.Error("expected errors.As to return true for wrapped *Error")
	}
	if extractedErr.Kind != ErrInternal {
		t.Errorf("expected Kind to be ErrInternal, got %d", extractedErr.Kind)
	}
}

func TestErrorsAs_NonAppError(t *testing.T) {
	err := fmt.Errorf("regular error")

	var appErr *Error
	if errors.As(err, &appErr) {
		t.Error("expected errors.As to return false for non-*Error")
	}
}

func TestErrorsIs_WithWrappedStandardError(t *testing.T) {
	sentinelErr := fmt.Errorf("sentinel error")
	appErr := Wrap(sentinelErr, ErrInternal, "application error")

	if !errors.Is(appErr, sentinelErr) {
		t.Error("expected errors.Is to find sentinel error in chain")
	}
}

// =============================================================================
// Test IsKind
// =============================================================================

func TestIsKind(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		kind     Kind
		expected bool
	}{
		{"matching contract", Contract("bad shape"), ErrContract, true},
		{"matching not found", NotFound("gone"), ErrNotFound, true},
		{"kind mismatch", Conflict("busy"), ErrNotFound, false},
		{"plain error", fmt.Errorf("plain"), ErrInternal, false},
		{"nil error", nil, ErrInternal, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsKind(tc.err, tc.kind); got != tc.expected {
				t.Errorf("IsKind() = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestKindConstants(t *testing.T) {
	// Verify the Kind constants have expected iota values
	if ErrInternal != 0 {
		t.Errorf("expected ErrInternal to be 0, got %d", ErrInternal)
	}
	if ErrNotFound != 1 {
		t.Errorf("expected ErrNotFound to be 1, got %d", ErrNotFound)
	}
	if ErrContract != 2 {
		t.Errorf("expected ErrContract to be 2, got %d", ErrContract)
	}
	if ErrConflict != 3 {
		t.Errorf("expected ErrConflict to be 3, got %d", ErrConflict)
	}
	if ErrInvalidInput != 4 {
		t.Errorf("expected ErrInvalidInput to be 4, got %d", ErrInvalidInput)
	}
}

// =============================================================================
// Table-driven test for all constructor functions
// =============================================================================

func TestAllConstructors(t *testing.T) {
	underlyingErr := fmt.Errorf("underlying")

	testCases := []struct {
		name         string
		constructor  func() *Error
		expectedKind Kind
		checkMessage string
		hasErr       bool
	}{
		{
			name:         "NotFound",
			constructor:  func() *Error { return NotFound("msg") },
			expectedKind: ErrNotFound,
			checkMessage: "msg",
			hasErr:       false,
		},
		{
			name:         "NotFoundf",
			constructor:  func() *Error { return NotFoundf("msg %d", 1) },
			expectedKind: ErrNotFound,
			checkMessage: "msg 1",
			hasErr:       false,
		},
		{
			name:         "Contract",
			constructor:  func() *Error { return Contract("msg") },
			expectedKind: ErrContract,
			checkMessage: "msg",
			hasErr:       false,
		},
		{
			name:         "Contractf",
			constructor:  func() *Error { return Contractf("msg %d", 1) },
			expectedKind: ErrContract,
			checkMessage: "msg 1",
			hasErr:       false,
		},
		{
			name:         "Conflict",
			constructor:  func() *Error { return Conflict("msg") },
			expectedKind: ErrConflict,
			checkMessage: "msg",
			hasErr:       false,
		},
		{
			name:         "InvalidInput",
			constructor:  func() *Error { return InvalidInput("msg") },
			expectedKind: ErrInvalidInput,
			checkMessage: "msg",
			hasErr:       false,
		},
		{
			name:         "Internal",
			constructor:  func() *Error { return Internal(underlyingErr) },
			expectedKind: ErrInternal,
			checkMessage: "internal error",
			hasErr:       true,
		},
		{
			name:         "Internalf",
			constructor:  func() *Error { return Internalf("msg %d", 1) },
			expectedKind: ErrInternal,
			checkMessage: "msg 1",
			hasErr:       false,
		},
		{
			name:         "Wrap",
			constructor:  func() *Error { return Wrap(underlyingErr, ErrConflict, "msg") },
			expectedKind: ErrConflict,
			checkMessage: "msg",
			hasErr:       true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.constructor()

			if err.Kind != tc.expectedKind {
				t.Errorf("expected Kind %d, got %d", tc.expectedKind, err.Kind)
			}
			if err.Message != tc.checkMessage {
				t.Errorf("expected Message '%s', got '%s'", tc.checkMessage, err.Message)
			}
			if tc.hasErr && err.Err == nil {
				t.Error("expected Err to be non-nil")
			}
			if !tc.hasErr && err.Err != nil {
				t.Errorf("expected Err to be nil, got %v", err.Err)
			}
		})
	}
}

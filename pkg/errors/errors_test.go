package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidParameter, "length must be positive, got %d", 0)

	if err.Code != ErrCodeInvalidParameter {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidParameter)
	}

	if err.Message != "length must be positive, got 0" {
		t.Errorf("Message = %v, want %v", err.Message, "length must be positive, got 0")
	}

	expected := "INVALID_PARAMETER: length must be positive, got 0"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("bare quote in non-quoted field")
	err := Wrap(ErrCodeMalformedData, cause, "read csv")

	if err.Code != ErrCodeMalformedData {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMalformedData)
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeInvalidParameter, "test"), ErrCodeInvalidParameter, true},
		{"non-matching code", New(ErrCodeInvalidParameter, "test"), ErrCodeMalformedData, false},
		{"outer code wins", Wrap(ErrCodeMalformedData, New(ErrCodeInvalidParameter, "inner"), "outer"), ErrCodeMalformedData, true},
		{"non-Error type", errors.New("plain error"), ErrCodeInvalidParameter, false},
		{"nil error", nil, ErrCodeInvalidParameter, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestKindHelpers(t *testing.T) {
	if !IsInvalidParameter(New(ErrCodeInvalidParameter, "x")) {
		t.Error("IsInvalidParameter should match INVALID_PARAMETER")
	}
	if IsInvalidParameter(New(ErrCodeMalformedData, "x")) {
		t.Error("IsInvalidParameter should not match MALFORMED_DATA")
	}
	if !IsMalformedData(New(ErrCodeMalformedData, "x")) {
		t.Error("IsMalformedData should match MALFORMED_DATA")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeInvalidFormat, "test"), ErrCodeInvalidFormat},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeInvalidParameter, "friendly message"), "friendly message"},
		{"wrapped", Wrap(ErrCodeMalformedData, errors.New("EOF"), "line 3"), "line 3: EOF"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

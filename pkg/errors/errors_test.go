package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	err := New(ErrCodeInvalidStrategy, "unknown strategy: %s", "greedy")
	want := "INVALID_STRATEGY: unknown strategy: greedy"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestError_WithCause(t *testing.T) {
	cause := fmt.Errorf("open failed")
	err := Wrap(ErrCodeFileNotFound, cause, "load graph %s", "g.toml")
	want := "FILE_NOT_FOUND: load graph g.toml: open failed"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeRunNotFound, "run missing")
	if !Is(err, ErrCodeRunNotFound) {
		t.Error("Is(err, ErrCodeRunNotFound) = false, want true")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is(err, ErrCodeInternal) = true, want false")
	}
	if Is(fmt.Errorf("plain"), ErrCodeInternal) {
		t.Error("Is(plain, ErrCodeInternal) = true, want false")
	}
}

func TestIs_Wrapped(t *testing.T) {
	inner := New(ErrCodeNodeNotFound, "no such node")
	outer := fmt.Errorf("search: %w", inner)
	if !Is(outer, ErrCodeNodeNotFound) {
		t.Error("Is(wrapped, ErrCodeNodeNotFound) = false, want true")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeStorage, "boom")); got != ErrCodeStorage {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeStorage)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidInput, "bad start node")); got != "bad start node" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(fmt.Errorf("plain failure")); got != "plain failure" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

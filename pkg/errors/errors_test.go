package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad value: %d", 42)
	if err.Error() != "INVALID_INPUT: bad value: 42" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !Is(err, ErrCodeInvalidInput) {
		t.Error("Is should match the code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is must not match other codes")
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodeNetwork, cause, "downloading font")

	if err.Error() != "NETWORK_ERROR: downloading font: connection refused" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause lost")
	}
	if !Is(err, ErrCodeNetwork) {
		t.Error("Is should match the code")
	}
}

func TestIsThroughWrappedChain(t *testing.T) {
	err := fmt.Errorf("layout: %w", New(ErrCodeEmptyPage, "no tracks"))
	if !Is(err, ErrCodeEmptyPage) {
		t.Error("Is should unwrap fmt.Errorf chains")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeExternal, "typst failed")); got != ErrCodeExternal {
		t.Errorf("GetCode = %q", got)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidMode, "invalid initialization mode: vacuum")
	if got := UserMessage(err); got != "invalid initialization mode: vacuum" {
		t.Errorf("UserMessage = %q", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage on plain error = %q", got)
	}

	wrapped := fmt.Errorf("compile: %w", New(ErrCodeExternal, "typst exited 1"))
	if got := UserMessage(wrapped); got != "typst exited 1" {
		t.Errorf("UserMessage on wrapped error = %q", got)
	}
}

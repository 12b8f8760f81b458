package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidSlide, "slide %d has no type", 3)

	if err.Code != ErrCodeInvalidSlide {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidSlide)
	}
	if err.Message != "slide 3 has no type" {
		t.Errorf("Message = %q", err.Message)
	}

	want := "INVALID_SLIDE: slide 3 has no type"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(ErrCodeNetwork, cause, "fetch image")

	if err.Code != ErrCodeNetwork {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeNetwork)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	want := "NETWORK_ERROR: fetch image: connection refused"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", New(ErrCodeInvalidTheme, "bad theme"), ErrCodeInvalidTheme, true},
		{"different code", New(ErrCodeInvalidTheme, "bad theme"), ErrCodeThemeNotFound, false},
		{"deeply wrapped", fmt.Errorf("outer: %w", Wrap(ErrCodeProjectNotFound, errors.New("gone"), "lookup")), ErrCodeProjectNotFound, true},
		{"plain error", errors.New("plain"), ErrCodeInternal, false},
		{"nil error", nil, ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeTimeout, "deadline")); got != ErrCodeTimeout {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeTimeout)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
	if got := GetCode(fmt.Errorf("outer: %w", New(ErrCodeRateLimited, "slow down"))); got != ErrCodeRateLimited {
		t.Errorf("GetCode(wrapped) = %v, want %v", got, ErrCodeRateLimited)
	}
}

func TestUserMessage(t *testing.T) {
	err := Wrap(ErrCodeGenerationFailed, errors.New("token limit"), "could not generate deck")
	if got := UserMessage(err); got != "could not generate deck" {
		t.Errorf("UserMessage() = %q", got)
	}

	plain := errors.New("something broke")
	if got := UserMessage(plain); got != "something broke" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

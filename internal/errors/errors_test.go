package errors

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tangzhangming/tracy/internal/location"
)

func TestNewInternal(t *testing.T) {
	pos := location.At("a.bt", 3, 7, 2)
	err := NewInternal(B0001, pos, "bogus")

	if err.Code != B0001 || !err.IsBug() {
		t.Errorf("unexpected error %+v", err)
	}
	if !strings.Contains(err.Message, "bogus") {
		t.Errorf("message should mention provider, got %q", err.Message)
	}
	if got := err.Error(); !strings.HasPrefix(got, "a.bt:3:7: internal error [B0001]: ") {
		t.Errorf("unexpected Error() %q", got)
	}

	unknown := NewInternal("B9999", location.Span{})
	if unknown.Error() != "internal error [B9999]: B9999" {
		t.Errorf("unexpected Error() %q", unknown.Error())
	}
}

func TestIsInternalUnwraps(t *testing.T) {
	inner := NewInternal(B0002, location.Span{}, "program")
	wrapped := fmt.Errorf("expand: %w", inner)

	if !IsInternal(wrapped) {
		t.Errorf("wrapped internal error not detected")
	}
	if ie, ok := AsInternal(wrapped); !ok || ie != inner {
		t.Errorf("AsInternal should return the original error")
	}
	if IsInternal(fmt.Errorf("plain")) {
		t.Errorf("plain error reported as internal")
	}
	if _, ok := AsInternal(&CompileError{Code: C0002}); ok {
		t.Errorf("compile error reported as internal")
	}
}

func TestCompileError(t *testing.T) {
	tests := []struct {
		err      *CompileError
		expected string
	}{
		{&CompileError{Level: LevelWarning, Message: "old", Pos: location.At("a.bt", 1, 2, 3)}, "a.bt:1:2: warning: old"},
		{&CompileError{Level: LevelError, Message: "bad"}, "error: bad"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
	}
}

func TestErrorInfo(t *testing.T) {
	tests := []struct {
		code  string
		level Level
		bug   bool
	}{
		{B0001, LevelBug, true},
		{B0002, LevelBug, true},
		{E0001, LevelError, false},
		{W0001, LevelWarning, false},
		{C0001, LevelError, false},
		{C0002, LevelError, false},
	}

	for _, tt := range tests {
		info, ok := GetErrorInfo(tt.code)
		if !ok || info.Level != tt.level || info.MessageID == "" {
			t.Errorf("%s: unexpected info %+v", tt.code, info)
		}
		if IsBugCode(tt.code) != tt.bug {
			t.Errorf("%s: expected IsBugCode=%v", tt.code, tt.bug)
		}
	}

	if _, ok := GetErrorInfo("Z0000"); ok {
		t.Errorf("unknown code should not have info")
	}
}

func TestNewCompile(t *testing.T) {
	pos := location.At("cmd.bt", 1, 1, 6)
	err := NewCompile(E0001, pos, "kprboe")

	if err.Code != E0001 || err.Level != LevelError {
		t.Fatalf("unexpected error %+v", err)
	}
	if IsInternal(err) {
		t.Errorf("user errors must not be reported as internal")
	}
	if got := err.Error(); got != "cmd.bt:1:1: error: unknown probe type 'kprboe'" {
		t.Errorf("unexpected message %q", got)
	}

	if got := NewCompile("Z0000", location.Span{}).Error(); got != "error: Z0000" {
		t.Errorf("unknown code should fall back to the code, got %q", got)
	}
}

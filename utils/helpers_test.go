package utils

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateCode(t *testing.T) {
	code, err := GenerateCode(8)
	if err != nil {
		t.Fatalf("GenerateCode: %v", err)
	}
	if len(code) != 8 {
		t.Errorf("len: got %d, want 8", len(code))
	}
	for _, r := range code {
		if !strings.ContainsRune(codeCharset, r) {
			t.Errorf("unexpected character %q in %s", r, code)
		}
	}
	if _, err := GenerateCode(0); err == nil {
		t.Error("GenerateCode(0): expected error")
	}
}

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"john@example.com", "j**n@e******.com"},
		{"ab@hotel.io", "a*@h****.io"},
		{"not-an-email", "not-an-email"},
	}
	for _, tt := range tests {
		if got := MaskEmail(tt.in); got != tt.want {
			t.Errorf("MaskEmail(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEnvDuration(t *testing.T) {
	t.Setenv("TEST_TTL", "90")
	if got := EnvDuration("TEST_TTL", time.Hour); got != 90*time.Second {
		t.Errorf("seconds: got %v", got)
	}
	t.Setenv("TEST_TTL", "2h")
	if got := EnvDuration("TEST_TTL", time.Hour); got != 2*time.Hour {
		t.Errorf("duration: got %v", got)
	}
	t.Setenv("TEST_TTL", "soon")
	if got := EnvDuration("TEST_TTL", time.Hour); got != time.Hour {
		t.Errorf("fallback: got %v", got)
	}
}

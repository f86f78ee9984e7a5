package utils

import (
	"strings"
	"testing"
)

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{
			name:     "empty key",
			key:      "",
			expected: "****",
		},
		{
			name:     "short key (4 chars)",
			key:      "sk-1",
			expected: "****",
		},
		{
			name:     "boundary key (8 chars)",
			key:      "sk-12345",
			expected: "****",
		},
		{
			name:     "normal key",
			key:      "sk-abcdefghij1234",
			expected: "sk-a****1234",
		},
		{
			name:     "long gateway key",
			key:      "sk-iotex-abcdefghijklmnopqrstuvwxyz",
			expected: "sk-i****wxyz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaskAPIKey(tt.key)
			if got != tt.expected {
				t.Errorf("MaskAPIKey(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestMaskAPIKeyHidesMiddle(t *testing.T) {
	key := "sk-verysecretmiddlepart123"
	masked := MaskAPIKey(key)
	if strings.Contains(masked, "secretmiddle") {
		t.Errorf("masked key %q still exposes the middle of the credential", masked)
	}
	if !strings.HasPrefix(masked, "sk-v") || !strings.HasSuffix(masked, "t123") {
		t.Errorf("masked key %q should keep the first and last four characters", masked)
	}
}

func TestTitleWords(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"", ""},
		{"mistral", "Mistral"},
		{"zai org", "Zai Org"},
		{"BLACK forest LABS", "Black Forest Labs"},
		{"  spaced   out  ", "Spaced Out"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := TitleWords(tt.in); got != tt.expected {
				t.Errorf("TitleWords(%q) = %q, want %q", tt.in, got, tt.expected)
			}
		})
	}
}

package alias

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		id       string
		expected string
	}{
		{"gemini-2.5-flash-lite", "gemini-2-5-flash-lite"},
		{"gemini-2.5-flash", "gemini-2-5-flash"},
		{"gemini-2.5-pro", "gemini-2-5-pro"},
		{"deepseek-ai/DeepSeek-V3.1", "deepseek-v3-1"},
		{"Qwen/Qwen2.5-72B-Instruct", "qwen2-5-72b"},
		{"meta-llama/Meta-Llama-3.1-405B-Instruct-FP8", "meta-llama-3-1-405b"},
		{"moonshotai/Kimi-K2-Instruct", "kimi-k2"},
		{"openai/gpt-oss-120b", "gpt-oss-120b"},
		{"whisper-1", "whisper-1"},
		{"whisper-large-v3-turbo", "whisper"},
		{"whisper-large-v3", "whisper-large-v3"},
		// Revision suffixes with a leading zero are dropped, plain versions kept.
		{"gemini-1.5-pro-002", "gemini-1-5-pro"},
		{"llama-3.3-70b", "llama-3-3-70b"},
		{"llama-3.3-70b-fp16", "llama-3-3-70b"},
		// Namespace handling and separator cleanup.
		{"a//b", "b"},
		{"UPPER_case.id", "upper-case-id"},
		{"---x---", "x"},
		// Everything from "instruct" on is dropped, wherever it starts.
		{"Instructor", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := Derive(tt.id); got != tt.expected {
				t.Errorf("Derive(%q) = %q, want %q", tt.id, got, tt.expected)
			}
		})
	}
}

func TestDeriveProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("deterministic", prop.ForAll(
		func(id string) bool {
			return Derive(id) == Derive(id)
		},
		gen.AnyString(),
	))

	properties.Property("only lowercase letters, digits and inner hyphens", prop.ForAll(
		func(id string) bool {
			out := Derive(id)
			if out == "" {
				return true
			}
			if strings.HasPrefix(out, "-") || strings.HasSuffix(out, "-") {
				return false
			}
			for _, r := range out {
				switch {
				case r >= 'a' && r <= 'z':
				case r >= '0' && r <= '9':
				case r == '-':
				default:
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.Property("namespace never survives", prop.ForAll(
		func(ns, name string) bool {
			return Derive(ns+"/"+name) == Derive(name)
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

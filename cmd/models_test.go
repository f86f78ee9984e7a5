package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"clawmgr/internal/catalog"
)

func TestModelsCmdDefinition(t *testing.T) {
	if modelsCmd.Use != "models" {
		t.Errorf("modelsCmd.Use = %q", modelsCmd.Use)
	}
	if modelsCmd.RunE == nil {
		t.Error("modelsCmd.RunE should not be nil")
	}
	if modelsCmd.Flags().Lookup("json") == nil {
		t.Error("models should define the --json flag")
	}
}

func TestPrintCatalog(t *testing.T) {
	var buf bytes.Buffer
	printCatalog(&buf, "Chat models", catalog.LLMs())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != len(catalog.LLMs())+1 {
		t.Fatalf("got %d lines, want title plus one per model", len(lines))
	}
	if !strings.Contains(lines[0], "Chat models") {
		t.Errorf("first line = %q, want the title", lines[0])
	}
	if !strings.HasPrefix(lines[1], "* ") {
		t.Errorf("default row = %q, want a leading * marker", lines[1])
	}
	for i, line := range lines[2:] {
		if strings.HasPrefix(line, "*") {
			t.Errorf("row %d = %q, only the first model is marked", i+2, line)
		}
	}
	if !strings.Contains(buf.String(), "gemini-2.5-flash-lite") {
		t.Error("output should list the default chat model")
	}
}

func TestPrintCatalogJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printCatalogJSON(&buf); err != nil {
		t.Fatalf("printCatalogJSON: %v", err)
	}

	var out struct {
		Chat  []catalog.Model `json:"chat"`
		Audio []catalog.Model `json:"audio"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(out.Chat) != len(catalog.LLMs()) {
		t.Fatalf("chat entries = %d, want %d", len(out.Chat), len(catalog.LLMs()))
	}
	if len(out.Audio) != len(catalog.AudioModels()) {
		t.Errorf("audio entries = %d, want %d", len(out.Audio), len(catalog.AudioModels()))
	}
	if out.Chat[0].ID != "gemini-2.5-flash-lite" {
		t.Errorf("first chat entry = %q, want the recommended default", out.Chat[0].ID)
	}
}

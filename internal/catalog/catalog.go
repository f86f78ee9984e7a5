// Package catalog defines the model lists offered through the IoTeX AI Gateway.
//
// The lists are fixed at build time and ordered: the first entry of each list
// is the recommended default and menu numbering starts at 1.
package catalog

import (
	"fmt"
	"strings"

	"clawmgr/internal/utils"
)

// Model describes one selectable gateway model.
type Model struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Provider    string `json:"provider"`
	PriceNote   string `json:"priceNote"`

	// Token prices are USD per 1M tokens. RequestPrice is USD per request and
	// only set for audio models, which the gateway bills per call.
	InputPrice   float64 `json:"inputPrice,omitempty"`
	OutputPrice  float64 `json:"outputPrice,omitempty"`
	RequestPrice float64 `json:"requestPrice,omitempty"`

	ContextWindow int `json:"contextWindow,omitempty"`
	MaxTokens     int `json:"maxTokens,omitempty"`
}

// LLMs returns the chat-model catalog, best default first.
func LLMs() []Model {
	return []Model{
		llm("gemini-2.5-flash-lite", "Gemini 2.5 Flash Lite", 0.10, 0.40, 1048576, 65536),
		llm("gemini-2.5-flash", "Gemini 2.5 Flash", 0.30, 2.50, 1048576, 65536),
		llm("gemini-2.5-pro", "Gemini 2.5 Pro", 1.25, 10.00, 1048576, 65536),
		llm("deepseek-ai/DeepSeek-V3.1", "DeepSeek V3.1", 0.27, 1.10, 131072, 8192),
		llm("Qwen/Qwen2.5-72B-Instruct", "Qwen 2.5 72B", 0.59, 0.79, 131072, 8192),
		llm("meta-llama/Meta-Llama-3.1-405B-Instruct-FP8", "Llama 3.1 405B", 0.80, 0.80, 131072, 8192),
		llm("moonshotai/Kimi-K2-Instruct", "Kimi K2", 0.55, 2.21, 131072, 16384),
		llm("openai/gpt-oss-120b", "GPT-OSS 120B", 0.10, 0.49, 131072, 32768),
	}
}

// AudioModels returns the transcription-model catalog, best default first.
func AudioModels() []Model {
	return []Model{
		audio("whisper-1", "Whisper v2", 0.006),
		audio("whisper-large-v3-turbo", "Whisper Large v3 Turbo", 0.002),
		audio("whisper-large-v3", "Whisper Large v3", 0.004),
	}
}

// Find returns the option with the given id.
func Find(options []Model, id string) (Model, bool) {
	for _, m := range options {
		if m.ID == id {
			return m, true
		}
	}
	return Model{}, false
}

func llm(id, name string, in, out float64, ctx, max int) Model {
	return Model{
		ID:            id,
		DisplayName:   name,
		Provider:      DetectProvider(id),
		PriceNote:     tokenPriceNote(in, out),
		InputPrice:    in,
		OutputPrice:   out,
		ContextWindow: ctx,
		MaxTokens:     max,
	}
}

func audio(id, name string, perRequest float64) Model {
	return Model{
		ID:           id,
		DisplayName:  name,
		Provider:     DetectProvider(id),
		PriceNote:    requestPriceNote(perRequest),
		RequestPrice: perRequest,
	}
}

// providerPrefixes maps model id prefixes to the provider names shown in the
// gateway's model table. Order matters: the first matching prefix wins.
var providerPrefixes = []struct {
	prefix   string
	provider string
}{
	{"gemini", "Google"},
	{"google/", "Google"},
	{"deepseek-ai/", "DeepSeek"},
	{"meta-llama/", "Meta"},
	{"Qwen/", "Qwen"},
	{"mistralai/", "Mistral"},
	{"moonshotai/", "Moonshot"},
	{"openai/", "OpenAI"},
	{"gpt-", "OpenAI"},
	{"black-forest-labs/", "Black Forest Labs"},
	{"x-ai/", "xAI"},
	{"openrouter/", "OpenRouter"},
	{"zai-org/", "Zhipu AI"},
	{"whisper-", "OpenAI"},
}

// DetectProvider maps a model id to a human-readable provider name. Unknown
// ids fall back to a title-cased form of their namespace segment.
func DetectProvider(id string) string {
	for _, p := range providerPrefixes {
		if strings.HasPrefix(id, p.prefix) {
			return p.provider
		}
	}
	owner := id
	if i := strings.IndexByte(id, '/'); i > 0 {
		owner = id[:i]
	}
	return utils.TitleWords(strings.ReplaceAll(owner, "-", " "))
}

// formatPrice renders a USD amount the way the gateway's pricing table does:
// zero is free, sub-cent amounts keep four decimals, everything else two.
func formatPrice(v float64) string {
	if v == 0 {
		return "Free"
	}
	if v < 0.01 {
		return fmt.Sprintf("$%.4f", v)
	}
	return fmt.Sprintf("$%.2f", v)
}

func tokenPriceNote(in, out float64) string {
	return fmt.Sprintf("%s in / %s out per 1M", formatPrice(in), formatPrice(out))
}

func requestPriceNote(v float64) string {
	if v == 0 {
		return "Free"
	}
	return fmt.Sprintf("$%g/req", v)
}

// Package patch applies the iotex provider registration to an OpenClaw
// configuration document.
//
// The document is an arbitrary JSON object owned by OpenClaw. Only five
// regions are ever touched; everything else passes through byte-for-byte,
// which is why edits go through sjson on the raw text instead of decoding
// the whole tree into structs.
package patch

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"clawmgr/internal/catalog"
	"clawmgr/internal/errs"
)

// Gateway identity. The provider name doubles as the key under
// models.providers and the prefix of model references; the profile name is
// the key under auth.profiles.
const (
	ProviderName   = "iotex"
	ProfileName    = "iotex:default"
	GatewayBaseURL = "https://gateway.iotex.ai/v1"

	apiKind = "openai-completions"
)

// Input carries one run's merge parameters.
type Input struct {
	APIKey       string
	LLMModelID   string
	LLMAlias     string
	AudioModelID string
	SetDefault   bool
}

type providerConfig struct {
	BaseURL string          `json:"baseUrl"`
	APIKey  string          `json:"apiKey"`
	API     string          `json:"api"`
	Models  []providerModel `json:"models"`
}

type providerModel struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Input         []string     `json:"input"`
	Cost          providerCost `json:"cost"`
	ContextWindow int          `json:"contextWindow,omitempty"`
	MaxTokens     int          `json:"maxTokens,omitempty"`
}

type providerCost struct {
	Input      float64 `json:"input"`
	Output     float64 `json:"output"`
	CacheRead  float64 `json:"cacheRead"`
	CacheWrite float64 `json:"cacheWrite"`
}

type aliasEntry struct {
	Alias string `json:"alias"`
}

type authProfile struct {
	Provider string `json:"provider"`
	Mode     string `json:"mode"`
}

type audioEntry struct {
	BaseURL string `json:"baseUrl"`
	Profile string `json:"profile"`
	Model   string `json:"model"`
}

// Apply merges the provider registration into doc and returns the updated
// document. Five regions are written:
//
//   - models.providers.iotex: replaced wholesale with the gateway descriptor
//   - agents.defaults.models["iotex/<llm>"]: alias entry set or overwritten
//   - agents.defaults.model.primary: set only when in.SetDefault, never cleared
//   - auth.profiles["iotex:default"]: replaced wholesale
//   - tools.media.audio: enabled forced true, our entry in the models list
//     replaced in place when one matches the gateway's identity, else appended
//
// Sibling keys next to every region survive untouched. A doc that is not a
// JSON object fails with a ParseError before anything is merged.
func Apply(doc string, in Input) (string, error) {
	if !gjson.Valid(doc) {
		return "", &errs.ParseError{Err: errors.New("not valid JSON")}
	}
	if !gjson.Parse(doc).IsObject() {
		return "", &errs.ParseError{Err: errors.New("not a JSON object")}
	}

	out, err := setProvider(doc, in)
	if err == nil {
		out, err = setAlias(out, in)
	}
	if err == nil && in.SetDefault {
		out, err = sjson.Set(out, "agents.defaults.model.primary", ProviderName+"/"+in.LLMModelID)
	}
	if err == nil {
		out, err = setAuthProfile(out)
	}
	if err == nil {
		out, err = setAudio(out, in)
	}
	if err != nil {
		return "", err
	}

	if err := verifyUntouched(doc, out); err != nil {
		return "", fmt.Errorf("patch verification: %w", err)
	}
	return out, nil
}

func setProvider(doc string, in Input) (string, error) {
	raw, err := json.Marshal(providerConfig{
		BaseURL: GatewayBaseURL,
		APIKey:  in.APIKey,
		API:     apiKind,
		Models:  providerModels(in.LLMModelID),
	})
	if err != nil {
		return "", fmt.Errorf("encode provider: %w", err)
	}
	out, err := sjson.SetRaw(doc, "models.providers."+EscapeKey(ProviderName), string(raw))
	if err != nil {
		return "", fmt.Errorf("set provider: %w", err)
	}
	return out, nil
}

func setAlias(doc string, in Input) (string, error) {
	raw, err := json.Marshal(aliasEntry{Alias: in.LLMAlias})
	if err != nil {
		return "", fmt.Errorf("encode alias: %w", err)
	}
	path := "agents.defaults.models." + EscapeKey(ProviderName+"/"+in.LLMModelID)
	out, err := sjson.SetRaw(doc, path, string(raw))
	if err != nil {
		return "", fmt.Errorf("set alias: %w", err)
	}
	return out, nil
}

func setAuthProfile(doc string) (string, error) {
	raw, err := json.Marshal(authProfile{Provider: ProviderName, Mode: "api_key"})
	if err != nil {
		return "", fmt.Errorf("encode auth profile: %w", err)
	}
	out, err := sjson.SetRaw(doc, "auth.profiles."+EscapeKey(ProfileName), string(raw))
	if err != nil {
		return "", fmt.Errorf("set auth profile: %w", err)
	}
	return out, nil
}

// setAudio forces transcription on and registers the chosen audio model.
// The entry for this gateway is recognized by base URL or profile, so a run
// replaces what the previous run added and the list never accumulates
// duplicates. Entries pointing at other services are left alone.
func setAudio(doc string, in Input) (string, error) {
	out, err := sjson.Set(doc, "tools.media.audio.enabled", true)
	if err != nil {
		return "", fmt.Errorf("enable audio: %w", err)
	}

	raw, err := json.Marshal(audioEntry{
		BaseURL: GatewayBaseURL,
		Profile: ProfileName,
		Model:   in.AudioModelID,
	})
	if err != nil {
		return "", fmt.Errorf("encode audio entry: %w", err)
	}

	const listPath = "tools.media.audio.models"
	list := gjson.Get(out, listPath)
	if !list.IsArray() {
		out, err = sjson.SetRaw(out, listPath, "["+string(raw)+"]")
		if err != nil {
			return "", fmt.Errorf("set audio models: %w", err)
		}
		return out, nil
	}

	target := listPath + ".-1"
	for i, el := range list.Array() {
		if el.Get("baseUrl").String() == GatewayBaseURL || el.Get("profile").String() == ProfileName {
			target = fmt.Sprintf("%s.%d", listPath, i)
			break
		}
	}
	out, err = sjson.SetRaw(out, target, string(raw))
	if err != nil {
		return "", fmt.Errorf("set audio entry: %w", err)
	}
	return out, nil
}

// providerModels lists the gateway catalog, plus the chosen model when the
// user typed an id the catalog does not know. The gateway accepts ids beyond
// the published table, so unknown ids pass through instead of failing.
func providerModels(llmID string) []providerModel {
	opts := catalog.LLMs()
	models := make([]providerModel, 0, len(opts)+1)
	known := false
	for _, o := range opts {
		if o.ID == llmID {
			known = true
		}
		models = append(models, providerModel{
			ID:            o.ID,
			Name:          o.DisplayName,
			Input:         []string{"text"},
			Cost:          providerCost{Input: o.InputPrice, Output: o.OutputPrice},
			ContextWindow: o.ContextWindow,
			MaxTokens:     o.MaxTokens,
		})
	}
	if !known && llmID != "" {
		models = append(models, providerModel{
			ID:    llmID,
			Name:  llmID,
			Input: []string{"text"},
		})
	}
	return models
}

// patchedRoots are the top-level keys Apply may legitimately change.
var patchedRoots = map[string]bool{
	"models": true,
	"agents": true,
	"auth":   true,
	"tools":  true,
}

// verifyUntouched re-parses both documents and confirms every top-level key
// outside the patched regions survived the merge unchanged. sjson edits are
// surgical, but a verification failure here turns a silent config wipe into
// a loud error before anything hits disk.
func verifyUntouched(original, updated string) error {
	var before, after map[string]any
	if err := json.Unmarshal([]byte(original), &before); err != nil {
		return fmt.Errorf("reparse original: %w", err)
	}
	if err := json.Unmarshal([]byte(updated), &after); err != nil {
		return fmt.Errorf("reparse updated: %w", err)
	}

	for key, want := range before {
		if patchedRoots[key] {
			continue
		}
		got, ok := after[key]
		if !ok {
			return fmt.Errorf("key %q disappeared", key)
		}
		if !reflect.DeepEqual(want, got) {
			return fmt.Errorf("key %q changed", key)
		}
	}
	for key := range after {
		if patchedRoots[key] {
			continue
		}
		if _, ok := before[key]; !ok {
			return fmt.Errorf("key %q appeared", key)
		}
	}
	return nil
}

// Package alias derives short chat aliases from gateway model ids.
package alias

import (
	"regexp"
	"strings"
)

var (
	nonAlnum   = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRuns = regexp.MustCompile(`-{2,}`)
	instructOn = regexp.MustCompile(`(?i)instruct.*$`)
	fpSuffix   = regexp.MustCompile(`-fp\d+$`)
	revSuffix  = regexp.MustCompile(`-0\d+$`)
)

// Derive maps a model id to the short name registered as its chat alias.
//
// The namespace is dropped, the rest is lowercased and reduced to
// [a-z0-9-], then marketing suffixes nobody types are stripped: anything
// from "instruct" on, quantization tags like -fp8, revision tags like -001,
// and the -large-v3-turbo tail. "meta-llama/Meta-Llama-3.1-405B-Instruct-FP8"
// becomes "meta-llama-3-1-405b".
func Derive(id string) string {
	s := id
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.ToLower(s)
	s = nonAlnum.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	s = instructOn.ReplaceAllString(s, "")
	s = fpSuffix.ReplaceAllString(s, "")
	s = revSuffix.ReplaceAllString(s, "")
	s = strings.TrimSuffix(s, "-large-v3-turbo")
	s = strings.TrimSuffix(s, "-")
	return s
}

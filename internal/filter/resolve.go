package filter

import (
	"sort"
	"strings"
)

const negation = "-"

// Resolve turns an ordered list of signed tokens into a set of unsigned and
// surviving negative tokens, returned sorted. Empty tokens are ignored.
func Resolve(tokens []string) []string {
	want := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		if tok == "" || strings.HasPrefix(tok, negation) {
			continue
		}
		want[tok] = struct{}{}
	}
	for _, tok := range tokens {
		if !strings.HasPrefix(tok, negation) {
			continue
		}
		name := strings.TrimPrefix(tok, negation)
		if _, ok := want[name]; ok {
			delete(want, name)
			continue
		}
		want[tok] = struct{}{}
	}

	out := make([]string, 0, len(want))
	for tok := range want {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// Split breaks a filter checkbox value ("windows,-debug") into tokens,
// dropping empty pieces.
func Split(value string) []string {
	parts := strings.Split(value, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Suffix resolves tokens and renders them as a try syntax filter suffix
// ("[a,b]"). Fully cancelled tokens render as "[]".
func Suffix(tokens []string) string {
	return "[" + strings.Join(Resolve(tokens), ",") + "]"
}

package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trychooser/internal/filter"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{name: "empty", tokens: nil, want: []string{}},
		{name: "single inclusion", tokens: []string{"a"}, want: []string{"a"}},
		{name: "cancelled", tokens: []string{"a", "-a"}, want: []string{}},
		{name: "lone exclusion survives", tokens: []string{"-a"}, want: []string{"-a"}},
		{name: "second exclusion reappears", tokens: []string{"a", "-a", "-a"}, want: []string{"-a"}},
		{name: "duplicates collapse", tokens: []string{"a", "a", "b"}, want: []string{"a", "b"}},
		{name: "exclusion before inclusion still cancels", tokens: []string{"-a", "a"}, want: []string{}},
		{name: "empty tokens ignored", tokens: []string{"", "a", ""}, want: []string{"a"}},
		{
			name:   "platform minus configuration",
			tokens: []string{"windows", "debug", "-debug", "-x64"},
			want:   []string{"-x64", "windows"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filter.Resolve(tt.tokens))
		})
	}
}

func TestResolve_OrderOfInclusionsDoesNotMatter(t *testing.T) {
	a := filter.Resolve([]string{"x", "y", "-x", "-z"})
	b := filter.Resolve([]string{"-x", "y", "-z", "x"})
	assert.Equal(t, a, b)
}

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"windows", "-debug"}, filter.Split("windows,-debug"))
	assert.Equal(t, []string{"a"}, filter.Split(" a ,,"))
	assert.Empty(t, filter.Split(""))
}

func TestSuffix(t *testing.T) {
	assert.Equal(t, "[-x64,linux]", filter.Suffix([]string{"linux", "-x64"}))
	assert.Equal(t, "[]", filter.Suffix([]string{"a", "-a"}))
}

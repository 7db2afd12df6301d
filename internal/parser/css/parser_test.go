package css_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/twsort/internal/format"
	"bennypowers.dev/twsort/internal/parser/css"
	"bennypowers.dev/twsort/internal/sorter"
)

var testPolicy = sorter.NewPolicy([]string{"flex", "px-2", "py-1", "text-white"})

func rewrite(t *testing.T, source string, s format.Sorter) string {
	t.Helper()
	p := css.AcquireParser()
	defer css.ReleaseParser(p)

	out, err := p.Rewrite(source, nil, s)
	require.NoError(t, err)
	return out
}

func TestRewriteApply(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "apply list sorted",
			source: ".btn {\n  @apply text-white py-1 px-2;\n}",
			want:   ".btn {\n  @apply px-2 py-1 text-white;\n}",
		},
		{
			name:   "extra whitespace normalized",
			source: ".btn { @apply  py-1   px-2 ; }",
			want:   ".btn { @apply px-2 py-1; }",
		},
		{
			name:   "other at-rules untouched",
			source: "@media (min-width: 640px) {\n  .a { color: red; }\n}",
			want:   "@media (min-width: 640px) {\n  .a { color: red; }\n}",
		},
		{
			name:   "declarations untouched",
			source: ".btn { padding: py-1 px-2; }",
			want:   ".btn { padding: py-1 px-2; }",
		},
		{
			name:   "multiple apply rules share one pass",
			source: ".a { @apply py-1 flex; }\n.b { @apply text-white px-2; }",
			want:   ".a { @apply flex py-1; }\n.b { @apply px-2 text-white; }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rewrite(t, tt.source, testPolicy))
		})
	}
}

func TestRewriteApplyIdentity(t *testing.T) {
	source := ".btn { @apply py-1 px-2; }"
	assert.Equal(t, source, rewrite(t, source, sorter.Identity{}))
}

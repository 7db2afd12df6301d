package sorter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/twsort/internal/sorter"
)

func TestIdentity(t *testing.T) {
	s := sorter.Identity{}
	assert.Equal(t, "  b a  ", s.Sort("  b a  "))
	assert.Equal(t, "", s.Sort(""))
}

func TestPolicySort(t *testing.T) {
	policy := sorter.NewPolicy([]string{"flex", "px-2", "py-1"})

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already ordered", "flex px-2 py-1", "flex px-2 py-1"},
		{"reordered", "py-1 flex px-2", "flex px-2 py-1"},
		{"whitespace collapsed", "  py-1   px-2  ", "px-2 py-1"},
		{"unknown classes lead and keep relative order", "px-2 b a flex", "b a flex px-2"},
		{"empty list", "   ", ""},
		{"single class", "px-2", "px-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Sort(tt.input))
		})
	}
}

func TestNewPolicyFirstRankWins(t *testing.T) {
	policy := sorter.NewPolicy([]string{"a", "b", "a"})
	assert.Equal(t, "a b", policy.Sort("b a"))
}

func TestLoadPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.txt")
	content := "# utility order\nflex\n\npx-2\npy-1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	policy, err := sorter.LoadPolicy(path)
	require.NoError(t, err)
	assert.Equal(t, "flex px-2 py-1", policy.Sort("py-1 px-2 flex"))
}

func TestLoadPolicyMissing(t *testing.T) {
	_, err := sorter.LoadPolicy(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

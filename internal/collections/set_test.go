package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bennypowers.dev/twsort/internal/collections"
)

func TestSet(t *testing.T) {
	s := collections.NewSet("class", "className")

	assert.True(t, s.Has("class"))
	assert.True(t, s.Has("className"))
	assert.False(t, s.Has("style"))

	s.Add("tw")
	assert.True(t, s.Has("tw"))
}

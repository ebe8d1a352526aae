package gantt

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorPool_IsFixedAndOrdered(t *testing.T) {
	first := ColorPool()
	second := ColorPool()

	require.Len(t, first, 26)
	assert.Equal(t, first, second)
	assert.Equal(t, "#FF9999", first[0])
	assert.Equal(t, "#8B0000", first[25])

	hex := regexp.MustCompile(`^#[0-9A-F]{6}$`)
	for _, c := range first {
		assert.Regexp(t, hex, c)
	}
}

func TestColorPool_ReturnsCopy(t *testing.T) {
	pool := ColorPool()
	pool[0] = "#000000"

	assert.Equal(t, "#FF9999", ColorPool()[0])
}

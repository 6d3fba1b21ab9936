package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMeta(t *testing.T) {
	t.Run("computes total pages with remainder", func(t *testing.T) {
		meta := NewMeta(10, 25, 1, 10)

		assert.Equal(t, 10, meta.Count)
		assert.Equal(t, 25, meta.Total)
		assert.Equal(t, 1, meta.Page)
		assert.Equal(t, 3, meta.Pages)
	})

	t.Run("exact multiple of limit", func(t *testing.T) {
		meta := NewMeta(10, 30, 2, 10)

		assert.Equal(t, 3, meta.Pages)
	})

	t.Run("empty result set has zero pages", func(t *testing.T) {
		meta := NewMeta(0, 0, 1, 10)

		assert.Equal(t, 0, meta.Pages)
	})
}

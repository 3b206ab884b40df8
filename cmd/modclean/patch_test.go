package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modclean/pkg/types"
)

func TestNormalizeSections(t *testing.T) {
	t.Run("empty input selects all sections", func(t *testing.T) {
		out, err := normalizeSections(nil)
		require.NoError(t, err)
		assert.Equal(t, types.AllSections, out)
	})

	t.Run("names match case-insensitively", func(t *testing.T) {
		out, err := normalizeSections([]string{"deleted", " ADDED "})
		require.NoError(t, err)
		assert.Equal(t, []string{types.SectionDeleted, types.SectionAdded}, out)
	})

	t.Run("unknown names error", func(t *testing.T) {
		_, err := normalizeSections([]string{"Renamed"})
		assert.Error(t, err)
	})
}

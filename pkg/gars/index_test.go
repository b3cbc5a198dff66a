package gars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestIndex(t *testing.T) *CellIndex {
	t.Helper()

	f := NewField(bound(-175, -76, -170, -75).ToPolygon())
	cells, err := f.Cells30Min()
	require.NoError(t, err)
	require.Len(t, cells, 33)

	return NewCellIndex(cells)
}

func TestCellIndexCount(t *testing.T) {
	idx := buildTestIndex(t)
	assert.Equal(t, 33, idx.Count())
}

func TestCellIndexAt(t *testing.T) {
	idx := buildTestIndex(t)

	hits := idx.At(-174.8, -75.3)
	require.Len(t, hits, 1)
	assert.Equal(t, "011BF", hits[0].ID())

	// a point on the shared edge of two cells belongs to both, even
	// though it lies on the western cell's east boundary
	edge := idx.At(-174.5, -75.3)
	assert.Equal(t, []string{"011BF", "012BF"}, idsOf(edge))

	// a cell corner belongs to every adjacent indexed cell
	corner := idx.At(-174.5, -75.5)
	assert.Equal(t, []string{"011BE", "011BF", "012BE", "012BF"}, idsOf(corner))

	assert.Empty(t, idx.At(0, 0))
}

func TestCellIndexSearch(t *testing.T) {
	idx := buildTestIndex(t)

	hits := idx.Search(bound(-174.9, -75.4, -174.6, -74.9))
	assert.Equal(t, []string{"011BF", "011BG"}, idsOf(hits))

	all := idx.Search(bound(-180, -90, 180, 90))
	assert.Len(t, all, 33)

	assert.Empty(t, idx.Search(bound(10, 10, 20, 20)))
}

func TestCellIndexMixedResolutions(t *testing.T) {
	coarse, err := NewGARSGrid("218MA")
	require.NoError(t, err)
	fine, err := NewGARSGrid("218MA2617")
	require.NoError(t, err)

	idx := NewCellIndex([]Grid{coarse, fine})
	assert.Equal(t, 2, idx.Count())

	// the fine cell nests inside the coarse one
	hits := idx.At(-71.06, 42.36)
	assert.Equal(t, []string{"218MA", "218MA2617"}, idsOf(hits))
}

func TestCellIndexEmpty(t *testing.T) {
	idx := NewCellIndex([]Grid{})
	assert.Equal(t, 0, idx.Count())
	assert.Empty(t, idx.At(0, 0))
}

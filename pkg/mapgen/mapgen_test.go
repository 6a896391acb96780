package mapgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	size := 29
	radius := size / 2

	coords := Generate(size)
	require.NotEmpty(t, coords)

	included := make(map[Coord]struct{}, len(coords))
	for _, c := range coords {
		included[c] = struct{}{}
	}

	// The center and the four edge midpoints are always playable.
	assert.Contains(t, included, Coord{X: radius, Y: radius})
	assert.Contains(t, included, Coord{X: 0, Y: radius})
	assert.Contains(t, included, Coord{X: size - 1, Y: radius})
	assert.Contains(t, included, Coord{X: radius, Y: 0})
	assert.Contains(t, included, Coord{X: radius, Y: size - 1})

	// The four extreme corners are rounded off.
	assert.NotContains(t, included, Coord{X: 0, Y: 0})
	assert.NotContains(t, included, Coord{X: 0, Y: size - 1})
	assert.NotContains(t, included, Coord{X: size - 1, Y: 0})
	assert.NotContains(t, included, Coord{X: size - 1, Y: size - 1})

	// Rounded corners make the map strictly smaller than the full square.
	assert.Less(t, len(coords), size*size)
}

func TestGenerate_Symmetry(t *testing.T) {
	size := 29
	radius := size / 2

	// The blend of Manhattan and Euclidean distance is symmetric around the
	// center in both axes.
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			mx := 2*radius - x
			my := 2*radius - y
			if mx < 0 || mx >= size || my < 0 || my >= size {
				continue
			}
			assert.Equal(t, Playable(x, y, size), Playable(mx, my, size), "(%d,%d) vs (%d,%d)", x, y, mx, my)
		}
	}
}

func TestRender(t *testing.T) {
	size := 9
	rendered := Render(size)

	lines := strings.Split(strings.TrimSuffix(rendered, "\n"), "\n")
	require.Len(t, lines, size)
	for _, line := range lines {
		require.Len(t, line, size)
	}

	// Row 0 renders at the bottom.
	bottomLeft := rendered[len(rendered)-size-1 : len(rendered)-size]
	if Playable(0, 0, size) {
		assert.Equal(t, "#", bottomLeft)
	} else {
		assert.Equal(t, ".", bottomLeft)
	}
}

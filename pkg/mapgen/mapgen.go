// Package mapgen generates the playable tile set for the Middle Earth AI map:
// a square grid whose corners are rounded off, so the playable area
// approximates a circle while keeping straight edges along the axes.
package mapgen

import (
	"math"
	"strings"
)

// Coord is a tile position on the map grid.
type Coord struct {
	X int
	Y int
}

// manhattanWeight blends the Manhattan and Euclidean distances from the map
// center. Pure Euclidean gives a circle, pure Manhattan a diamond; the blend
// keeps flat edges with rounded corners.
const manhattanWeight = 0.6

// edgeSlack widens the inclusion radius so tiles just outside the blended
// circle still count as playable.
const edgeSlack = 3

// Generate returns the playable coordinates of a size x size map. A tile is
// playable when its blended distance from the center, truncated to an
// integer, is within the map radius plus slack.
func Generate(size int) []Coord {
	var coords []Coord
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			if Playable(x, y, size) {
				coords = append(coords, Coord{X: x, Y: y})
			}
		}
	}

	return coords
}

// Playable reports whether tile (x, y) is inside the playable area of a
// size x size map.
func Playable(x, y, size int) bool {
	radius := size / 2

	dx := float64(abs(x - radius))
	dy := float64(abs(y - radius))

	manhattan := dx + dy
	euclidean := math.Sqrt(dx*dx + dy*dy)

	effective := manhattanWeight*manhattan + (1-manhattanWeight)*euclidean

	return int(effective) <= radius+edgeSlack
}

// Render draws the size x size map as ASCII art, one row per line, marking
// playable tiles with '#' and excluded corner tiles with '.'. Row 0 is the
// bottom of the map.
func Render(size int) string {
	var sb strings.Builder
	for y := size - 1; y >= 0; y-- {
		for x := 0; x < size; x++ {
			if Playable(x, y, size) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

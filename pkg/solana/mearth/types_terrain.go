package mearth

// TerrainType is the Borsh enum for the terrain an agent moves through.
// Terrain determines the movement cooldown applied by the program.
type TerrainType uint8

const (
	TerrainTypePlain TerrainType = iota
	TerrainTypeMountain
	TerrainTypeRiver
)

func (t TerrainType) String() string {
	switch t {
	case TerrainTypePlain:
		return "plain"
	case TerrainTypeMountain:
		return "mountain"
	case TerrainTypeRiver:
		return "river"
	}
	return "unknown"
}

func putTerrainType(dst []byte, v TerrainType, offset *int) {
	putUint8(dst, uint8(v), offset)
}

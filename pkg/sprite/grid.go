package sprite

import "errors"

// ErrNoColumns is returned when a grid declares zero columns.
var ErrNoColumns = errors.New("sprite grid has no columns")

// SpriteGrid describes a regular grid of equally sized sprites in a sheet
// texture. Rows, SpriteCount, CellSize and Position are optional; missing
// values are derived from the ones that are present.
type SpriteGrid struct {
	TextureWidth  uint32 `yaml:"texture_width"`
	TextureHeight uint32 `yaml:"texture_height"`
	Columns       uint32 `yaml:"columns"`

	Rows        *uint32    `yaml:"rows,omitempty"`
	SpriteCount *uint32    `yaml:"sprite_count,omitempty"`
	CellSize    *[2]uint32 `yaml:"cell_size,omitempty,flow"`
	Position    *[2]uint32 `yaml:"position,omitempty,flow"`
}

// RowCount returns the number of rows in the grid. An explicit value wins;
// otherwise rows are derived from the cell height (floor division), then
// from the sprite count (rounded up to fill columns), and default to 1.
func (g *SpriteGrid) RowCount() uint32 {
	switch {
	case g.Rows != nil:
		return *g.Rows
	case g.CellSize != nil:
		return g.TextureHeight / g.CellSize[1]
	case g.SpriteCount != nil:
		return (*g.SpriteCount + g.Columns - 1) / g.Columns
	default:
		return 1
	}
}

// Count returns how many sprites the grid produces: the explicit count if
// set, otherwise every geometric cell.
func (g *SpriteGrid) Count() uint32 {
	if g.SpriteCount != nil {
		return *g.SpriteCount
	}
	return g.Columns * g.RowCount()
}

// CellDimensions returns the pixel size of one cell. An explicit cell size
// is used verbatim; otherwise the texture is divided evenly by columns and
// derived rows.
func (g *SpriteGrid) CellDimensions() (width, height uint32) {
	if g.CellSize != nil {
		return g.CellSize[0], g.CellSize[1]
	}
	return g.TextureWidth / g.Columns, g.TextureHeight / g.RowCount()
}

// BuildSprites expands the grid into sprites in row-major order, starting
// from the top-left cell, stopping once Count sprites were emitted. The
// result depends only on the grid's fields.
func (g *SpriteGrid) BuildSprites() ([]Sprite, error) {
	if g.Columns == 0 {
		return nil, ErrNoColumns
	}
	cellW, cellH := g.CellDimensions()
	count := g.Count()
	var originX, originY uint32
	if g.Position != nil {
		originX, originY = g.Position[0], g.Position[1]
	}

	sprites := make([]Sprite, 0, count)
	for i := uint32(0); i < count; i++ {
		col := i % g.Columns
		row := i / g.Columns
		x := originX + col*cellW
		y := originY + row*cellH
		sprites = append(sprites, FromPixelValues(
			g.TextureWidth, g.TextureHeight, cellW, cellH, x, y, [2]float32{}, false, false,
		))
	}
	return sprites, nil
}

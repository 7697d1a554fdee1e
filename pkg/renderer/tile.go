package renderer

import (
	"image"

	"github.com/df07/go-shader-raytracer/pkg/core"
)

// Tile represents a rectangular region of the image
type Tile struct {
	ID     int             // Position in row-major tile order
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTile creates a new tile with the specified bounds
func NewTile(id int, bounds image.Rectangle) Tile {
	return Tile{ID: id, Bounds: bounds}
}

// NewTileGrid creates a grid of tiles covering the entire image. Tiles on
// the right and bottom edges are clipped to the image.
func NewTileGrid(width, height, tileSize int) []Tile {
	core.Assert(tileSize > 0, "tile size must be positive, got %d", tileSize)

	// Ceiling division
	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	tiles := make([]Tile, 0, tilesX*tilesY)
	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(len(tiles), image.Rect(x0, y0, x1, y1)))
		}
	}

	return tiles
}

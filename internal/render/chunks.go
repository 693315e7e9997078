package render

import (
	"image/color"

	"civgen/internal/core"
	"civgen/internal/world"
)

// DefaultChunkSize is the chunk edge length in tiles.
const DefaultChunkSize = 32

// SpriteEntry is a sprite positioned relative to its chunk origin.
type SpriteEntry struct {
	LocalX, LocalY int
	Sprite         world.Sprite
	Tint           color.RGBA
}

// ChunkIndex buckets sprites by chunk so a renderer can redraw only the
// chunks in view. It implements world.SpriteSink.
type ChunkIndex struct {
	chunkSize int
	grid      core.Size
	sprites   [][]SpriteEntry
	dirty     []bool
}

// NewChunkIndex covers a world of the given tile size.
func NewChunkIndex(tiles core.Size, chunkSize int) *ChunkIndex {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	grid := core.Size{
		W: (tiles.W + chunkSize - 1) / chunkSize,
		H: (tiles.H + chunkSize - 1) / chunkSize,
	}
	return &ChunkIndex{
		chunkSize: chunkSize,
		grid:      grid,
		sprites:   make([][]SpriteEntry, grid.Area()),
		dirty:     make([]bool, grid.Area()),
	}
}

// ChunkSize returns the chunk edge length in tiles.
func (c *ChunkIndex) ChunkSize() int { return c.chunkSize }

// Grid returns the chunk map dimensions.
func (c *ChunkIndex) Grid() core.Size { return c.grid }

// ChunkOf maps a tile to its chunk coordinates.
func (c *ChunkIndex) ChunkOf(x, y int) (int, int) {
	return x / c.chunkSize, y / c.chunkSize
}

// AddSprite records a sprite at tile (x, y). Tiles outside the world are
// ignored.
func (c *ChunkIndex) AddSprite(x, y int, s world.Sprite, tint color.RGBA) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := c.ChunkOf(x, y)
	if !c.grid.Contains(cx, cy) {
		return
	}
	i := c.grid.Index(cx, cy)
	c.sprites[i] = append(c.sprites[i], SpriteEntry{
		LocalX: x % c.chunkSize,
		LocalY: y % c.chunkSize,
		Sprite: s,
		Tint:   tint,
	})
	c.dirty[i] = true
}

// Sprites returns the sprites recorded in chunk (cx, cy).
func (c *ChunkIndex) Sprites(cx, cy int) []SpriteEntry {
	if !c.grid.Contains(cx, cy) {
		return nil
	}
	return c.sprites[c.grid.Index(cx, cy)]
}

// TakeDirty reports whether chunk (cx, cy) changed since the last call and
// clears the flag.
func (c *ChunkIndex) TakeDirty(cx, cy int) bool {
	if !c.grid.Contains(cx, cy) {
		return false
	}
	i := c.grid.Index(cx, cy)
	d := c.dirty[i]
	c.dirty[i] = false
	return d
}

// Clear drops every sprite and marks all chunks dirty.
func (c *ChunkIndex) Clear() {
	for i := range c.sprites {
		c.sprites[i] = c.sprites[i][:0]
		c.dirty[i] = true
	}
}

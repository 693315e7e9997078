package world

import (
	"image/color"

	"civgen/internal/terrain"
)

// Sprite enumerates entries on the main sprite sheet.
type Sprite uint8

const (
	SpriteSettlement Sprite = iota
	SpriteCity
	SpriteCastle
	SpriteArmy
)

var spriteSheet = [...]terrain.SheetIndex{
	SpriteSettlement: {Col: 0, Row: 0},
	SpriteCity:       {Col: 1, Row: 0},
	SpriteCastle:     {Col: 2, Row: 0},
	SpriteArmy:       {Col: 3, Row: 0},
}

// SheetIndex returns the sprite's position on the sheet.
func (s Sprite) SheetIndex() terrain.SheetIndex {
	if int(s) >= len(spriteSheet) {
		return terrain.SheetIndex{}
	}
	return spriteSheet[s]
}

// SpriteSink receives sprite placements, typically a renderer chunk cache.
type SpriteSink interface {
	AddSprite(x, y int, sprite Sprite, tint color.RGBA)
}

type discardSprites struct{}

func (discardSprites) AddSprite(int, int, Sprite, color.RGBA) {}

var neutralTint = color.RGBA{R: 255, G: 255, B: 255, A: 255}

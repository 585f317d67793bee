package engine

import "fmt"

// TileFeature is a static, value-object effect bound to a tile. It is
// applied, in registration order, whenever a racer's move or warp ends on
// that tile; passing over the tile does not apply it.
type TileFeature interface {
	// Apply runs the feature's effect for the racer now sitting on the tile.
	Apply(e *Engine, racerIdx int)
	describe() string
}

// MoveDeltaTile issues an additional push_move of Delta (may be negative)
// when a racer's move or warp ends on this tile.
type MoveDeltaTile struct{ Delta int }

func (t MoveDeltaTile) Apply(e *Engine, racerIdx int) {
	e.PushMove(t.Delta, PhaseReaction, racerIdx, "Board", racerIdx, EmitNone)
}
func (t MoveDeltaTile) describe() string { return fmt.Sprintf("MoveDeltaTile(%d)", t.Delta) }

// TripTile trips any racer whose move or warp ends on this tile.
type TripTile struct{}

func (TripTile) Apply(e *Engine, racerIdx int) {
	e.PushTrip(racerIdx, "Board", racerIdx, PhaseReaction)
}
func (TripTile) describe() string { return "TripTile" }

// VictoryPointTile grants (or removes, if Delta < 0) victory points.
type VictoryPointTile struct{ Delta int }

func (t VictoryPointTile) Apply(e *Engine, racerIdx int) {
	r := e.racers[racerIdx]
	r.VictoryPoints += t.Delta
	if r.VictoryPoints < 0 {
		r.VictoryPoints = 0
	}
}
func (t VictoryPointTile) describe() string { return fmt.Sprintf("VictoryPointTile(%d)", t.Delta) }

// Board is a fixed-length track with per-tile static features.
type Board struct {
	Length     int
	Features   map[int][]TileFeature
	SecondTurn int // halfway marker tile index; 0 means unset
}

// NewBoard returns an empty board of the given length with no tile
// features and the conventional halfway marker.
func NewBoard(length int) *Board {
	if length <= 0 {
		panic("engine: board length must be positive")
	}
	return &Board{
		Length:     length,
		Features:   make(map[int][]TileFeature),
		SecondTurn: length / 2,
	}
}

// AddFeature registers a static feature at tileIdx, in the order given.
func (b *Board) AddFeature(tileIdx int, f TileFeature) {
	b.Features[tileIdx] = append(b.Features[tileIdx], f)
}

// FeaturesAt returns the ordered static features at a tile, or nil.
func (b *Board) FeaturesAt(tileIdx int) []TileFeature {
	return b.Features[tileIdx]
}

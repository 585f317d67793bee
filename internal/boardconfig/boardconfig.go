// Package boardconfig loads Board layouts from HCL files, the same way the
// teacher repo loads its table/bot configuration: a typed struct decoded with
// gohcl, defaults applied for anything the file omits.
package boardconfig

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/magsim/internal/engine"
)

// BoardFile is the top-level HCL document: one board block plus its tiles.
type BoardFile struct {
	Board BoardBlock `hcl:"board,block"`
}

// BoardBlock describes a single board layout.
type BoardBlock struct {
	Name       string      `hcl:"name,label"`
	Length     int         `hcl:"length"`
	SecondTurn int         `hcl:"second_turn,optional"`
	Tiles      []TileBlock `hcl:"tile,block"`
}

// TileBlock attaches an ordered list of static features to one tile index.
// Only one feature kind may be set per block; add repeated tile blocks with
// the same Index to stack features, since Board.AddFeature appends in
// registration order.
type TileBlock struct {
	Index         int  `hcl:"index"`
	MoveDelta     *int `hcl:"move_delta,optional"`
	Trip          bool `hcl:"trip,optional"`
	VictoryPoints *int `hcl:"victory_points,optional"`
}

// Load parses path and returns the named board as an *engine.Board, with
// SecondTurn defaulting to Length/2 when the file omits it (matching
// engine.NewBoard's own default).
func Load(path, boardName string) (*engine.Board, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("boardconfig: parse %s: %s", path, diags.Error())
	}

	var doc BoardFile
	diags = gohcl.DecodeBody(file.Body, nil, &doc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("boardconfig: decode %s: %s", path, diags.Error())
	}

	if doc.Board.Name != boardName {
		return nil, fmt.Errorf("boardconfig: %s defines board %q, want %q", path, doc.Board.Name, boardName)
	}
	return build(doc.Board)
}

// LoadFirst parses path and returns whichever board block it defines,
// erroring if the file declares zero or more than one.
func LoadFirst(path string) (*engine.Board, string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, "", fmt.Errorf("boardconfig: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, "", fmt.Errorf("boardconfig: parse %s: %s", path, diags.Error())
	}

	var doc BoardFile
	diags = gohcl.DecodeBody(file.Body, nil, &doc)
	if diags.HasErrors() {
		return nil, "", fmt.Errorf("boardconfig: decode %s: %s", path, diags.Error())
	}

	b, err := build(doc.Board)
	return b, doc.Board.Name, err
}

func build(block BoardBlock) (*engine.Board, error) {
	if block.Length <= 0 {
		return nil, &engine.ConfigError{Reason: fmt.Sprintf("boardconfig: board %q has non-positive length", block.Name)}
	}

	b := engine.NewBoard(block.Length)
	if block.SecondTurn > 0 {
		b.SecondTurn = block.SecondTurn
	}

	for _, t := range block.Tiles {
		if t.Index < 0 || t.Index > block.Length {
			return nil, fmt.Errorf("boardconfig: board %q: tile %d out of range [0,%d]", block.Name, t.Index, block.Length)
		}
		switch {
		case t.MoveDelta != nil:
			b.AddFeature(t.Index, engine.MoveDeltaTile{Delta: *t.MoveDelta})
		case t.Trip:
			b.AddFeature(t.Index, engine.TripTile{})
		case t.VictoryPoints != nil:
			b.AddFeature(t.Index, engine.VictoryPointTile{Delta: *t.VictoryPoints})
		default:
			return nil, fmt.Errorf("boardconfig: board %q: tile %d declares no feature", block.Name, t.Index)
		}
	}
	return b, nil
}

// DefaultClassic returns the canonical 30-tile board: a trip tile at 10,
// a -3 slide at 20, and a +2 VP tile at 25.
func DefaultClassic() *engine.Board {
	b := engine.NewBoard(30)
	b.AddFeature(10, engine.TripTile{})
	b.AddFeature(20, engine.MoveDeltaTile{Delta: -3})
	b.AddFeature(25, engine.VictoryPointTile{Delta: 2})
	return b
}

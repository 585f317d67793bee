package racepool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/magsim/internal/engine"
	"github.com/lox/magsim/internal/racers"
	"github.com/lox/magsim/internal/randutil"
)

func buildFactory(boardID string) func(seed int64) (*engine.Engine, error) {
	return func(seed int64) (*engine.Engine, error) {
		board := engine.NewBoard(20)
		rng := randutil.New(seed)
		return engine.New(board, seed, boardID, racers.Configs(engine.Mastermind, engine.FlipFlop), engine.NewSeededDice(rng), nil, engine.DefaultRules(), nil)
	}
}

func TestRun_ProducesOneResultPerSpecInOrder(t *testing.T) {
	specs := make([]RaceSpec, 20)
	for i := range specs {
		specs[i] = RaceSpec{Seed: int64(i), Factory: buildFactory("pool")}
	}

	results, err := Run(context.Background(), specs)
	require.NoError(t, err)
	require.Len(t, results, len(specs))
	for i, r := range results {
		assert.Equal(t, int64(i), r.Seed)
	}
}

func TestRun_EmptyInput(t *testing.T) {
	results, err := Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRun_PropagatesFactoryError(t *testing.T) {
	specs := []RaceSpec{
		{Seed: 1, Factory: func(seed int64) (*engine.Engine, error) {
			return engine.New(&engine.Board{Length: 0}, seed, "bad", nil, engine.NewScriptedDice(1), nil, engine.DefaultRules(), nil)
		}},
	}
	_, err := Run(context.Background(), specs)
	assert.Error(t, err)
}

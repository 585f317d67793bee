// Command race is a single-race demo driver: build a board and a roster
// from flags, run it to completion, and print the result. No persistence,
// no batch aggregation — those live outside this binary.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/magsim/internal/boardconfig"
	"github.com/lox/magsim/internal/engine"
	"github.com/lox/magsim/internal/gameid"
	"github.com/lox/magsim/internal/racers"
	"github.com/lox/magsim/internal/randutil"
	"github.com/lox/magsim/internal/tui"
)

type CLI struct {
	Board      string   `default:"" help:"Path to an HCL board file; omitted uses the built-in classic board"`
	Racers     []string `default:"Centaur,Banana,Romantic,Scoocher" help:"Comma-separated racer archetypes"`
	Seed       int64    `default:"0" help:"RNG seed (0 for time-derived)"`
	MaxTurns   int      `default:"200" help:"Turn cap before MAX_TURNS_REACHED"`
	TimingMode string   `default:"bfs" help:"Reaction timing: bfs or dfs"`
	Interactive bool    `help:"Show the race log and standings in a Bubble Tea TUI; ability decisions still use the baseline agent"`
	Verbose    bool     `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	if cli.Seed == 0 {
		cli.Seed = time.Now().UnixNano()
	}

	logger := log.New(os.Stderr)
	logger.SetColorProfile(termenv.TrueColor)
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	board, boardID, err := loadBoard(cli.Board)
	if err != nil {
		logger.Fatal("failed to load board", "error", err)
	}

	names, err := parseRacerNames(cli.Racers)
	if err != nil {
		logger.Fatal("invalid roster", "error", err)
	}

	rules := engine.DefaultRules()
	rules.MaxTurns = cli.MaxTurns
	if strings.EqualFold(cli.TimingMode, "dfs") {
		rules.TimingMode = engine.TimingDFS
	}

	rng := randutil.New(cli.Seed)
	dice := engine.NewSeededDice(rng)

	e, err := engine.New(board, cli.Seed, boardID, racers.Configs(names...), dice, nil, rules, logger)
	if err != nil {
		logger.Fatal("failed to build race", "error", err)
	}

	runID := gameid.Generate()
	logger.Info("race starting", "runID", runID, "board", boardID, "racers", names, "seed", cli.Seed)

	if cli.Interactive {
		agent := tui.NewAgent(e, logger)
		if err := agent.Start(); err != nil {
			logger.Fatal("failed to start tui", "error", err)
		}
		defer agent.Close()
	}

	result := e.RunRace()
	printResult(runID, result)

	ctx.Exit(0)
}

func loadBoard(path string) (*engine.Board, string, error) {
	if path == "" {
		return boardconfig.DefaultClassic(), "classic", nil
	}
	return boardconfig.LoadFirst(path)
}

func parseRacerNames(raw []string) ([]engine.RacerName, error) {
	if len(raw) == 1 {
		raw = strings.Split(raw[0], ",")
	}
	names := make([]engine.RacerName, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		names = append(names, engine.RacerName(s))
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("at least one racer is required")
	}
	return names, nil
}

func printResult(runID string, result engine.RaceResult) {
	fmt.Printf("\n=== race %s complete ===\n", runID)
	fmt.Printf("board: %s  seed: %d  turns: %d  aborted: %v\n", result.BoardID, result.Seed, result.TotalTurns, result.Aborted)
	if result.Aborted {
		fmt.Printf("abort code: %s\n", result.AbortCode)
	}
	for _, r := range result.Racers {
		place := "-"
		if r.Rank != nil {
			place = fmt.Sprintf("%d", *r.Rank)
		}
		fmt.Printf("  %-12s finish=%-3d rank=%-2s vp=%-3d turns=%-3d triggers=%d\n",
			r.RacerName, r.FinishPosition, place, r.FinalVP, r.TurnsTaken, r.AbilityTriggerCount)
	}
}

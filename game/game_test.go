// Game Model Tests
//
// Copyright (c) 2024  Philip Kaludercic
//
// This file is part of go-ttt.
//
// go-ttt is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License,
// version 3, as published by the Free Software Foundation.
//
// go-ttt is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public
// License, version 3, along with go-ttt. If not, see
// <http://www.gnu.org/licenses/>

package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-ttt"
	"go-ttt/bot"
)

// An agent that insists on a fixed cell
type stubborn struct{ cell uint }

func (s *stubborn) Request(_ context.Context, g *ttt.Game) (*ttt.Move, error) {
	return &ttt.Move{Choice: s.cell, Agent: s, State: g.Board, Stamp: time.Now()}, nil
}

func (*stubborn) String() string { return "stubborn" }

// An agent that always fails
type broken struct{}

var errBroken = errors.New("broken")

func (broken) Request(context.Context, *ttt.Game) (*ttt.Move, error) { return nil, errBroken }
func (broken) String() string                                      { return "broken" }

func TestMove(t *testing.T) {
	g := Make(&stubborn{}, &stubborn{}, ttt.MinPlayer)
	if err := Move(g, &ttt.Move{Choice: 4}); err != nil {
		t.Fatal(err)
	}
	if g.Board[4] != ttt.MinMark || g.Current != ttt.MaxPlayer {
		t.Errorf("Unexpected state %s (%s to move)", g.Board, g.Current)
	}
	if err := Move(g, &ttt.Move{Choice: 4}); !errors.Is(err, ttt.ErrInvalidMove) {
		t.Errorf("Expected an invalid move, got %v", err)
	}
	if len(g.Moves) != 1 {
		t.Errorf("Expected one recorded move, got %d", len(g.Moves))
	}
}

func TestPlayMinMax(t *testing.T) {
	g := Make(bot.MakeMinMax(), bot.MakeMinMax(), ttt.MaxPlayer)
	if err := Play(context.Background(), g); err != nil {
		t.Fatal(err)
	}

	if g.Outcome != ttt.DRAW {
		t.Errorf("Perfect play must end in a draw, got %s (%s)",
			g.Outcome, g.Board)
	}
	if g.Board.String() != "OXX/XOO/OXX" {
		t.Errorf("Unexpected final position %s", g.Board)
	}
	if len(g.Moves) != ttt.Size {
		t.Fatalf("Expected %d moves, got %d", ttt.Size, len(g.Moves))
	}
	if last := g.Moves[len(g.Moves)-1]; last.Comment != "[Auto-move]" {
		t.Errorf("Expected the last move to be forced, got %q", last.Comment)
	}
}

func TestPlayDeterministic(t *testing.T) {
	var boards []ttt.Board
	for i := 0; i < 2; i++ {
		g := Make(bot.MakeAlphaBeta(0), bot.MakeAlphaBeta(0), ttt.MinPlayer)
		if err := Play(context.Background(), g); err != nil {
			t.Fatal(err)
		}
		if !g.Outcome.Over() || g.Board.Classify() != g.Outcome {
			t.Errorf("[%d] Inconsistent outcome %s for %s", i, g.Outcome, g.Board)
		}
		boards = append(boards, g.Board)
	}

	if boards[0] != boards[1] {
		t.Errorf("Expected identical games, got %s and %s", boards[0], boards[1])
	}
}

func TestPlayIllegal(t *testing.T) {
	g := Make(&stubborn{cell: 0}, &stubborn{cell: 0}, ttt.MaxPlayer)
	if err := Play(context.Background(), g); err != nil {
		t.Fatal(err)
	}

	// Max occupies 0, Min repeats the move and forfeits
	if g.Outcome != ttt.MAX_WON {
		t.Errorf("Expected Min to forfeit, got %s", g.Outcome)
	}
	if len(g.Moves) != 1 {
		t.Errorf("Expected one move, got %d", len(g.Moves))
	}
}

func TestPlayError(t *testing.T) {
	g := Make(broken{}, bot.MakeRandom(1), ttt.MaxPlayer)
	if err := Play(context.Background(), g); !errors.Is(err, errBroken) {
		t.Errorf("Expected agent error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g = Make(bot.MakeAlphaBeta(0), bot.MakeRandom(1), ttt.MaxPlayer)
	if err := Play(ctx, g); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected cancellation, got %v", err)
	}
	if g.Outcome != ttt.ONGOING {
		t.Errorf("Interrupted game must remain ongoing, got %s", g.Outcome)
	}
}

// Game Model
//
// Copyright (c) 2021, 2022, 2024  Philip Kaludercic
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
	"fmt"
	"sync/atomic"
	"time"

	"go-ttt"
)

var ids atomic.Uint64

// Make prepares a new game on an empty board, where FIRST opens
func Make(maxAgent, minAgent ttt.Agent, first ttt.Side) *ttt.Game {
	return &ttt.Game{
		Id:      ids.Add(1),
		Max:     maxAgent,
		Min:     minAgent,
		Current: first,
		Outcome: ttt.ONGOING,
	}
}

// Move applies M for the current side and hands the turn over
func Move(g *ttt.Game, m *ttt.Move) error {
	next, err := g.Board.Place(m.Choice, g.Current)
	if err != nil {
		return err
	}

	g.Board = next
	g.Moves = append(g.Moves, m)
	g.Current = g.Current.Opponent()
	g.Outcome = next.Classify()
	return nil
}

// Play requests moves from the agents until the game is over
func Play(ctx context.Context, g *ttt.Game) error {
	dbg := ttt.Debug.Printf

	g.Outcome = g.Board.Classify()
	for !g.Outcome.Over() {
		var m *ttt.Move

		moves := g.Board.Moves()
		dbg("Game %d: %s has %d moves on %s",
			g.Id, g.Current, len(moves), g.Board)
		switch len(moves) {
		case 0:
			// If this happens, then Board.Classify must
			// be broken.
			panic("No moves even though game is not over")
		case 1:
			// Skip trivial moves
			m = &ttt.Move{
				Agent:   g.Active(),
				Comment: "[Auto-move]",
				Choice:  moves[0],
				State:   g.Board,
				Stamp:   time.Now(),
			}
		default:
			var err error
			m, err = g.Active().Request(ctx, g)
			if err != nil {
				return fmt.Errorf("game %s: %s: %w", g, g.Active(), err)
			}
			if m == nil {
				panic(fmt.Sprintf("%s returned no move", g.Active()))
			}
		}
		dbg("Game %d: %s made the move %d (%s)",
			g.Id, g.Current, m.Choice, m.Comment)

		err := Move(g, m)
		if errors.Is(err, ttt.ErrInvalidMove) {
			dbg("Game %d: %s made illegal move %d",
				g.Id, g.Current, m.Choice)

			// The offending side forfeits
			if g.Current == ttt.MaxPlayer {
				g.Outcome = ttt.MIN_WON
			} else {
				g.Outcome = ttt.MAX_WON
			}
			break
		} else if err != nil {
			return err
		}
	}

	dbg("Game %d finished (%s): %s", g.Id, g.Outcome, g.Board)
	return nil
}

// Alpha-Beta Search Engine
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

package bot

import (
	"context"
	"fmt"
	"math"
	"time"

	"go-ttt"
)

// Value of a win, reduced by the number of plies it takes
const Win = 20

// Number of positions visited during a search
type stats struct{ nodes uint64 }

func (st *stats) visit() {
	if st != nil {
		st.nodes++
	}
}

// Depth-adjusted value of a terminal position
func score(o ttt.Outcome, depth int) int {
	switch o {
	case ttt.MAX_WON:
		return Win - depth
	case ttt.MIN_WON:
		return -Win + depth
	case ttt.DRAW:
		return 0
	}
	panic(fmt.Sprintf("Scoring unfinished game (%s)", o))
}

// node is a position in the game tree
type node struct {
	board ttt.Board
	side  ttt.Side // to move
	depth int      // plies from the root
	α, β  int
	best  *node // best reply found so far
}

func (n *node) evaluate(ctx context.Context, st *stats) (int, error) {
	st.visit()
	if o := n.board.Classify(); o.Over() {
		return score(o, n.depth), nil
	}

	var Φ int // best evaluation
	if n.side == ttt.MaxPlayer {
		Φ = math.MinInt
	} else {
		Φ = math.MaxInt
	}

	for _, m := range n.board.Moves() {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		next, err := n.board.Place(m, n.side)
		if err != nil {
			return 0, err
		}
		child := &node{
			board: next,
			side:  n.side.Opponent(),
			depth: n.depth + 1,
			α:     n.α,
			β:     n.β,
		}
		φ, err := child.evaluate(ctx, st)
		if err != nil {
			return 0, err
		}

		if n.side == ttt.MaxPlayer { // maximising
			// NOTE: Equal evaluations replace the earlier
			// choice, while the minimising side keeps the
			// first one.  Changing either comparison changes
			// which of several equivalent moves is proposed.
			if φ >= Φ {
				Φ = φ
				n.α = φ
				n.best = child
			}
		} else { // minimising
			if φ < Φ {
				Φ = φ
				n.β = φ
				n.best = child
			}
		}

		if n.α >= n.β {
			break
		}
	}

	return Φ, nil
}

func search(ctx context.Context, b ttt.Board, side ttt.Side, st *stats) (ttt.Board, int, error) {
	if o := b.Classify(); o.Over() {
		return ttt.Board{}, 0, fmt.Errorf("%w: game is over (%s)",
			ttt.ErrNoLegalMove, o)
	}

	root := &node{
		board: b,
		side:  side,
		α:     math.MinInt,
		β:     math.MaxInt,
	}
	ev, err := root.evaluate(ctx, st)
	if err != nil {
		return ttt.Board{}, 0, err
	}
	if root.best == nil {
		panic(fmt.Sprintf("No move selected for %s on %s", side, b))
	}
	ttt.Debug.Printf("Searched %s for %s: %s (%d)", b, side, root.best.board, ev)

	return root.best.board, ev, nil
}

// FindBestMove returns the position after the optimal move for SIDE
// and its game-theoretic value.  Positive values favour MaxPlayer.
func FindBestMove(b ttt.Board, side ttt.Side) (ttt.Board, int, error) {
	return search(context.Background(), b, side, nil)
}

// FindBestMoveContext is like FindBestMove, but gives up as soon as
// CTX is done.
func FindBestMoveContext(ctx context.Context, b ttt.Board, side ttt.Side) (ttt.Board, int, error) {
	return search(ctx, b, side, nil)
}

type alphabeta struct {
	timeout time.Duration // zero disables the limit
}

func (a *alphabeta) Request(ctx context.Context, g *ttt.Game) (*ttt.Move, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	next, ev, err := FindBestMoveContext(ctx, g.Board, g.Current)
	if err != nil {
		return nil, err
	}
	choice, ok := g.Board.Delta(next)
	if !ok {
		panic(fmt.Sprintf("Proposing illegal position %s given %s",
			next, g.Board))
	}

	return &ttt.Move{
		Choice:  choice,
		Comment: fmt.Sprintf("Evaluation: %d", ev),
		Agent:   a,
		State:   g.Board,
		Stamp:   time.Now(),
	}, nil
}

func (*alphabeta) String() string { return "alpha-beta" }

func MakeAlphaBeta(timeout time.Duration) ttt.Agent {
	return &alphabeta{timeout: timeout}
}

// Exhaustive MinMax Agent
//
// Copyright (c) 2022, 2024  Philip Kaludercic
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

// Traverse the entire game tree without pruning, using the same
// scoring and tie-breaking as the alpha-beta search.
func minimax(σ ttt.Board, ω ttt.Side, δ int, st *stats) (uint, int) {
	st.visit()
	if o := σ.Classify(); o.Over() {
		return 0, score(o, δ)
	}

	var (
		Φ int  // best evaluation
		μ uint // best move
	)
	if ω == ttt.MaxPlayer {
		Φ = math.MinInt
	} else {
		Φ = math.MaxInt
	}

	for _, m := range σ.Moves() {
		n, err := σ.Place(m, ω)
		if err != nil {
			panic(err)
		}

		_, φ := minimax(n, ω.Opponent(), δ+1, st)
		if ω == ttt.MaxPlayer {
			if φ >= Φ {
				Φ, μ = φ, m
			}
		} else if φ < Φ {
			Φ, μ = φ, m
		}
	}

	return μ, Φ
}

// Minimax evaluates B without pruning.  It agrees with FindBestMove
// on the value of every position, but visits the whole tree.
func Minimax(b ttt.Board, side ttt.Side) (ttt.Board, int, error) {
	if o := b.Classify(); o.Over() {
		return ttt.Board{}, 0, fmt.Errorf("%w: game is over (%s)",
			ttt.ErrNoLegalMove, o)
	}

	move, ev := minimax(b, side, 0, nil)
	next, err := b.Place(move, side)
	if err != nil {
		return ttt.Board{}, 0, err
	}
	return next, ev, nil
}

type minmax struct {
	id uint64 // distinguishes agents in the arena
}

func (m *minmax) Request(_ context.Context, g *ttt.Game) (*ttt.Move, error) {
	next, ev, err := Minimax(g.Board, g.Current)
	if err != nil {
		return nil, err
	}
	choice, _ := g.Board.Delta(next)

	return &ttt.Move{
		Choice:  choice,
		Comment: fmt.Sprintf("Evaluation: %d", ev),
		Agent:   m,
		State:   g.Board,
		Stamp:   time.Now(),
	}, nil
}

func (*minmax) String() string { return "minmax" }

func MakeMinMax() ttt.Agent {
	return &minmax{id: agents.Add(1)}
}

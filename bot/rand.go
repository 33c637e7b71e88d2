// Random Agent
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
	"math/rand"
	"sync"
	"time"

	"go-ttt"
)

type random struct {
	lock sync.Mutex
	rng  *rand.Rand
}

func (r *random) Request(_ context.Context, g *ttt.Game) (*ttt.Move, error) {
	moves := g.Board.Moves()
	if len(moves) == 0 {
		return nil, ttt.ErrNoLegalMove
	}

	r.lock.Lock()
	i := r.rng.Intn(len(moves))
	r.lock.Unlock()

	return &ttt.Move{
		Choice: moves[i],
		Agent:  r,
		State:  g.Board,
		Stamp:  time.Now(),
	}, nil
}

func (*random) String() string { return "random" }

// MakeRandom returns an agent that only makes random moves.  Agents
// created with the same SEED make the same sequence of choices.
func MakeRandom(seed int64) ttt.Agent {
	return &random{rng: rand.New(rand.NewSource(seed))}
}

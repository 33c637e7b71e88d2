// Elo Ratings
//
// Copyright (c) 2021, 2024  Philip Kaludercic
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

package sched

import (
	"log"
	"math"

	"go-ttt"
)

const (
	MAX_DIFF = 400
	EPS      = 0.0001
	K        = 20
	INITIAL  = 1000
)

// Calculate the new ELO ratings of two agents, where the first one
// scored S (1 for a win, 0.5 for a draw, 0 for a loss) according to
// https://de.wikipedia.org/wiki/Elo-Zahl#Erwartungswert
func elo(ra, rb, s float64) (float64, float64) {
	diff := math.Max(-MAX_DIFF, math.Min(rb-ra, MAX_DIFF))

	ea := 1 / (1 + math.Pow(10, diff/MAX_DIFF))
	eb := 1 / (1 + math.Pow(10, -diff/MAX_DIFF))

	if math.Abs((ea+eb)-1) > EPS {
		log.Printf("Numerical instability detected: %f + %f = %f != 1.0", ea, eb, ea+eb)
		return ra, rb
	}

	return ra + K*(s-ea), rb + K*((1-s)-eb)
}

// Ratings replays all finished games in order and returns the
// resulting Elo rating of every agent
func (s *Scheduler) Ratings() map[ttt.Agent]float64 {
	ratings := make(map[ttt.Agent]float64, len(s.agents))
	for _, a := range s.agents {
		ratings[a] = INITIAL
	}

	for _, g := range s.Games() {
		var r float64
		switch g.Outcome {
		case ttt.MAX_WON:
			r = 1
		case ttt.MIN_WON:
			r = 0
		case ttt.DRAW:
			r = 0.5
		default:
			continue
		}
		ratings[g.Max], ratings[g.Min] = elo(ratings[g.Max], ratings[g.Min], r)
	}

	return ratings
}

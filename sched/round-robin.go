// Round Robin Scheduler
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

package sched

import (
	"go-ttt"
	"go-ttt/game"
)

// MakeRoundRobin lets every agent play every other agent ROUNDS
// times as MaxPlayer, with FIRST opening each game.
func MakeRoundRobin(rounds uint, first ttt.Side, agents ...ttt.Agent) *Scheduler {
	return &Scheduler{
		name:   "Round Robin",
		agents: agents,
		schedule: func(agents []ttt.Agent) (games []*ttt.Game) {
			for r := uint(0); r < rounds; r++ {
				for i, a := range agents {
					for j, b := range agents {
						if i == j {
							continue
						}
						games = append(games, game.Make(a, b, first))
					}
				}
			}
			return
		},
	}
}

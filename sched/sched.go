// Game Scheduler
//
// Copyright (c) 2022, 2023, 2024  Philip Kaludercic
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
	"context"
	"fmt"
	"io"
	"log"
	"runtime"
	"sort"
	"sync"
	"text/tabwriter"

	"go-ttt"
	"go-ttt/game"

	"golang.org/x/sync/errgroup"
)

type score struct{ w, l, d uint }

type Scheduler struct {
	name   string
	agents []ttt.Agent
	// Function to generate a schedule
	schedule func([]ttt.Agent) []*ttt.Game

	lock  sync.Mutex
	games []*ttt.Game
	score map[ttt.Agent]*score
}

func (s *Scheduler) String() string {
	return s.name
}

// Run plays all scheduled games, at most WORKERS at a time
func (s *Scheduler) Run(ctx context.Context, workers uint) error {
	games := s.schedule(s.agents)
	sched := make(chan *ttt.Game, len(games))
	for _, g := range games {
		sched <- g
	}
	close(sched)
	ttt.Debug.Println("Starting scheduler", s, "with", len(games), "games")

	if workers == 0 {
		workers = uint(runtime.NumCPU())
	}

	var done uint
	eg, ctx := errgroup.WithContext(ctx)
	for i := uint(0); i < workers; i++ {
		eg.Go(func() error {
			for g := range sched {
				if err := game.Play(ctx, g); err != nil {
					return err
				}

				s.lock.Lock()
				s.games = append(s.games, g)
				s.score = nil
				done++
				log.Printf("%d/%d (%s vs. %s) -> %s", done, len(games),
					g.Max, g.Min, g.Outcome)
				s.lock.Unlock()
			}
			return nil
		})
	}

	err := eg.Wait()
	ttt.Debug.Println("Completed scheduler", s)
	return err
}

// Games returns all finished games in the order they were scheduled
func (s *Scheduler) Games() []*ttt.Game {
	s.lock.Lock()
	defer s.lock.Unlock()

	games := append([]*ttt.Game(nil), s.games...)
	sort.Slice(games, func(i, j int) bool {
		return games[i].Id < games[j].Id
	})
	return games
}

// Score returns the number of wins, losses and draws of A
func (s *Scheduler) Score(a ttt.Agent) (w, l, d uint) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.score == nil {
		s.score = make(map[ttt.Agent]*score)
		for _, agent := range s.agents {
			s.score[agent] = &score{}
		}

		for _, g := range s.games {
			winner, won := g.Outcome.Winner()
			for _, side := range []ttt.Side{ttt.MaxPlayer, ttt.MinPlayer} {
				S, ok := s.score[g.Player(side)]
				if !ok {
					continue
				}
				switch {
				case !won:
					S.d++
				case winner == side:
					S.w++
				default:
					S.l++
				}
			}
		}
	}

	if sc, ok := s.score[a]; ok {
		return sc.w, sc.l, sc.d
	}
	return 0, 0, 0
}

func points(w, l, d uint) int {
	return 2*int(w) - 2*int(l) + int(d)
}

// PrintResults writes a score table and the game log to W
func (s *Scheduler) PrintResults(W io.Writer) error {
	games := s.Games()
	fmt.Fprintf(W, "Stage %q\n\n", s.name)
	if len(games) == 0 {
		_, err := fmt.Fprintln(W, "No games took place.")
		return err
	}

	// Order agents in order of score
	agents := append([]ttt.Agent(nil), s.agents...)
	sort.SliceStable(agents, func(i, j int) bool {
		return points(s.Score(agents[i])) > points(s.Score(agents[j]))
	})

	ratings := s.Ratings()
	tw := tabwriter.NewWriter(W, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "Agent\tWin\tLoss\tDraw\tScore\tElo")
	for _, a := range agents {
		w, l, d := s.Score(a)
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%.0f\n", a, w, l, d,
			points(w, l, d), ratings[a])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(W)
	fmt.Fprintln(tw, "Nr.\tMax Agent\tMin Agent\tResult\tBoard")
	for i, g := range games {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i+1,
			g.Max, g.Min, g.Outcome, g.Board)
	}
	return tw.Flush()
}

// Scheduler Tests
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

package sched

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"go-ttt"
	"go-ttt/bot"
)

func TestRoundRobinMinMax(t *testing.T) {
	a, b := bot.MakeMinMax(), bot.MakeMinMax()
	rr := MakeRoundRobin(2, ttt.MaxPlayer, a, b)
	if err := rr.Run(context.Background(), 2); err != nil {
		t.Fatal(err)
	}

	games := rr.Games()
	if len(games) != 4 {
		t.Fatalf("Expected 4 games, got %d", len(games))
	}
	for i := 1; i < len(games); i++ {
		if games[i-1].Id >= games[i].Id {
			t.Errorf("Games out of order: %d before %d",
				games[i-1].Id, games[i].Id)
		}
	}
	for _, agent := range []ttt.Agent{a, b} {
		if w, l, d := rr.Score(agent); w != 0 || l != 0 || d != 4 {
			t.Errorf("Expected four draws, got %d/%d/%d", w, l, d)
		}
	}

	var buf bytes.Buffer
	if err := rr.PrintResults(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, s := range []string{"Round Robin", "minmax", "Draw", "OXX/XOO/OXX"} {
		if !strings.Contains(out, s) {
			t.Errorf("Expected %q in the results:\n%s", s, out)
		}
	}
}

func TestRoundRobinRandom(t *testing.T) {
	var (
		a = bot.MakeRandom(1)
		b = bot.MakeRandom(2)
		c = bot.MakeRandom(3)
	)
	rr := MakeRoundRobin(3, ttt.MinPlayer, a, b, c)
	if err := rr.Run(context.Background(), 0); err != nil {
		t.Fatal(err)
	}

	var wins, losses uint
	for _, agent := range []ttt.Agent{a, b, c} {
		w, l, d := rr.Score(agent)
		// 3 rounds against 2 opponents on both sides
		if w+l+d != 12 {
			t.Errorf("Expected 12 games, got %d/%d/%d", w, l, d)
		}
		wins += w
		losses += l
	}
	if wins != losses {
		t.Errorf("%d wins do not match %d losses", wins, losses)
	}
	if n := len(rr.Games()); n != 18 {
		t.Errorf("Expected 18 games, got %d", n)
	}
}

func TestEmpty(t *testing.T) {
	rr := MakeRoundRobin(1, ttt.MaxPlayer, bot.MakeMinMax())
	if err := rr.Run(context.Background(), 1); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := rr.PrintResults(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No games took place.") {
		t.Errorf("Unexpected output %q", buf.String())
	}
}

func TestElo(t *testing.T) {
	for i, test := range []struct {
		ra, rb, s float64
		na, nb    float64
	}{
		{1000, 1000, 1, 1010, 990},
		{1000, 1000, 0, 990, 1010},
		{1000, 1000, 0.5, 1000, 1000},
		{1400, 1000, 1, 1400 + K*(1-1/(1+0.1)), 1000 + K*(0-1/(1+10.0))},
	} {
		na, nb := elo(test.ra, test.rb, test.s)
		if math.Abs(na-test.na) > EPS || math.Abs(nb-test.nb) > EPS {
			t.Errorf("[%d] Expected %f/%f, got %f/%f",
				i, test.na, test.nb, na, nb)
		}
	}
}

func TestRatings(t *testing.T) {
	a, b := bot.MakeMinMax(), bot.MakeMinMax()
	rr := MakeRoundRobin(1, ttt.MaxPlayer, a, b)
	if err := rr.Run(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	if n := len(rr.Games()); n != 2 {
		t.Fatalf("Expected 2 games, got %d", n)
	}

	ratings := rr.Ratings()
	if len(ratings) != 2 {
		t.Errorf("Expected 2 ratings, got %d", len(ratings))
	}
	for agent, r := range ratings {
		if r != INITIAL {
			t.Errorf("%s: draws must not change the rating, got %f", agent, r)
		}
	}
}

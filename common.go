// Common Interfaces and constants
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

package ttt

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type (
	Side    bool
	Cell    uint8
	Outcome uint8
)

// Possible sides, MaxPlayer is the searching side
const MaxPlayer, MinPlayer Side = false, true

const (
	// Possible cell contents
	Empty Cell = iota
	MaxMark
	MinMark
)

const (
	// Possible board classifications
	ONGOING Outcome = iota
	MAX_WON
	MIN_WON
	DRAW
)

var (
	ErrInvalidMove = errors.New("invalid move")
	ErrNoLegalMove = errors.New("no legal move")
)

func (o Outcome) String() string {
	switch o {
	case ONGOING:
		return "Ongoing"
	case MAX_WON:
		return "Max won"
	case MIN_WON:
		return "Min won"
	case DRAW:
		return "Draw"
	default:
		panic(fmt.Sprintf("Illegal outcome: %d", o))
	}
}

// Over returns true if no further moves can be made
func (o Outcome) Over() bool { return o != ONGOING }

// Winner returns the side that won, if any
func (o Outcome) Winner() (Side, bool) {
	switch o {
	case MAX_WON:
		return MaxPlayer, true
	case MIN_WON:
		return MinPlayer, true
	}
	return MaxPlayer, false
}

func (s Side) String() string {
	switch s {
	case MaxPlayer:
		return "Max"
	case MinPlayer:
		return "Min"
	}
	panic("Illegal side")
}

func (s Side) Opponent() Side { return !s }

// Cell returns the mark SIDE leaves on the board
func (s Side) Cell() Cell {
	if s == MinPlayer {
		return MinMark
	}
	return MaxMark
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "."
	case MaxMark:
		return "X"
	case MinMark:
		return "O"
	}
	panic(fmt.Sprintf("Illegal cell: %d", c))
}

type Agent interface {
	fmt.Stringer
	Request(context.Context, *Game) (*Move, error)
}

type Game struct {
	// The board the game is being played on
	Board   Board
	Id      uint64
	Max     Agent
	Min     Agent
	Current Side
	Outcome Outcome
	Moves   []*Move
}

func (g *Game) Player(s Side) Agent {
	switch s {
	case MaxPlayer:
		return g.Max
	case MinPlayer:
		return g.Min
	default:
		panic("Unknown Agent")
	}
}

func (g *Game) Active() Agent {
	return g.Player(g.Current)
}

func (g *Game) String() string {
	return fmt.Sprintf("#%d (%s vs. %s)", g.Id, g.Max, g.Min)
}

type Move struct {
	Choice  uint
	Comment string
	Agent   Agent
	State   Board
	Stamp   time.Time
}

// Tic-Tac-Toe Board Implementation
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
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Size is the number of cells on a board
const Size = 9

var repr = regexp.MustCompile(`^\s*([xXoO._-]{3})/?([xXoO._-]{3})/?([xXoO._-]{3})\s*$`)

// All rows, columns and diagonals that win the game
var lines = [...][3]uint{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Board represents a 3x3 position, indexed in row-major order.
//
// A Board is a value, so assigning or passing it creates an
// independent snapshot that later placements cannot affect.
type Board [Size]Cell

// Parse reads a board in the notation produced by String
func Parse(spec string) (Board, error) {
	var b Board

	match := repr.FindStringSubmatch(spec)
	if match == nil {
		return b, errors.New("invalid specification")
	}

	for i, c := range strings.Join(match[1:], "") {
		switch c {
		case 'x', 'X':
			b[i] = MaxMark
		case 'o', 'O':
			b[i] = MinMark
		default:
			b[i] = Empty
		}
	}

	x, o := b.Count(MaxPlayer), b.Count(MinPlayer)
	if x > o+1 || o > x+1 {
		return b, fmt.Errorf("unbalanced board (%d against %d marks)", x, o)
	}
	if x, o := b.completed(); x && o {
		return b, errors.New("both sides have completed a line")
	}
	return b, nil
}

// String converts a board into its textual representation
func (b Board) String() string {
	var buf strings.Builder

	for i, c := range b {
		if i > 0 && i%3 == 0 {
			buf.WriteByte('/')
		}
		buf.WriteString(c.String())
	}

	return buf.String()
}

// Legal returns true if I is an empty cell on the board
func (b Board) Legal(i uint) bool {
	return i < Size && b[i] == Empty
}

// Moves lists all empty cells in ascending order
func (b Board) Moves() []uint {
	moves := make([]uint, 0, Size)
	for i := uint(0); i < Size; i++ {
		if b.Legal(i) {
			moves = append(moves, i)
		}
	}
	return moves
}

// Count returns the number of marks SIDE has placed
func (b Board) Count(side Side) (n uint) {
	mark := side.Cell()
	for _, c := range b {
		if c == mark {
			n++
		}
	}
	return
}

// Turn returns the side to move, assuming FIRST opened the game
func (b Board) Turn(first Side) Side {
	if b.Count(first) > b.Count(!first) {
		return !first
	}
	return first
}

// Place returns a copy of the board where SIDE has marked cell I
func (b Board) Place(i uint, side Side) (Board, error) {
	if i >= Size {
		return b, fmt.Errorf("%w: cell %d out of range", ErrInvalidMove, i)
	}
	if b[i] != Empty {
		return b, fmt.Errorf("%w: cell %d is occupied by %s",
			ErrInvalidMove, i, b[i])
	}

	b[i] = side.Cell()
	return b, nil
}

// Delta returns the cell that was marked to turn the board into NEXT
func (b Board) Delta(next Board) (uint, bool) {
	var (
		cell  uint
		found bool
	)

	for i := range b {
		if b[i] == next[i] {
			continue
		}
		if found || b[i] != Empty {
			return 0, false
		}
		cell, found = uint(i), true
	}

	return cell, found
}

// Swap exchanges the marks of both sides
func (b Board) Swap() Board {
	for i, c := range b {
		switch c {
		case MaxMark:
			b[i] = MinMark
		case MinMark:
			b[i] = MaxMark
		}
	}
	return b
}

// completed reports which sides own at least one full line
func (b Board) completed() (x, o bool) {
	for _, l := range lines {
		c := b[l[0]]
		if c == Empty || c != b[l[1]] || c != b[l[2]] {
			continue
		}
		switch c {
		case MaxMark:
			x = true
		case MinMark:
			o = true
		}
	}
	return
}

// Classify determines if the game has been won, drawn or is ongoing
func (b Board) Classify() Outcome {
	x, o := b.completed()
	switch {
	case x && o:
		// Boards are only ever derived by single placements,
		// so this cannot be reached.
		panic(fmt.Sprintf("Both sides won on %s", b))
	case x:
		return MAX_WON
	case o:
		return MIN_WON
	}

	for _, c := range b {
		if c == Empty {
			return ONGOING
		}
	}
	return DRAW
}

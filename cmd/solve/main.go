// Entry point
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

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"go-ttt"
	"go-ttt/bot"
	cmd "go-ttt/cmd"
)

func main() {
	side := flag.String("side", "", "Side to move (max or min), inferred from the board if empty")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [flags] BOARD\n\nBOARD is written like XO./.X./..O\n\n",
			os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	var conf cmd.Conf
	conf.Load()

	board, err := ttt.Parse(flag.Arg(0))
	if err != nil {
		log.Fatalf("%q: %s", flag.Arg(0), err)
	}

	first, err := conf.FirstSide()
	if err != nil {
		log.Fatal(err)
	}
	toMove := board.Turn(first)
	if *side != "" {
		conf.Game.First = *side
		toMove, err = conf.FirstSide()
		if err != nil {
			log.Fatal(err)
		}
	}

	ctx := context.Background()
	if conf.Search.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, conf.Search.Timeout)
		defer cancel()
	}

	next, ev, err := bot.FindBestMoveContext(ctx, board, toMove)
	if err != nil {
		log.Fatal(err)
	}
	cell, _ := board.Delta(next)
	ttt.Debug.Printf("%s -> %s", board, next)

	fmt.Printf("%s plays %d (row %d, column %d): %s\n",
		toMove, cell, cell/3+1, cell%3+1, next)
	switch {
	case ev > 0:
		fmt.Printf("Max wins in %d plies (%d)\n", bot.Win-ev, ev)
	case ev < 0:
		fmt.Printf("Min wins in %d plies (%d)\n", bot.Win+ev, ev)
	default:
		fmt.Println("Draw with best play (0)")
	}
}

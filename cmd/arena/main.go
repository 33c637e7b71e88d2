// Entry point
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

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"go-ttt"
	"go-ttt/bot"
	cmd "go-ttt/cmd"
	"go-ttt/sched"
)

func main() {
	flag.Parse()
	if flag.NArg() != 0 {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Too many arguments passed to %s.\nUsage:\n",
			os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	var conf cmd.Conf
	conf.Load()

	first, err := conf.FirstSide()
	if err != nil {
		log.Fatal(err)
	}

	var agents []ttt.Agent
	for i, name := range conf.Arena.Agents {
		a, err := bot.Make(name, conf.Search.Timeout, conf.Arena.Seed+int64(i))
		if err != nil {
			log.Fatal(err)
		}
		agents = append(agents, a)
	}
	if len(agents) < 2 {
		log.Fatal("The arena needs at least two agents")
	}

	// Catch an interrupt request
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rr := sched.MakeRoundRobin(conf.Arena.Rounds, first, agents...)
	if err := rr.Run(ctx, conf.Arena.Workers); err != nil {
		log.Println(err)
	}

	if err := rr.PrintResults(os.Stdout); err != nil {
		log.Fatal(err)
	}
}

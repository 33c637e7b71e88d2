// Configuration
//
// Copyright (c) 2021, 2022, 2023, 2024  Philip Kaludercic
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

package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"go-ttt"

	"github.com/BurntSushi/toml"
)

const defconf = "go-ttt.toml"

func init() {
	def := &defaultConfig

	flag.DurationVar(&def.Search.Timeout, "timeout", def.Search.Timeout,
		"Time a search may take before giving up (0 disables the limit)")
	flag.StringVar(&def.Game.First, "first", def.Game.First,
		"Side that opens a game (max or min)")

	flag.UintVar(&def.Arena.Rounds, "rounds", def.Arena.Rounds,
		"Number of times every pairing is played")
	flag.UintVar(&def.Arena.Workers, "workers", def.Arena.Workers,
		"Number of games played concurrently")
	flag.Int64Var(&def.Arena.Seed, "seed", def.Arena.Seed,
		"Seed for random agents")
	flag.Func("agents", "Comma separated list of agents to enter into the arena",
		func(s string) error {
			def.Arena.Agents = strings.Split(s, ",")
			return nil
		})

	flag.BoolVar(&debug, "debug", debug, "Enable debug output")
	flag.BoolVar(&silent, "silent", silent, "Disable regular output")
	flag.BoolVar(&dump, "dump-config", dump, "Dump configuration to standard output")
	flag.StringVar(&cfile, "conf", cfile, "Path to configuration file")
}

type SearchConf struct {
	Timeout time.Duration `toml:"timeout"`
}

type GameConf struct {
	First string `toml:"first"`
}

type ArenaConf struct {
	Rounds  uint     `toml:"rounds"`
	Workers uint     `toml:"workers"`
	Agents  []string `toml:"agents"`
	Seed    int64    `toml:"seed"`
}

// Internal representation
type Conf struct {
	Search SearchConf `toml:"search"`
	Game   GameConf   `toml:"game"`
	Arena  ArenaConf  `toml:"arena"`
}

// Configuration object used by default
var defaultConfig = Conf{
	Search: SearchConf{
		Timeout: 0,
	},
	Game: GameConf{
		First: "max",
	},
	Arena: ArenaConf{
		Rounds:  1,
		Workers: 4,
		Agents:  []string{"alpha-beta", "minmax", "random"},
		Seed:    1,
	},
}

var (
	debug  = false
	silent = false
	dump   = false
	cfile  = defconf
)

// Decode reads a configuration from R on top of the defaults
func Decode(r io.Reader) (*Conf, error) {
	c := defaultConfig
	c.Arena.Agents = append([]string(nil), defaultConfig.Arena.Agents...)

	if _, err := toml.NewDecoder(r).Decode(&c); err != nil {
		return nil, err
	}
	if _, err := c.FirstSide(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load the configuration file, if present, and apply the logging
// flags.  Command line flags have already been applied to the
// defaults, so the configuration file overrides them.
func (c *Conf) Load() {
	*c = defaultConfig

	file, err := os.Open(cfile)
	if err != nil {
		if !os.IsNotExist(err) || cfile != defconf {
			log.Fatal(err)
		}
	} else {
		defer file.Close()
		d, err := Decode(file)
		if err != nil {
			log.Fatalf("%s: %s", cfile, err)
		}
		*c = *d
	}

	switch {
	case debug:
		ttt.Debug.SetOutput(os.Stderr)
		log.Default().SetFlags(log.LstdFlags | log.Lshortfile)
		ttt.Debug.Println("Debug logging has been enabled")
	case silent:
		log.Default().SetOutput(io.Discard)
	}

	// Dump the configuration onto the disk if requested
	if dump {
		err = c.Dump(os.Stdout)
		if err != nil {
			log.Fatalln("Failed to dump default configuration:", err)
		}
		os.Exit(0)
	}
}

// FirstSide interprets the side configured to open a game
func (c *Conf) FirstSide() (ttt.Side, error) {
	switch strings.ToLower(strings.TrimSpace(c.Game.First)) {
	case "max", "x":
		return ttt.MaxPlayer, nil
	case "min", "o":
		return ttt.MinPlayer, nil
	}
	return ttt.MaxPlayer, fmt.Errorf("unknown side %q", c.Game.First)
}

// Serialise the configuration into a writer
func (c *Conf) Dump(wr io.Writer) error {
	return toml.NewEncoder(wr).Encode(c)
}

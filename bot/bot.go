// Agent Registry
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

package bot

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"go-ttt"
)

// Counter for agents that carry no other state
var agents atomic.Uint64

// Names accepted by Make
var Names = []string{"alpha-beta", "minmax", "random"}

// Make creates an agent by NAME.  TIMEOUT limits each alpha-beta
// search, SEED initialises random agents.
func Make(name string, timeout time.Duration, seed int64) (ttt.Agent, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "alpha-beta", "alphabeta", "ab":
		return MakeAlphaBeta(timeout), nil
	case "minmax", "minimax", "mm":
		return MakeMinMax(), nil
	case "random", "rand":
		return MakeRandom(seed), nil
	}
	return nil, fmt.Errorf("unknown agent %q (known: %s)",
		name, strings.Join(Names, ", "))
}

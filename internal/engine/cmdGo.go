// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package engine

import (
	"errors"
	"math"
	"strconv"

	"github.com/kavu-chess/corvid/pkg/book"
	"github.com/kavu-chess/corvid/pkg/move"
	"github.com/kavu-chess/corvid/pkg/piece"
	"github.com/kavu-chess/corvid/pkg/search"
	"github.com/kavu-chess/corvid/pkg/search/time"
	"github.com/kavu-chess/corvid/pkg/uci/cmd"
	"github.com/kavu-chess/corvid/pkg/uci/flag"
)

// bookMove looks up engine's opening book for the current position and
// returns its first recorded continuation, if any. Book lookup only
// ever shortens the search; any failure to resolve a recorded move
// against the current position falls through to a normal search.
func bookMove(engine Engine) (move.Move, bool) {
	packed, found := engine.book.Lookup(engine.search.Position.Hash)
	if !found || len(packed) == 0 {
		return move.Null, false
	}

	from, to := book.Unpack(packed[0])
	m, err := engine.search.Position.MoveFromSquares(from, to)
	if err != nil {
		return move.Null, false
	}

	return m, true
}

func parseSearchLimits(engine Engine, values flag.Values) (search.Limits, error) {
	var limits search.Limits

	limits.Depth = search.MaxDepth
	if depth := values["depth"]; depth.Set {
		d, _ := strconv.Atoi(depth.Value.(string))
		limits.Depth = d
	}

	limits.Nodes = math.MaxInt32
	if nodes := values["nodes"]; nodes.Set {
		n, _ := strconv.Atoi(nodes.Value.(string))
		limits.Nodes = n
	}

	switch {
	case values["movetime"].Set:
		t, err := strconv.Atoi(values["movetime"].Value.(string))
		if err != nil {
			return limits, err
		}

		limits.Time = &time.MoveManager{Duration: t}

	case values["wtime"].Set:
		tc := &time.NormalManager{Us: engine.search.Position.SideToMove}

		var err error

		tc.Time[piece.White], err = strconv.Atoi(values["wtime"].Value.(string))
		if err != nil {
			return limits, err
		}

		tc.Time[piece.Black], err = strconv.Atoi(values["btime"].Value.(string))
		if err != nil {
			return limits, err
		}

		if values["winc"].Set {
			tc.Increment[piece.White], err = strconv.Atoi(values["winc"].Value.(string))
			if err != nil {
				return limits, err
			}

			tc.Increment[piece.Black], err = strconv.Atoi(values["binc"].Value.(string))
			if err != nil {
				return limits, err
			}
		}

		if values["movestogo"].Set {
			tc.MovesToGo, err = strconv.Atoi(values["movestogo"].Value.(string))
			if err != nil {
				return limits, err
			}
		}

		limits.Time = tc

	case values["infinite"].Set:
		limits.Infinite = true
		limits.Time = &time.InfiniteManager{}

	default:
		limits.Time = &time.MoveManager{Duration: math.MaxInt32}
	}

	return limits, nil
}

func newCmdGo(engine Engine) cmd.Command {
	schema := flag.NewSchema()

	schema.Single("wtime")
	schema.Single("btime")
	schema.Single("winc")
	schema.Single("binc")
	schema.Single("movestogo")
	schema.Single("depth")
	schema.Single("nodes")
	schema.Single("movetime")
	schema.Button("infinite")

	return cmd.Command{
		Name: "go",
		Run: func(interaction cmd.Interaction) error {
			if engine.search.InProgress() {
				return errors.New("error: search currently in progress")
			}

			if m, ok := bookMove(engine); ok {
				interaction.Replyf("bestmove %s", m)
				return nil
			}

			limits, err := parseSearchLimits(engine, interaction.Values)
			if err != nil {
				return err
			}

			pv, _, err := engine.search.Search(limits)
			if err != nil {
				return err
			}

			interaction.Replyf("bestmove %s ponder %s", pv.Move(0), pv.Move(1))
			return nil
		},
		// execution of this function should not block the prompt loop
		Parallel: true,
		Flags:    schema,
	}
}

func newCmdStop(engine Engine) cmd.Command {
	return cmd.Command{
		Name: "stop",
		Run: func(interaction cmd.Interaction) error {
			engine.search.Stop()
			return nil
		},
	}
}

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
	"strings"

	"github.com/kavu-chess/corvid/pkg/position"
	"github.com/kavu-chess/corvid/pkg/search"
	"github.com/kavu-chess/corvid/pkg/uci/cmd"
	"github.com/kavu-chess/corvid/pkg/uci/flag"
)

// startpos is the starting position's FEN, pre-split into fields so its
// length can size the "fen" array flag.
var startpos = strings.Fields(position.StartFEN)

func newCmdUciNewGame(engine Engine) cmd.Command {
	return cmd.Command{
		Name: "ucinewgame",
		Run: func(interaction cmd.Interaction) error {
			*engine.search = search.NewContext(position.New())
			return nil
		},
	}
}

// parsePositionFlags builds a Position from the "startpos"/"fen" flags
// and plays out any "moves" on top of it. A move that is not legal in
// the position reached so far is skipped.
func parsePositionFlags(values flag.Values) (*position.Position, error) {
	var pos *position.Position

	switch {
	case values["startpos"].Set:
		pos = position.New()
	case values["fen"].Set:
		fen := strings.Join(values["fen"].Value.([]string), " ")
		var err error
		pos, err = position.NewFromFEN(fen)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("position: no startpos or fen option")
	}

	if values["moves"].Set {
		for _, s := range values["moves"].Value.([]string) {
			m, err := pos.MoveFromUCI(s)
			if err != nil {
				continue
			}
			pos.MakeMove(m)
		}
	}

	return pos, nil
}

func newCmdPosition(engine Engine) cmd.Command {
	schema := flag.NewSchema()

	schema.Array("fen", len(startpos))
	schema.Button("startpos")

	schema.Variadic("moves")

	return cmd.Command{
		Name: "position",
		Run: func(interaction cmd.Interaction) error {
			pos, err := parsePositionFlags(interaction.Values)
			if err != nil {
				return err
			}

			engine.search.Position = pos
			return nil
		},
		Flags: schema,
	}
}

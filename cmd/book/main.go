// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

// Command book reads a PGN game collection and writes a binary opening
// book file: for every position reached within the first bookDepth
// plies of a game, the move actually played there is recorded.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/notnil/chess"
	"github.com/schollz/progressbar/v3"

	"github.com/kavu-chess/corvid/pkg/book"
	"github.com/kavu-chess/corvid/pkg/position"
)

// bookDepth is how many plies from the start of each game are recorded.
// Opening theory is shallow; deeper than this the book would just be
// memorizing one game's middlegame, not a genuine opening line.
const bookDepth = 20

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: book <games.pgn> <book.bin>")
	}

	games, err := readGames(os.Args[1])
	if err != nil {
		return err
	}

	out := make(book.Book)

	bar := progressbar.NewOptions(
		len(games),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetItsString("game"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
	)

	for _, game := range games {
		addGame(out, game)
		_ = bar.Add(1)
	}
	_ = bar.Close()

	f, err := os.Create(os.Args[2])
	if err != nil {
		return err
	}
	defer f.Close()

	written, err := out.WriteTo(f)
	if err != nil {
		return err
	}

	fmt.Printf("book: wrote %d positions (%d bytes) from %d games\n", len(out), written, len(games))
	return nil
}

// readGames splits a multi-game PGN file into individual *chess.Game
// values, one per "[Event ...]"-delimited block.
func readGames(path string) ([]*chess.Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var blocks []string
	var current strings.Builder

	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "[Event ") && current.Len() > 0 {
			blocks = append(blocks, current.String())
			current.Reset()
		}
		current.WriteString(line)
		current.WriteByte('\n')
	}
	if current.Len() > 0 {
		blocks = append(blocks, current.String())
	}

	games := make([]*chess.Game, 0, len(blocks))
	for _, block := range blocks {
		decode, err := chess.PGN(strings.NewReader(block))
		if err != nil {
			// a malformed game block is skipped rather than aborting
			// the whole generation run
			continue
		}

		games = append(games, chess.NewGame(decode))
	}

	return games, nil
}

// addGame replays game's opening plies on a fresh standard-start
// position, recording the move played at each hash encountered. A game
// move that doesn't parse against our own move generator (e.g. an
// exotic variant tag notnil/chess accepted but we don't) stops the
// replay of that game early rather than corrupting the book.
func addGame(out book.Book, game *chess.Game) {
	pos := position.New()

	moves := game.Moves()
	if len(moves) > bookDepth {
		moves = moves[:bookDepth]
	}

	for _, gm := range moves {
		uci := gm.S1().String() + gm.S2().String()
		if promo := gm.Promo(); promo != chess.NoPieceType {
			uci += strings.ToLower(promo.String())
		}

		m, err := pos.MoveFromUCI(uci)
		if err != nil {
			return
		}

		hashBefore := pos.Hash
		out.Add(hashBefore, book.Pack(m.Source(), m.Target()))

		pos.MakeMove(m)
	}
}

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

// Package engine wires the position, search, and transposition-table
// packages together into UCI commands.
package engine

import (
	"os"

	"github.com/kavu-chess/corvid/pkg/book"
	"github.com/kavu-chess/corvid/pkg/position"
	"github.com/kavu-chess/corvid/pkg/search"
	"github.com/kavu-chess/corvid/pkg/uci"
	"github.com/kavu-chess/corvid/pkg/uci/option"
)

// defaultHashMB is the transposition table size used before the GUI
// sends its own "setoption name Hash" command.
const defaultHashMB = 16

// NewClient creates a uci.Client with every engine command registered,
// searching from the standard starting position.
func NewClient() uci.Client {
	client := uci.NewClient()

	context := search.NewContext(position.New())
	engine := Engine{
		search:  &context,
		options: option.NewSchema(),
		// allocated once: every command holds its own copy of Engine,
		// so the book must be mutated in place to stay visible to all
		// of them rather than replaced wholesale.
		book: make(book.Book),
	}

	engine.options.AddOption("Hash", &option.Spin{
		Default: defaultHashMB,
		Min:     1,
		Max:     33554432,
		Storage: func(mb int) error {
			engine.search.Resize(mb)
			return nil
		},
	})

	engine.options.AddOption("Book", &option.String{
		Default: "",
		Storage: func(path string) error {
			for hash := range engine.book {
				delete(engine.book, hash)
			}

			if path == "" {
				return nil
			}

			f, err := os.Open(path)
			if err != nil {
				// opening-book I/O failure degrades to "no book move"
				return nil
			}
			defer f.Close()

			loaded, err := book.NewReader(f)
			if err != nil {
				return nil
			}

			for hash, moves := range loaded {
				engine.book[hash] = moves
			}

			return nil
		},
	})

	_ = engine.options.SetDefaults()

	client.AddCommand(newCmdD(engine))
	client.AddCommand(newCmdUci(engine))
	client.AddCommand(newCmdUciNewGame(engine))
	client.AddCommand(newCmdGo(engine))
	client.AddCommand(newCmdPosition(engine))
	client.AddCommand(newCmdStop(engine))
	client.AddCommand(newCmdSetOption(engine))

	return client
}

// Engine holds the search context and UCI option schema shared by every
// UCI command.
type Engine struct {
	search  *search.Context
	options option.Schema
	book    book.Book
}

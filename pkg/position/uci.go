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

package position

import (
	"fmt"

	"github.com/kavu-chess/corvid/pkg/move"
	"github.com/kavu-chess/corvid/pkg/piece"
	"github.com/kavu-chess/corvid/pkg/square"
)

// MoveFromUCI parses a move given in UCI long algebraic notation (e.g.
// "e2e4" or "e7e8q") by matching it against the position's legal moves,
// so the returned move always carries correct capture/castle/en-passant
// metadata.
func (p *Position) MoveFromUCI(s string) (move.Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return move.Null, fmt.Errorf("move %q: invalid length", s)
	}

	from := square.NewFromString(s[0:2])
	to := square.NewFromString(s[2:4])

	promotion := piece.NoType
	if len(s) == 5 {
		promotion = piece.NewFromString(string(s[4])).Type()
	}

	var list move.List
	p.GenerateMoves(&list, false)

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.Source() != from || m.Target() != to {
			continue
		}
		if !m.IsPromotion() && promotion == piece.NoType {
			return m, nil
		}
		if m.IsPromotion() && m.PromotionType() == promotion {
			return m, nil
		}
	}

	return move.Null, fmt.Errorf("move %q: not legal in this position", s)
}

// MoveFromSquares finds the legal, non-promotion move between from and
// to, as used to resolve opening-book entries (the book's packed move
// format has no promotion field).
func (p *Position) MoveFromSquares(from, to square.Square) (move.Move, error) {
	var list move.List
	p.GenerateMoves(&list, false)

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.Source() == from && m.Target() == to && !m.IsPromotion() {
			return m, nil
		}
	}

	return move.Null, fmt.Errorf("book move %s%s: not legal in this position", from, to)
}

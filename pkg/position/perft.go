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

import "github.com/kavu-chess/corvid/pkg/move"

// Perft counts the number of legal move paths of the given depth from
// the current position. It is used to validate move generation against
// known node counts for a set of reference positions.
func (p *Position) Perft(depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var list move.List
	p.GenerateMoves(&list, false)

	if depth == 1 {
		return uint64(list.Len())
	}

	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		p.MakeMove(list.At(i))
		nodes += p.Perft(depth - 1)
		p.UnmakeMove()
	}

	return nodes
}

// Divide behaves like Perft but returns the node count contributed by
// each of the position's legal moves individually, useful for finding
// which branch of a move generation bug a wrong node count comes from.
func (p *Position) Divide(depth int) map[string]uint64 {
	counts := make(map[string]uint64)

	var list move.List
	p.GenerateMoves(&list, false)

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		p.MakeMove(m)
		counts[m.String()] = p.Perft(depth - 1)
		p.UnmakeMove()
	}

	return counts
}

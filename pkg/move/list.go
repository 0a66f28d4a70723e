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

package move

// MaxMoves is the maximum number of legal moves possible in any chess
// position, used to size List so that move generation never allocates.
const MaxMoves = 218

// List is a fixed-capacity, zero-allocation list of moves, used as the
// output of move generation and filled fresh on every search node.
type List struct {
	moves [MaxMoves]Move
	n     int
}

// Len returns the number of moves currently in the list.
func (l *List) Len() int {
	return l.n
}

// At returns the ith move in the list.
func (l *List) At(i int) Move {
	return l.moves[i]
}

// Add appends a move to the list.
func (l *List) Add(m Move) {
	l.moves[l.n] = m
	l.n++
}

// Clear empties the list without releasing its backing array.
func (l *List) Clear() {
	l.n = 0
}

// Slice returns the populated prefix of the list's backing array. The
// returned slice aliases the list's storage and is only valid until the
// list is reused.
func (l *List) Slice() []Move {
	return l.moves[:l.n]
}

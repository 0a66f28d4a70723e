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

// Package square declares constants representing every square on a
// chessboard, and related utility functions.
//
// Squares use the LERF (little-endian rank-file) mapping: square index
// i has file = i mod 8 (a=0...h=7) and rank = i div 8 (1=0...8=7), so
// a1 = 0 and h8 = 63. The null square is represented using the "-"
// symbol in algebraic notation.
package square

// NewFromString creates a Square from its algebraic id, e.g. "e4".
func NewFromString(id string) Square {
	switch {
	case id == "-":
		return None
	case len(id) != 2:
		return None
	}

	return New(FileFrom(id[0:1]), RankFrom(id[1:2]))
}

// New creates a Square from the given file and rank.
func New(file File, rank Rank) Square {
	return Square(int(rank)<<3 | int(file))
}

// Square represents a square on a chessboard using LERF numbering.
type Square int8

// constants representing various squares
const (
	None Square = -1

	A1, B1, C1, D1, E1, F1, G1, H1 Square = 0, 1, 2, 3, 4, 5, 6, 7
	A2, B2, C2, D2, E2, F2, G2, H2 Square = 8, 9, 10, 11, 12, 13, 14, 15
	A3, B3, C3, D3, E3, F3, G3, H3 Square = 16, 17, 18, 19, 20, 21, 22, 23
	A4, B4, C4, D4, E4, F4, G4, H4 Square = 24, 25, 26, 27, 28, 29, 30, 31
	A5, B5, C5, D5, E5, F5, G5, H5 Square = 32, 33, 34, 35, 36, 37, 38, 39
	A6, B6, C6, D6, E6, F6, G6, H6 Square = 40, 41, 42, 43, 44, 45, 46, 47
	A7, B7, C7, D7, E7, F7, G7, H7 Square = 48, 49, 50, 51, 52, 53, 54, 55
	A8, B8, C8, D8, E8, F8, G8, H8 Square = 56, 57, 58, 59, 60, 61, 62, 63
)

// N is the number of squares on a chessboard.
const N = 64

// String converts a Square to its algebraic string representation.
func (s Square) String() string {
	if s == None {
		return "-"
	}

	return s.File().String() + s.Rank().String()
}

// File returns the file of the given square.
func (s Square) File() File {
	return File(s) & 7
}

// Rank returns the rank of the given square.
func (s Square) Rank() Rank {
	return Rank(s) >> 3
}

// Diagonal returns the a1-h8-style diagonal index of the given square,
// constant along every south-west to north-east diagonal: rank - file,
// offset by 7 so that the index runs from 0 to 14.
func (s Square) Diagonal() int {
	return int(s.Rank()) - int(s.File()) + 7
}

// AntiDiagonal returns the anti-diagonal index of the given square,
// constant along every anti-diagonal (rank + file).
func (s Square) AntiDiagonal() int {
	return int(s.Rank()) + int(s.File())
}

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
	"errors"
	"strconv"
	"strings"

	"github.com/kavu-chess/corvid/pkg/castling"
	"github.com/kavu-chess/corvid/pkg/piece"
	"github.com/kavu-chess/corvid/pkg/square"
	"github.com/kavu-chess/corvid/pkg/zobrist"
)

// StartFEN is the FEN string of the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN reports that a FEN string did not have a valid number of
// space-separated fields. A FEN must have at least the piece placement,
// side to move, castling rights, and en passant fields; the half-move
// clock and full-move number are optional and default to 0 and 1.
var ErrInvalidFEN = errors.New("position: invalid fen: expected 4 to 6 fields")

// NewFromFEN parses a FEN string into a new Position.
// https://www.chessprogramming.org/Forsyth-Edwards_Notation
func NewFromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return nil, ErrInvalidFEN
	}

	// pad optional fields with their defaults
	for len(fields) < 6 {
		switch len(fields) {
		case 4:
			fields = append(fields, "0")
		case 5:
			fields = append(fields, "1")
		}
	}

	var p Position

	p.SideToMove = piece.NewColor(fields[1])
	if p.SideToMove == piece.Black {
		p.Hash ^= zobrist.SideToMove
	}

	ranks := strings.Split(fields[0], "/")
	for i := 0; i < len(ranks) && i < square.RankN; i++ {
		rank := square.Rank(square.RankN - 1 - i) // FEN ranks run 8 -> 1
		file := square.FileA

		for _, id := range ranks[i] {
			if id >= '1' && id <= '8' {
				file += square.File(id - '0')
				continue
			}

			if file > square.FileH {
				continue
			}

			pc := piece.NewFromString(string(id))
			if pc != piece.NoPiece {
				p.FillSquare(square.New(file, rank), pc)
			}

			file++
		}
	}

	p.CastlingRights = castling.NewRights(fields[2])
	p.Hash ^= zobrist.Castling[p.CastlingRights]

	p.EnPassantTarget = square.NewFromString(fields[3])
	if p.EnPassantTarget != square.None {
		p.Hash ^= zobrist.EnPassant[p.EnPassantTarget.File()]
	}

	p.DrawClock, _ = strconv.Atoi(fields[4])
	p.FullMoves, _ = strconv.Atoi(fields[5])
	if p.FullMoves == 0 {
		p.FullMoves = 1
	}

	return &p, nil
}

// FEN returns the FEN representation of the current position.
func (p *Position) FEN() string {
	var sb strings.Builder

	for r := square.Rank8; ; r-- {
		empty := 0
		for f := square.FileA; f <= square.FileH; f++ {
			pc := p.Mailbox[square.New(f, r)]
			if pc == piece.NoPiece {
				empty++
				continue
			}

			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}

		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}

		if r != square.Rank1 {
			sb.WriteByte('/')
		}
		if r == square.Rank1 {
			break
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.SideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(p.CastlingRights.String())
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassantTarget.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.DrawClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoves))

	return sb.String()
}

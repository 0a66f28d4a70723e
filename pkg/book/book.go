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

// Package book implements the binary opening-book format: repeated
// records of (u64 zobrist hash, u16 move count, u16 packed-move ×
// count), all little-endian. A packed move is (from<<8 | to), both
// 0..63 in the LERF numbering used by pkg/square.
package book

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/kavu-chess/corvid/pkg/square"
	"github.com/kavu-chess/corvid/pkg/zobrist"
)

// Pack encodes a from/to square pair into the book's on-disk move format.
func Pack(from, to square.Square) uint16 {
	return uint16(from)<<8 | uint16(to)
}

// Unpack decodes a packed move into its from and to squares.
func Unpack(packed uint16) (from, to square.Square) {
	return square.Square(packed >> 8), square.Square(packed & 0xff)
}

// Book maps a position's Zobrist hash to the set of moves recorded for
// it, deduplicated.
type Book map[zobrist.Key][]uint16

// NewReader reads a full opening book from r. A malformed record
// truncates the book at the last fully-read entry rather than
// returning a partial, corrupt Book.
func NewReader(r io.Reader) (Book, error) {
	br := bufio.NewReader(r)
	book := make(Book)

	for {
		var hash uint64
		if err := binary.Read(br, binary.LittleEndian, &hash); err != nil {
			if err == io.EOF {
				return book, nil
			}
			return book, err
		}

		var count uint16
		if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
			return book, err
		}

		moves := make([]uint16, count)
		for i := range moves {
			if err := binary.Read(br, binary.LittleEndian, &moves[i]); err != nil {
				return book, err
			}
		}

		book[zobrist.Key(hash)] = moves
	}
}

// Add records move as a legal continuation from the position with the
// given hash, deduplicating against moves already stored for it.
func (book Book) Add(hash zobrist.Key, packed uint16) {
	for _, existing := range book[hash] {
		if existing == packed {
			return
		}
	}

	book[hash] = append(book[hash], packed)
}

// Lookup returns the candidate moves recorded for the position with
// the given hash, or false if the position isn't in the book.
func (book Book) Lookup(hash zobrist.Key) ([]uint16, bool) {
	moves, found := book[hash]
	return moves, found
}

// WriteTo serializes book to w in the on-disk format.
func (book Book) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64

	for hash, moves := range book {
		if err := binary.Write(bw, binary.LittleEndian, uint64(hash)); err != nil {
			return written, err
		}
		written += 8

		if err := binary.Write(bw, binary.LittleEndian, uint16(len(moves))); err != nil {
			return written, err
		}
		written += 2

		for _, packed := range moves {
			if err := binary.Write(bw, binary.LittleEndian, packed); err != nil {
				return written, err
			}
			written += 2
		}
	}

	return written, bw.Flush()
}

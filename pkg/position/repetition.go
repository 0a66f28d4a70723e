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

// IsRepetition reports whether the current position's hash has already
// occurred at least n times earlier in the game, scanning back only as
// far as the last irreversible move (DrawClock reset), since positions
// before that can never recur.
func (p *Position) IsRepetition(n int) bool {
	count := 0

	// walk back two plys at a time: repetitions always occur on moves by
	// the same side, which are an even number of plys apart
	limit := p.Plys - p.DrawClock
	for ply := p.Plys - 2; ply >= limit && ply >= 0; ply -= 2 {
		if p.History[ply].Hash == p.Hash {
			count++
			if count >= n {
				return true
			}
		}
	}

	return false
}

// IsFiftyMoveDraw reports whether the fifty-move rule currently applies.
func (p *Position) IsFiftyMoveDraw() bool {
	return p.DrawClock >= 100
}

// IsDraw reports whether the position is a draw by the threefold
// repetition rule or the fifty-move rule. Insufficient material is not
// modeled, matching the search's reliance on evaluation to score such
// positions appropriately instead.
func (p *Position) IsDraw() bool {
	return p.IsFiftyMoveDraw() || p.IsRepetition(2)
}

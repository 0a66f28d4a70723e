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

// Package time implements various types and functions used to manage
// search time while searching a position.
package time

import (
	"time"

	"github.com/kavu-chess/corvid/pkg/piece"
)

// Manager represents a time manager.
type Manager interface {
	// GetDeadline calculates the optimal amount of time to be used
	// and sets a deadline internally for the search's end.
	GetDeadline()

	// ExtendDeadline is called when the engine wants to extend the
	// search's length. A deadline extension may fail.
	ExtendDeadline()

	// Expired reports if the search deadline has been crossed.
	Expired() bool
}

// NormalManager is the standard time manager for wtime/btime time
// controls: its deadline is one twentieth of the side to move's
// remaining time. Increment and MovesToGo are stored but not used in
// the calculation.
type NormalManager struct {
	Us piece.Color // side to move

	Time, Increment [piece.ColorN]int
	MovesToGo       int // moves to next time control

	deadline time.Time // search end deadline
}

// compile time check that NormalManager implements Manager
var _ Manager = (*NormalManager)(nil)

func (m *NormalManager) GetDeadline() {
	m.deadline = time.Now().Add((time.Duration(m.Time[m.Us]) * time.Millisecond) / 20)
}

func (m *NormalManager) ExtendDeadline() {
	m.deadline = m.deadline.Add((time.Duration(m.Time[m.Us]) * time.Millisecond) / 30)
}

func (m *NormalManager) Expired() bool {
	return time.Now().After(m.deadline)
}

// MoveManager is the time manager used when the gui wants to time a
// search by move-time. Extending its deadline is not possible.
type MoveManager struct {
	Duration int
	deadline time.Time
}

// compile time check that MoveManager implements Manager
var _ Manager = (*MoveManager)(nil)

func (m *MoveManager) GetDeadline() {
	m.deadline = time.Now().Add(time.Duration(m.Duration) * time.Millisecond)
}

func (m *MoveManager) ExtendDeadline() {
	// can't extend deadline: search time is fixed
}

func (m *MoveManager) Expired() bool {
	return time.Now().After(m.deadline)
}

// InfiniteManager never expires on its own; the search runs until
// explicitly stopped, as used for the UCI "go infinite" command.
type InfiniteManager struct{}

// compile time check that InfiniteManager implements Manager
var _ Manager = (*InfiniteManager)(nil)

func (m *InfiniteManager) GetDeadline()    {}
func (m *InfiniteManager) ExtendDeadline() {}
func (m *InfiniteManager) Expired() bool   { return false }

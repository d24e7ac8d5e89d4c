// Copyright (c) 2026 Foldbyte contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// github.com:foldbyte/hashsig/internal/rollhash/hash.go

// Package rollhash implements the streaming rolling hash that the signature
// engine samples from. A State holds the fixed-width sliding window of the
// last Window included bytes and the integer recurrence derived from them;
// Advance feeds one accepted byte in and returns the sample emitted once the
// window first fills (and on every byte thereafter).
//
// The defining property of this recurrence is that it must produce the exact
// same sequence of emitted samples no matter how the caller chunks the input
// -- Advance is called once per accepted byte specifically so State carries
// no notion of "chunk", only of "byte accepted so far".
package rollhash

const (
	// Window is the width, in accepted bytes, of the sliding window.
	Window = 8

	// shiftBase is the multiplier used by the polynomial recurrence.
	shiftBase = 3

	// stateMask keeps the polynomial portion of state bounded to its low
	// 20 bits. It is applied only to the polynomial term, never to the
	// additive ch<<20 term -- that placement is load-bearing for the
	// recurrence algebra and must not be "simplified" away.
	stateMask = 0x000FFFFF
)

// State is the mutable, per-signature rolling-hash state. The zero value
// behaves the same as the State NewState returns, since the first accepted
// byte resets the shift factor to 1.
type State struct {
	state  uint64
	shiftN uint64
	window [Window]byte
	winLen int
	winPos int
}

// NewState returns a fresh State ready to accept its first byte.
func NewState() *State {
	return &State{shiftN: 1}
}

// Advance feeds one already-filtered byte into the recurrence. It returns
// the freshly emitted 32-bit sample and true once the window has filled for
// the first time and on every subsequent accepted byte; it returns 0, false
// while still warming up (fewer than Window bytes accepted so far).
func (s *State) Advance(ch byte) (sample uint32, emitted bool) {
	if s.winLen < Window {
		return s.advanceWarmup(ch)
	}
	return s.advanceSteady(ch), true
}

// advanceWarmup implements the fewer-than-Window-accepted-bytes recurrence.
// Exactly one sample is ever emitted from warm-up: the one produced by the
// Window-th accepted byte.
func (s *State) advanceWarmup(ch byte) (sample uint32, emitted bool) {
	s.state = (s.state &^ stateMask) | ((s.state*shiftBase + uint64(ch)) & stateMask)
	s.state += uint64(ch) << 20

	if s.winLen == 0 {
		s.shiftN = 1
	} else {
		s.shiftN = (s.shiftN * shiftBase) & stateMask
	}

	s.window[s.winLen] = ch
	s.winLen++

	if s.winLen != Window {
		return 0, false
	}
	return uint32(s.state), true
}

// advanceSteady implements the window-full recurrence: retire the byte
// falling out of the window, mix in the new byte, and emit a sample for
// every accepted byte from here on.
func (s *State) advanceSteady(ch byte) uint32 {
	old := s.window[s.winPos]
	rmv := (s.shiftN + (1 << 20)) * uint64(old)

	s.state -= rmv
	s.state = (s.state &^ stateMask) | ((s.state * shiftBase) & stateMask)
	s.state = s.state + uint64(ch) + (uint64(ch) << 20)

	s.window[s.winPos] = ch
	s.winPos = (s.winPos + 1) % Window

	return uint32(s.state)
}

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
// github.com:foldbyte/hashsig/signature.go

// Package hashsig computes similarity signatures for byte streams and
// compares them to yield a bounded similarity score. A Signature is built
// once by a Builder and is immutable and safe for concurrent read-only
// comparison from then on.
package hashsig

import "fmt"

// K is the number of hashes retained on each side (min and max) of a
// Signature, and the fixed capacity of the builder's two internal heaps.
const K = 127

// Signature is the immutable fingerprint produced by a Builder. Two
// Signatures, built with any options, may always be compared with Compare.
type Signature struct {
	mins       []uint32 // ascending, length K
	maxs       []uint32 // ascending, length K
	opt        Options
	considered int
}

// Options reports the options the Signature was built with. Options are
// informational only -- Compare never requires them to match.
func (s *Signature) Options() Options {
	return s.opt
}

// MinHashes returns a copy of the K smallest mixed hashes retained, sorted
// ascending. Signature owns its arrays exclusively; callers get a copy so
// they cannot mutate a finalized Signature through the returned slice.
func (s *Signature) MinHashes() []uint32 {
	out := make([]uint32, len(s.mins))
	copy(out, s.mins)
	return out
}

// MaxHashes returns a copy of the K largest mixed hashes retained, sorted
// ascending.
func (s *Signature) MaxHashes() []uint32 {
	out := make([]uint32, len(s.maxs))
	copy(out, s.maxs)
	return out
}

// Considered reports how many samples were emitted while building s.
func (s *Signature) Considered() int {
	return s.considered
}

// InsufficientData is returned by Finish (and the SignatureFrom* helpers)
// when fewer than K samples were emitted for the input, so no Signature
// could be finalized.
type InsufficientData struct {
	Considered int
}

func (e *InsufficientData) Error() string {
	return fmt.Sprintf("hashsig: insufficient data for a signature: only %d of %d samples emitted", e.Considered, K)
}

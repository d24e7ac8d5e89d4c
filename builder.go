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
// github.com:foldbyte/hashsig/builder.go

package hashsig

import (
	"errors"

	"github.com/foldbyte/hashsig/internal/boundedheap"
	"github.com/foldbyte/hashsig/internal/rollhash"
)

// ErrFinished is returned by Feed or Finish when called on a Builder that
// has already been finalized. A Builder is meant to be consumed exactly
// once by Finish.
var ErrFinished = errors.New("hashsig: builder already finished")

type builderState uint8

const (
	building builderState = iota
	finalized
)

// Builder drives the rolling hasher across a stream of Feed calls, retaining
// the K smallest and K largest mixed samples seen, and finalizes into an
// immutable Signature. The zero value is not ready to use; construct with
// NewBuilder.
type Builder struct {
	state     builderState
	opt       Options
	prog      *rollhash.State
	sawLF     bool
	mins      *boundedheap.Heap[boundedheap.RetainSmallest]
	maxs      *boundedheap.Heap[boundedheap.RetainLargest]
	considered int
}

// NewBuilder allocates a Builder ready to accept bytes under the given
// Options.
func NewBuilder(opt Options) *Builder {
	return &Builder{
		opt:   opt,
		prog:  rollhash.NewState(),
		sawLF: true, // leading whitespace after a virtual line start is skipped under SmartWhitespace
		mins:  boundedheap.New[boundedheap.RetainSmallest](),
		maxs:  boundedheap.New[boundedheap.RetainLargest](),
	}
}

// Write satisfies io.Writer so a Builder can be the destination of io.Copy.
// It is equivalent to Feed.
func (b *Builder) Write(data []byte) (int, error) {
	return b.Feed(data)
}

// Feed consumes data, advancing the rolling hash over every byte the
// whitespace filter accepts. Feed is safe to call any number of times with
// chunks of any size (including zero-length slices); the result is
// bit-identical to feeding the concatenation of all chunks in one call.
func (b *Builder) Feed(data []byte) (int, error) {
	if b.state == finalized {
		return 0, ErrFinished
	}

	for _, ch := range data {
		if !rollhash.IncludeByte(b.opt, &b.sawLF, ch) {
			continue
		}

		sample, emitted := b.prog.Advance(ch)
		if !emitted {
			continue
		}

		mixed := rollhash.Mix(sample)
		b.mins.Insert(mixed)
		b.maxs.Insert(mixed)
		b.considered++
	}

	return len(data), nil
}

// Finish transitions the Builder to its finalized state and returns the
// completed Signature. The Builder is consumed: further Feed or Finish
// calls return ErrFinished. If fewer than K samples were ever emitted,
// Finish returns an *InsufficientData error instead of a Signature.
func (b *Builder) Finish() (*Signature, error) {
	if b.state == finalized {
		return nil, ErrFinished
	}
	b.state = finalized

	if b.considered < K {
		return nil, &InsufficientData{Considered: b.considered}
	}

	return &Signature{
		mins:       b.mins.Sorted(),
		maxs:       b.maxs.Sorted(),
		opt:        b.opt,
		considered: b.considered,
	}, nil
}

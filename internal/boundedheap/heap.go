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
// github.com:foldbyte/hashsig/internal/boundedheap/heap.go

// Package boundedheap implements a fixed-capacity array-backed binary heap
// with "insert-if-better-than-worst" semantics: once full, a new value only
// enters if it beats the current root, and the old root is evicted to make
// room. Two instantiations of the same generic heap retain the K smallest
// and K largest values seen across an arbitrary number of inserts, without
// ever carrying a runtime function pointer for the comparator.
package boundedheap

import "slices"

// Capacity is the fixed size of every BoundedHeap, pinned by the signature
// engine's cross-implementation contract.
const Capacity = 127

// Comparator orders two retained values. Compare(a, b) < 0 means a ranks
// closer to the root (i.e. a is the worse of the two to keep under this
// heap's retention policy, and is evicted first); > 0 means b ranks closer
// to the root; 0 means equal.
type Comparator interface {
	Compare(a, b uint32) int
}

// RetainSmallest is the comparator for a heap that keeps the Capacity
// smallest values observed: its root holds the largest retained value, so
// that the largest-so-far is the first candidate evicted by a smaller
// incoming value.
type RetainSmallest struct{}

func (RetainSmallest) Compare(a, b uint32) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}

// RetainLargest is the comparator for a heap that keeps the Capacity
// largest values observed: its root holds the smallest retained value.
type RetainLargest struct{}

func (RetainLargest) Compare(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Heap is a bounded binary heap of capacity Capacity, parameterized over a
// stateless Comparator type. The zero value is an empty, ready-to-use heap.
type Heap[C Comparator] struct {
	values [Capacity]uint32
	size   int
}

// New returns an empty heap. Equivalent to a zero-valued Heap[C]{}; provided
// for symmetry with the constructors of the module's other packages.
func New[C Comparator]() *Heap[C] {
	return &Heap[C]{}
}

// Len reports how many values are currently retained (0..Capacity).
func (h *Heap[C]) Len() int {
	return h.size
}

func (h *Heap[C]) cmp(a, b uint32) int {
	var c C
	return c.Compare(a, b)
}

// Insert offers v to the heap. If the heap is full and v ranks better than
// the current root, the root is evicted and v takes its place; otherwise, if
// there is still room, v is appended; otherwise v is discarded.
func (h *Heap[C]) Insert(v uint32) {
	if h.size == Capacity && h.cmp(v, h.values[0]) > 0 {
		h.size--
		h.values[0] = h.values[h.size]
		h.siftDown(0)
	}

	if h.size < Capacity {
		h.values[h.size] = v
		h.size++
		h.siftUp(h.size - 1)
	}
}

func (h *Heap[C]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.cmp(h.values[parent], h.values[i]) <= 0 {
			break
		}
		h.values[parent], h.values[i] = h.values[i], h.values[parent]
		i = parent
	}
}

// siftDown restores the heap property at i by repeatedly swapping down with
// whichever child ranks closer to the root, stopping once i ranks at or
// above both children
// (or its one remaining child, for a heap with an odd-sized bottom row).
func (h *Heap[C]) siftDown(i int) {
	for i < h.size/2 {
		l, r := 2*i+1, 2*i+2

		if r >= h.size {
			if h.cmp(h.values[i], h.values[l]) <= 0 {
				break
			}
			h.values[i], h.values[l] = h.values[l], h.values[i]
			i = l
			continue
		}

		if h.cmp(h.values[i], h.values[l]) <= 0 && h.cmp(h.values[i], h.values[r]) <= 0 {
			break
		}

		swap := l
		if h.cmp(h.values[r], h.values[l]) < 0 {
			swap = r
		}

		h.values[i], h.values[swap] = h.values[swap], h.values[i]
		i = swap
	}
}

// Sorted returns a fresh, ascending-ordered copy of the retained values. It
// is cheap to call repeatedly but always re-sorts; callers that only need
// the final signature should call it once at finalize.
func (h *Heap[C]) Sorted() []uint32 {
	out := make([]uint32, h.size)
	copy(out, h.values[:h.size])
	slices.Sort(out)
	return out
}

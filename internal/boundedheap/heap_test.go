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
// github.com:foldbyte/hashsig/internal/boundedheap/heap_test.go

package boundedheap_test

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/foldbyte/hashsig/internal/boundedheap"
)

func Test_RetainSmallest_KeepsTheKSmallest(t *testing.T) {
	const n = 2000
	values := make([]uint32, n)
	for i := range values {
		values[i] = rand.Uint32()
	}

	h := boundedheap.New[boundedheap.RetainSmallest]()
	for _, v := range values {
		h.Insert(v)
	}

	if h.Len() != boundedheap.Capacity {
		t.Fatalf("Len() = %d, want %d", h.Len(), boundedheap.Capacity)
	}

	sorted := append([]uint32(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	want := sorted[:boundedheap.Capacity]

	got := h.Sorted()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func Test_RetainLargest_KeepsTheKLargest(t *testing.T) {
	const n = 2000
	values := make([]uint32, n)
	for i := range values {
		values[i] = rand.Uint32()
	}

	h := boundedheap.New[boundedheap.RetainLargest]()
	for _, v := range values {
		h.Insert(v)
	}

	sorted := append([]uint32(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	want := sorted[n-boundedheap.Capacity:]

	got := h.Sorted()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func Test_UnderCapacity_RetainsEverything(t *testing.T) {
	h := boundedheap.New[boundedheap.RetainSmallest]()
	inserted := []uint32{5, 1, 9, 3, 7}
	for _, v := range inserted {
		h.Insert(v)
	}
	if h.Len() != len(inserted) {
		t.Fatalf("Len() = %d, want %d", h.Len(), len(inserted))
	}
	got := h.Sorted()
	want := []uint32{1, 3, 5, 7, 9}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func Test_NeverExceedsCapacity(t *testing.T) {
	h := boundedheap.New[boundedheap.RetainLargest]()
	for i := uint32(0); i < 10_000; i++ {
		h.Insert(i)
		if h.Len() > boundedheap.Capacity {
			t.Fatalf("Len() = %d exceeds capacity %d after %d inserts", h.Len(), boundedheap.Capacity, i+1)
		}
	}
}

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
// github.com:foldbyte/hashsig/compare.go

package hashsig

// Compare returns the similarity of a and b as an integer in [0, 100]: 100
// means identical signatures, 0 means no sorted-overlap on either side.
// Compare is commutative and requires no relationship between a's and b's
// Options.
func Compare(a, b *Signature) int {
	return (overlapScore(a.mins, b.mins) + overlapScore(a.maxs, b.maxs)) / 2
}

// overlapScore computes the sorted-overlap score between two ascending,
// length-K arrays: a two-pointer merge counting exact matches, scaled so
// identical arrays score 100 and disjoint arrays score 0.
func overlapScore(x, y []uint32) int {
	i, j, matches := 0, 0, 0

	for i < len(x) && j < len(y) {
		switch {
		case x[i] < y[j]:
			i++
		case x[i] > y[j]:
			j++
		default:
			matches++
			i++
			j++
		}
	}

	return (100 * matches) / K
}

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
// github.com:foldbyte/hashsig/internal/rollhash/options.go

package rollhash

// Options is the bitmask of whitespace-normalization modes consulted by
// IncludeByte. It is defined here, next to the filter that interprets it,
// and re-exported by the root package so callers never import this package
// directly.
type Options uint8

const (
	Normal           Options = 0
	IgnoreWhitespace Options = 1 << 0
	SmartWhitespace  Options = 1 << 1
)

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

// IncludeByte decides whether b participates in the rolling hash, given the
// active options and the caller's saw_lf flag (true once a bare line-feed has
// been accepted and no other byte has been accepted since).
//
// Under SmartWhitespace, saw_lf is only refreshed when the byte survives the
// CR/post-LF check -- a run of consecutive line feeds only refreshes saw_lf
// on the first one. This mirrors the upstream behavior exactly; changing it
// would alter which bytes of a file with blank lines enter the signature.
func IncludeByte(opt Options, sawLF *bool, b byte) bool {
	if opt&IgnoreWhitespace != 0 && isASCIISpace(b) {
		return false
	}

	if opt&SmartWhitespace != 0 {
		if b == '\r' || (*sawLF && isASCIISpace(b)) {
			return false
		}
		*sawLF = b == '\n'
	}

	return true
}

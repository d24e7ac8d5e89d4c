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
// github.com:foldbyte/hashsig/api.go

package hashsig

import "io"

// readBufferSize is the chunk size SignatureFromReader uses internally. It
// has no effect on the resulting Signature -- see the chunking-independence
// property on Builder.Feed.
const readBufferSize = 4096

// SignatureFromBytes computes the Signature of a complete in-memory buffer.
// It returns an *InsufficientData error if buf is too short (after whatever
// whitespace filtering opt selects) to fill the K-sample requirement.
func SignatureFromBytes(buf []byte, opt Options) (*Signature, error) {
	b := NewBuilder(opt)
	if _, err := b.Feed(buf); err != nil {
		return nil, err
	}
	return b.Finish()
}

// SignatureFromReader computes the Signature of everything r produces,
// reading it in fixed-size chunks until io.EOF. It returns an *IOError if r
// fails before EOF, or an *InsufficientData error if fewer than K samples
// were emitted by the time r is exhausted.
func SignatureFromReader(r io.Reader, opt Options) (*Signature, error) {
	b := NewBuilder(opt)
	buf := make([]byte, readBufferSize)

	for {
		n, err := r.Read(buf)
		if n > 0 {
			if _, ferr := b.Feed(buf[:n]); ferr != nil {
				return nil, ferr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &IOError{Cause: err}
		}
	}

	return b.Finish()
}

// IOError wraps a failure from the caller-supplied reader in
// SignatureFromReader. The builder that was in progress is abandoned.
type IOError struct {
	Cause error
}

func (e *IOError) Error() string {
	return "hashsig: read error computing signature: " + e.Cause.Error()
}

func (e *IOError) Unwrap() error {
	return e.Cause
}

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
// github.com:foldbyte/hashsig/api_test.go

package hashsig_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foldbyte/hashsig"
)

func Test_SignatureFromReader_MatchesSignatureFromBytes(t *testing.T) {
	input := randomBytes(9000)

	fromBytes, err := hashsig.SignatureFromBytes(input, hashsig.Normal)
	require.NoError(t, err)

	fromReader, err := hashsig.SignatureFromReader(bytes.NewReader(input), hashsig.Normal)
	require.NoError(t, err)

	require.Equal(t, fromBytes.MinHashes(), fromReader.MinHashes())
	require.Equal(t, fromBytes.MaxHashes(), fromReader.MaxHashes())
}

// stutterReader hands back tiny, irregular reads, to exercise the internal
// 4096-byte buffering loop against something that doesn't just return
// everything in one Read call.
type stutterReader struct {
	data []byte
	pos  int
}

func (r *stutterReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := min(3, len(p), len(r.data)-r.pos)
	copy(p, r.data[r.pos:r.pos+n])
	r.pos += n
	return n, nil
}

func Test_SignatureFromReader_IrregularReadSizes(t *testing.T) {
	input := randomBytes(2000)
	whole, err := hashsig.SignatureFromBytes(input, hashsig.Normal)
	require.NoError(t, err)

	got, err := hashsig.SignatureFromReader(&stutterReader{data: input}, hashsig.Normal)
	require.NoError(t, err)

	require.Equal(t, whole.MinHashes(), got.MinHashes())
}

type readerFunc func([]byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) { return f(p) }

func Test_SignatureFromReader_PropagatesIOError(t *testing.T) {
	boom := errors.New("disk on fire")
	_, err := hashsig.SignatureFromReader(readerFunc(func([]byte) (int, error) {
		return 0, boom
	}), hashsig.Normal)

	require.Error(t, err)
	var ioErr *hashsig.IOError
	require.ErrorAs(t, err, &ioErr)
	require.ErrorIs(t, err, boom)
}

func Test_SignatureFromBytes_EmptyInput(t *testing.T) {
	_, err := hashsig.SignatureFromBytes(nil, hashsig.Normal)
	require.Error(t, err)
	var insufficient *hashsig.InsufficientData
	require.ErrorAs(t, err, &insufficient)
	require.Equal(t, 0, insufficient.Considered)
}

func Test_SignatureFromBytes_AllWhitespaceUnderIgnoreWhitespace(t *testing.T) {
	input := bytes.Repeat([]byte(" \t\r\n"), 100)
	_, err := hashsig.SignatureFromBytes(input, hashsig.IgnoreWhitespace)
	require.Error(t, err)
	var insufficient *hashsig.InsufficientData
	require.ErrorAs(t, err, &insufficient)
	require.Equal(t, 0, insufficient.Considered)
}

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
// github.com:foldbyte/hashsig/cmd/simsig/main.go

package main

import (
	"encoding/base64"
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/foldbyte/hashsig"
)

func main() {
	filename := flag.String("file", "", "path to a file to sign")
	compareWith := flag.String("compare", "", "path to a second file; when set, prints a similarity score instead of a signature")
	ignoreWhitespace := flag.Bool("ignore-whitespace", false, "drop all ASCII whitespace before hashing")
	smartWhitespace := flag.Bool("smart-whitespace", false, "collapse CR and whitespace runs after a line feed before hashing")
	base64output := flag.Bool("base64", false, "print the signature in base-64 instead of hex")

	flag.Parse()

	if len(*filename) == 0 {
		fmt.Println("Expected a --file flag naming the input to sign.")
		fmt.Println()
		flag.Usage()
		return
	}

	opt := optionsFromFlags(*ignoreWhitespace, *smartWhitespace)

	sig, err := signFile(*filename, opt)
	if err != nil {
		log.Fatal(err)
	}

	if len(*compareWith) == 0 {
		printSignature(sig, *base64output)
		return
	}

	other, err := signFile(*compareWith, opt)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(hashsig.Compare(sig, other))
}

func optionsFromFlags(ignoreWhitespace, smartWhitespace bool) hashsig.Options {
	opt := hashsig.Normal
	if ignoreWhitespace {
		opt |= hashsig.IgnoreWhitespace
	}
	if smartWhitespace {
		opt |= hashsig.SmartWhitespace
	}
	return opt
}

func signFile(path string, opt hashsig.Options) (*hashsig.Signature, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return hashsig.SignatureFromReader(f, opt)
}

// printSignature dumps a Signature as the concatenation of its min-side and
// max-side arrays, each big-endian uint32, min-side first -- a trivial,
// non-contractual encoding useful for eyeballing and for feeding into other
// tools, not a persisted format the engine itself guarantees.
func printSignature(sig *hashsig.Signature, asBase64 bool) {
	bytes := make([]byte, 0, 2*hashsig.K*4)
	for _, v := range sig.MinHashes() {
		bytes = binary.BigEndian.AppendUint32(bytes, v)
	}
	for _, v := range sig.MaxHashes() {
		bytes = binary.BigEndian.AppendUint32(bytes, v)
	}

	if asBase64 {
		fmt.Println(base64.StdEncoding.EncodeToString(bytes))
	} else {
		fmt.Printf("0x%X\n", bytes)
	}
}

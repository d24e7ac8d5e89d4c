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
// github.com:foldbyte/hashsig/cmd/nearby/main.go

package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/foldbyte/hashsig"
)

// Match records one pair of files whose signatures scored at or above the
// configured threshold.
type Match struct {
	Score int    `json:"score"`
	PathA string `json:"path_a"`
	PathB string `json:"path_b"`
}

// signed is a signature paired with the path it was computed from. Files
// too small to reach hashsig.K samples are simply left out of the corpus --
// they have no meaningful similarity signature to compare.
type signed struct {
	path string
	sig  *hashsig.Signature
}

// Walks the tree under --in-path, signs every regular file, and reports
// every pair scoring at or above --threshold to --out-file as JSON lines.
//
// Example usage:
//   nearby --in-path . --threshold 85 --out-file near-duplicates.jsonl
//
// This is the batch comparison entry point for a rename/copy detection
// pipeline: it does not itself decide what a "rename" is, it just surfaces
// the candidate pairs for a caller (or a human) to judge.
func main() {
	inpath := flag.String("in-path", ".", "root of the tree to scan")
	outpath := flag.String("out-file", "near-duplicates.jsonl",
		"path to store the near-duplicate report")
	threshold := flag.Int("threshold", 90, "minimum similarity score (0-100) to report a pair")
	ignoreWhitespace := flag.Bool("ignore-whitespace", false, "drop all ASCII whitespace before hashing")
	smartWhitespace := flag.Bool("smart-whitespace", false, "collapse CR and whitespace runs after a line feed before hashing")

	flag.Parse()
	fmt.Println("scanning files under " + *inpath)

	opt := hashsig.Normal
	if *ignoreWhitespace {
		opt |= hashsig.IgnoreWhitespace
	}
	if *smartWhitespace {
		opt |= hashsig.SmartWhitespace
	}

	var corpus []signed
	err := filepath.WalkDir(*inpath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		sig, signErr := signFile(path, opt)
		if signErr != nil {
			// Too small (or unreadable) -- not an error worth aborting the scan for.
			return nil
		}
		corpus = append(corpus, signed{path, sig})
		return nil
	})
	if err != nil {
		fmt.Println(err)
	}

	output, done := newWriter(*outpath)
	reportMatches(corpus, *threshold, output)
	close(output)
	<-done
}

func signFile(path string, opt hashsig.Options) (*hashsig.Signature, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return hashsig.SignatureFromReader(f, opt)
}

// reportMatches compares every pair in the corpus exactly once and sends
// those at or above threshold to output.
func reportMatches(corpus []signed, threshold int, output chan<- Match) {
	for i := 0; i < len(corpus); i++ {
		for j := i + 1; j < len(corpus); j++ {
			score := hashsig.Compare(corpus[i].sig, corpus[j].sig)
			if score >= threshold {
				output <- Match{score, corpus[i].path, corpus[j].path}
			}
		}
	}
}

// Creates a match writer in json-lines format (thread-safe/goroutine-safe).
// The returned done channel closes once the writer has drained channel and
// flushed everything to disk, so callers can wait for it before exiting.
func newWriter(outpath string) (channel chan Match, done <-chan struct{}) {
	file, err := os.Create(outpath)
	if err != nil {
		log.Fatal(err)
	}
	channel = make(chan Match)
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		defer file.Close()
		writer := bufio.NewWriter(file)

		for match := range channel {
			bytes, err := json.Marshal(match)
			if err != nil {
				fmt.Printf("%s/%s error:\n   %s\n", match.PathA, match.PathB, err)
				continue
			}
			writer.Write(bytes)
			writer.WriteByte('\n')
			writer.Flush()
		}
		writer.Flush()
	}()

	return channel, finished
}

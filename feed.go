// Line-delimited record feed.
//
// A Feed writes each Record as one JSON line, so a presentation layer can
// follow filter activity by tailing a pipe or file. Observe has the
// signature of Config.Observer; it cannot return an error, so the first
// write failure is kept and reported by Err, and later records are
// dropped. A Feed is safe for concurrent use, so it can observe a
// Guarded filter. ReadFeed is the matching reader.
package cbloom

import (
	"bufio"
	"bytes"
	"io"
	"iter"
	"sync"
)

// Feed streams records to an io.Writer as JSONL.
type Feed struct {
	mu  sync.Mutex
	w   io.Writer
	err error
}

// NewFeed returns a Feed writing to w.
func NewFeed(w io.Writer) *Feed {
	return &Feed{w: w}
}

// Write appends r as a single JSON line. Record and newline go out in one
// Write call so concurrent readers of a pipe never see a partial line.
func (fd *Feed) Write(r Record) error {
	fd.mu.Lock()
	defer fd.mu.Unlock()
	return fd.write(r)
}

func (fd *Feed) write(r Record) error {
	data, err := r.encode()
	if err != nil {
		return err
	}
	_, err = fd.w.Write(append(data, '\n'))
	return err
}

// Observe writes r, remembering the first error. Once a write has failed
// Observe does nothing.
func (fd *Feed) Observe(r Record) {
	fd.mu.Lock()
	defer fd.mu.Unlock()
	if fd.err != nil {
		return
	}
	fd.err = fd.write(r)
}

// Err returns the first error seen by Observe.
func (fd *Feed) Err() error {
	fd.mu.Lock()
	defer fd.mu.Unlock()
	return fd.err
}

// ReadFeed yields records from JSONL input. Blank lines are skipped. A
// malformed line yields ErrCorruptRecord and ends the sequence.
func ReadFeed(r io.Reader) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

		for scanner.Scan() {
			data := bytes.TrimSpace(scanner.Bytes())
			if len(data) == 0 {
				continue
			}
			rec, err := decodeRecord(data)
			if err != nil {
				yield(Record{}, err)
				return
			}
			if !yield(rec, nil) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			yield(Record{}, err)
		}
	}
}

// Operation records.
//
// Every Insert, Check and Delete returns a Record describing what happened.
// Records are transient: the filter hands them to the caller (and to the
// configured observer) and keeps nothing. They encode to single-line JSON
// so a Feed can stream them to a presentation layer.
package cbloom

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Op identifies the operation that produced a Record.
type Op int

// Operation kinds.
const (
	OpInsert Op = 1
	OpCheck  Op = 2
	OpDelete Op = 3
)

var opNames = map[Op]string{
	OpInsert: "insert",
	OpCheck:  "check",
	OpDelete: "delete",
}

func (o Op) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// MarshalText encodes the op by name.
func (o Op) MarshalText() ([]byte, error) {
	s, ok := opNames[o]
	if !ok {
		return nil, fmt.Errorf("%w: unknown op %d", ErrCorruptRecord, int(o))
	}
	return []byte(s), nil
}

// UnmarshalText decodes an op name.
func (o *Op) UnmarshalText(b []byte) error {
	for op, s := range opNames {
		if s == string(b) {
			*o = op
			return nil
		}
	}
	return fmt.Errorf("%w: unknown op %q", ErrCorruptRecord, b)
}

// Record is the outcome of a single filter operation.
type Record struct {
	Op            Op       `json:"op"`
	Input         string   `json:"input"`
	Indices       []int    `json:"indices"`           // k derived positions, in order
	Counts        []uint32 `json:"counts"`            // Counter value at each index after the op
	Matched       bool     `json:"matched"`           // Check: all counters > 0; otherwise true
	FalsePositive bool     `json:"falsePositive"`     // Check: matched but not a member
	Missing       []int    `json:"missing,omitempty"` // Check: indices with a zero counter
}

// encode marshals r to a single JSON line without the trailing newline.
func (r Record) encode() ([]byte, error) {
	return json.Marshal(r)
}

// decodeRecord parses one JSON line into a Record.
func decodeRecord(data []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrCorruptRecord, err)
	}
	if _, ok := opNames[r.Op]; !ok {
		return Record{}, fmt.Errorf("%w: missing op", ErrCorruptRecord)
	}
	return r, nil
}

// Compact snapshot encoding.
//
// Compact turns a snapshot into a single line of printable ASCII: the JSON
// is Zstd-compressed, then Ascii85-encoded. Counter arrays are highly
// repetitive (mostly zeros on a sparse filter), so the compressed
// form is usually far smaller than the raw JSON.
package cbloom

import (
	"bytes"
	"encoding/ascii85"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Shared encoder/decoder, both documented as safe for concurrent use.
// Construction is expensive (internal tables), so it happens once.
var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	zstdDecoder, _ = zstd.NewReader(nil)
)

func compress(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	compressed := zstdEncoder.EncodeAll(data, nil)

	var encoded bytes.Buffer
	enc := ascii85.NewEncoder(&encoded)
	// bytes.Buffer.Write never errors; enc.Close flushes trailing padding.
	_, _ = enc.Write(compressed)
	_ = enc.Close()

	return encoded.String()
}

func decompress(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, nil
	}

	dec := ascii85.NewDecoder(bytes.NewReader([]byte(encoded)))
	compressed, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: ascii85: %w", ErrDecompress, err)
	}

	out, err := zstdDecoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %w", ErrDecompress, err)
	}
	return out, nil
}

// Compact returns the snapshot as compressed, Ascii85-encoded JSON.
func (s Snapshot) Compact() (string, error) {
	data, err := s.Encode()
	if err != nil {
		return "", err
	}
	return compress(data), nil
}

// DecompactSnapshot reverses Compact.
func DecompactSnapshot(encoded string) (*Snapshot, error) {
	if encoded == "" {
		return nil, fmt.Errorf("%w: empty input", ErrCorruptSnapshot)
	}
	data, err := decompress(encoded)
	if err != nil {
		return nil, err
	}
	return DecodeSnapshot(data)
}

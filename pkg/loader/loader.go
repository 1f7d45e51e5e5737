// Package loader reads a RISKXVII image — a flat little-endian byte
// stream — into the word arrays pkg/vm's Machine expects. It owns no
// file I/O of its own; the caller opens whatever io.Reader it likes.
package loader

import (
	"fmt"
	"io"
)

const (
	// InstrBytes is the byte size of the instruction memory region the
	// image's first bytes populate.
	InstrBytes = 256 * 4
	// DataBytes is the byte size of the data memory region the image's
	// remaining bytes populate.
	DataBytes = 256 * 4
	// ImageBytes is the total number of image bytes Load will consume;
	// anything beyond this is ignored.
	ImageBytes = InstrBytes + DataBytes
)

// Load reads up to ImageBytes from r and splits it into instruction and
// data memory words, 4 bytes per word, little-endian. A trailing partial
// word (fewer than 4 bytes available) is dropped rather than zero-padded.
func Load(r io.Reader) (instr, data [256]uint32, err error) {
	buf, err := io.ReadAll(io.LimitReader(r, ImageBytes))
	if err != nil {
		return instr, data, fmt.Errorf("loader: reading image: %w", err)
	}

	for i := 0; i+4 <= len(buf) && i < InstrBytes; i += 4 {
		instr[i/4] = littleEndianWord(buf[i : i+4])
	}
	for i := InstrBytes; i+4 <= len(buf) && i < ImageBytes; i += 4 {
		data[(i-InstrBytes)/4] = littleEndianWord(buf[i : i+4])
	}
	return instr, data, nil
}

func littleEndianWord(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

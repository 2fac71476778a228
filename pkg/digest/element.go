package digest

import "encoding/binary"

// Element is one ordered input to the finisher.
type Element interface {
	DigestBytes() []byte
}

// Bytes is a raw byte element.
type Bytes []byte

// Text is a string element, hashed as its UTF-8 bytes.
type Text string

// Int64 is a fixed-width integer element, hashed as 8 little-endian bytes.
type Int64 int64

// Uint64s is a hash array, hashed as consecutive 8-byte little-endian values.
type Uint64s []uint64

func (b Bytes) DigestBytes() []byte { return b }

func (s Text) DigestBytes() []byte { return []byte(s) }

func (n Int64) DigestBytes() []byte {
	return binary.LittleEndian.AppendUint64(nil, uint64(n))
}

func (u Uint64s) DigestBytes() []byte {
	out := make([]byte, 0, 8*len(u))
	for _, v := range u {
		out = binary.LittleEndian.AppendUint64(out, v)
	}
	return out
}

var (
	_ Element = Bytes(nil)
	_ Element = Text("")
	_ Element = Int64(0)
	_ Element = Uint64s(nil)
)

// Package wire frames phrasebook entries before they reach a provider.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	version byte = 1
	hdrLen       = 4 + 1 + 4 + 4
)

var (
	ErrCorrupt = errors.New("phrasebook: corrupt entry")
	magic4     = [...]byte{'W', 'D', 'B', 'K'}
)

// Entry: magic(4) | ver(1) | id(u32 be) | vlen(u32 be) | payload(vlen)
//
// The id is stored so a reader can tell a stale or foreign value apart from
// the one its phrase points at.
func EncodeEntry(id uint32, payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(hdrLen + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], id)
	buf.Write(u4[:])

	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

// DecodeEntry returns the id and a payload slice aliasing b.
// Anything but an exact frame (short, bad header, length mismatch,
// trailing bytes) is ErrCorrupt.
func DecodeEntry(b []byte) (id uint32, payload []byte, err error) {
	if len(b) < hdrLen || !bytes.Equal(b[:4], magic4[:]) || b[4] != version {
		return 0, nil, ErrCorrupt
	}
	off := 5

	id = binary.BigEndian.Uint32(b[off : off+4])
	off += 4

	vlen := binary.BigEndian.Uint32(b[off : off+4])
	off += 4
	if uint64(vlen) != uint64(len(b)-off) {
		return 0, nil, ErrCorrupt
	}
	return id, b[off:], nil
}

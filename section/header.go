package section

import "github.com/omfileformat/go-omfile/format"

// HeaderSize is the fixed size in bytes of an OM file's header.
const HeaderSize = 3

// Header is the 3-byte prefix of every OM file: two magic bytes spelling
// "OM" followed by the format version.
type Header struct{}

// Bytes returns the wire representation of the header.
func (Header) Bytes() [HeaderSize]byte {
	return [HeaderSize]byte{format.MagicByte1, format.MagicByte2, format.Version}
}

package mft

import (
	"golang.org/x/text/encoding/unicode"
)

// decodeUTF16LE converts a UTF-16LE byte string to UTF-8, substituting
// U+FFFD for any unpaired or truncated surrogate and continuing decode at
// the next code unit (spec section 4.7). An odd-length input has its
// trailing byte dropped before decoding, since it cannot form a whole code
// unit.
//
// x/text's UTF16 decoder already implements exactly this
// replace-on-error, continue-decoding behaviour (it follows the WHATWG
// encoding algorithm), so it is used directly rather than hand-rolling
// surrogate-pair arithmetic. A fresh transformer is built on every call,
// as the teacher does at each of its call sites (pkg/ditreader/records.go,
// pkg/systemreader/systemreader.go): *encoding.Decoder wraps a
// transform.Transformer, which keeps state across Reset/Transform and is
// not safe for concurrent use, and this is invoked from every FILE_NAME
// decode across potentially-parallel ParseRecord calls (spec section 5).
func decodeUTF16LE(b []byte) string {
	if len(b)%2 != 0 {
		b = b[:len(b)-1]
	}

	decoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	out, err := decoder.Bytes(b)
	if err != nil {
		// The decoder is configured to replace rather than fail, but
		// guard against a future transform change regardless: fall back
		// to an empty name rather than propagate malformed bytes.
		return ""
	}

	return string(out)
}

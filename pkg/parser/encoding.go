package parser

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadTranscript reads a transcript file and decodes it to a string.
// Decoding never fails; see DecodeTranscript.
func ReadTranscript(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return "", fmt.Errorf("reading transcript %s: %w", path, err)
	}
	return DecodeTranscript(data), nil
}

// DecodeTranscript decodes raw transcript bytes, trying in order: BOM-aware
// UTF-8, plain UTF-8, UTF-16 (by BOM, or little-endian when NUL bytes
// suggest it), and finally a lossy UTF-8 decode that substitutes invalid
// sequences with U+FFFD. Export tools on different platforms disagree on
// encoding, so a bad file degrades instead of failing the run.
func DecodeTranscript(data []byte) string {
	data = bytes.TrimPrefix(data, utf8BOM)

	if utf8.Valid(data) {
		return string(data)
	}

	if s, ok := decodeUTF16(data); ok {
		return s
	}

	return strings.ToValidUTF8(string(data), "�")
}

// decodeUTF16 attempts a UTF-16 decode. Without a BOM, embedded NUL bytes
// are taken as evidence of little-endian UTF-16 text.
func decodeUTF16(data []byte) (string, bool) {
	if len(data) < 2 || len(data)%2 != 0 {
		return "", false
	}

	var enc encoding.Encoding
	switch {
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
		enc = unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
	case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		enc = unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
	case bytes.IndexByte(data, 0x00) >= 0:
		enc = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	default:
		return "", false
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}

package codec

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// ErrInvalidUTF8 is returned when a byte stream declared as UTF-8 is not
// valid UTF-8.
var ErrInvalidUTF8 = errors.New("codec: invalid UTF-8 byte stream")

// Codec decodes raw bytes to text and encodes text back to bytes.
type Codec interface {
	Name() string
	Decode(data []byte) (string, error)
	Encode(text string) ([]byte, error)
}

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// UTF8 is the passthrough codec. When BOM is set, decoding strips a
// leading UTF-8 byte-order mark and encoding restores it.
type UTF8 struct {
	BOM bool
}

// Name returns the codec name.
func (c UTF8) Name() string {
	if c.BOM {
		return "utf-8 bom"
	}
	return "utf-8"
}

// Decode validates and converts the byte stream.
func (c UTF8) Decode(data []byte) (string, error) {
	if c.BOM {
		data = bytes.TrimPrefix(data, utf8BOM)
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}

// Encode converts text back into bytes.
func (c UTF8) Encode(text string) ([]byte, error) {
	if !c.BOM {
		return []byte(text), nil
	}
	out := make([]byte, 0, len(utf8BOM)+len(text))
	out = append(out, utf8BOM...)
	return append(out, text...), nil
}

type transcoder struct {
	name string
	enc  encoding.Encoding
}

func (t transcoder) Name() string {
	return t.name
}

func (t transcoder) Decode(data []byte) (string, error) {
	out, err := t.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (t transcoder) Encode(text string) ([]byte, error) {
	return t.enc.NewEncoder().Bytes([]byte(text))
}

// UTF16 returns a codec for BOM-marked UTF-16 in the given byte order.
func UTF16(little bool) Codec {
	if little {
		return transcoder{"utf-16le", unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)}
	}
	return transcoder{"utf-16be", unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)}
}

// UTF32 returns a codec for BOM-marked UTF-32 in the given byte order.
func UTF32(little bool) Codec {
	if little {
		return transcoder{"utf-32le", utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM)}
	}
	return transcoder{"utf-32be", utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM)}
}

// ForBOM inspects the byte-order mark at the start of data and returns
// the matching codec. Streams without a recognizable BOM are treated as
// plain UTF-8. UTF-32 marks are tested before UTF-16, since a UTF-32
// little-endian BOM begins with the UTF-16 one.
func ForBOM(data []byte) Codec {
	switch {
	case bytes.HasPrefix(data, []byte{0xff, 0xfe, 0x00, 0x00}):
		return UTF32(true)
	case bytes.HasPrefix(data, []byte{0x00, 0x00, 0xfe, 0xff}):
		return UTF32(false)
	case bytes.HasPrefix(data, []byte{0xff, 0xfe}):
		return UTF16(true)
	case bytes.HasPrefix(data, []byte{0xfe, 0xff}):
		return UTF16(false)
	case bytes.HasPrefix(data, utf8BOM):
		return UTF8{BOM: true}
	default:
		return UTF8{}
	}
}

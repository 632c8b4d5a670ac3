package scene

import (
	"errors"
	"fmt"
	"strings"
)

// Format names a wire encoding of a Scene. The format is chosen by
// configuration; files are never sniffed.
type Format string

const (
	FormatJSON   Format = "json"
	FormatBinary Format = "binary"
)

// UnmarshalText lets Format be read from YAML and environment variables.
func (f *Format) UnmarshalText(text []byte) error {
	switch v := Format(strings.ToLower(strings.TrimSpace(string(text)))); v {
	case FormatJSON, FormatBinary:
		*f = v
		return nil
	default:
		return fmt.Errorf("unknown scene format %q (want json or binary)", string(text))
	}
}

// Decoder turns raw bytes into a Scene.
type Decoder interface {
	Decode(data []byte) (*Scene, error)
}

// Encoder turns a Scene into raw bytes.
type Encoder interface {
	Encode(s *Scene) ([]byte, error)
}

// Codec reads and writes one encoding.
type Codec interface {
	Decoder
	Encoder
	Format() Format
}

// CodecFor returns the codec for format.
func CodecFor(format Format) (Codec, error) {
	switch format {
	case FormatJSON, "":
		return JSONCodec{}, nil
	case FormatBinary:
		return BinaryCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown scene format %q", format)
	}
}

// ErrTruncated is the cause of a DecodeError when the input ends early.
var ErrTruncated = errors.New("unexpected end of data")

// DecodeError reports bytes that do not form a valid Scene.
type DecodeError struct {
	Format Format
	// Offset is the byte offset where decoding stopped, or -1 when unknown.
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("decode %s scene at byte %d: %v", e.Format, e.Offset, e.Err)
	}
	return fmt.Sprintf("decode %s scene: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

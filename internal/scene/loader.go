package scene

import (
	"fmt"
	"os"

	"github.com/c2h5oh/datasize"
)

// DefaultMaxSize bounds the size of a scene file the Loader will read.
const DefaultMaxSize = 256 * datasize.MB

// Loader reads a scene file from disk and decodes it with Codec.
type Loader struct {
	Codec   Codec
	MaxSize datasize.ByteSize // zero means DefaultMaxSize
}

// NewLoader returns a Loader for format.
func NewLoader(format Format, maxSize datasize.ByteSize) (*Loader, error) {
	c, err := CodecFor(format)
	if err != nil {
		return nil, err
	}
	return &Loader{Codec: c, MaxSize: maxSize}, nil
}

// Load reads path and decodes it. Files over MaxSize are rejected without being
// read and reported as a DecodeError.
func (l *Loader) Load(path string) (*Scene, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat scene: %w", err)
	}
	limit := l.MaxSize
	if limit == 0 {
		limit = DefaultMaxSize
	}
	if size := datasize.ByteSize(fi.Size()); size > limit {
		return nil, &DecodeError{
			Format: l.Codec.Format(),
			Offset: -1,
			Err:    fmt.Errorf("file is %s, limit is %s", size.HR(), limit.HR()),
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return l.Codec.Decode(data)
}

// Save encodes s with the Loader's codec and writes it to path.
func (l *Loader) Save(path string, s *Scene) error {
	data, err := l.Codec.Encode(s)
	if err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

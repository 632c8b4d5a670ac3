package scene

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	pointSize = 3 * 4
	lineSize  = 2 * pointSize
)

// BinaryCodec is the compact encoding. All values are little-endian:
//
//	u64 nPoints, nPoints * (f32 x, f32 y, f32 z)
//	u64 nLines,  nLines  * (f32 x1, y1, z1, x2, y2, z2)
//
// Trailing bytes after the last line are an error.
type BinaryCodec struct{}

func (BinaryCodec) Format() Format { return FormatBinary }

func (BinaryCodec) Decode(data []byte) (*Scene, error) {
	r := binReader{buf: data}

	np, err := r.count(pointSize)
	if err != nil {
		return nil, err
	}
	s := &Scene{Points: make([]Point, np)}
	for i := range s.Points {
		s.Points[i] = r.point()
	}

	nl, err := r.count(lineSize)
	if err != nil {
		return nil, err
	}
	s.Lines = make([]Line, nl)
	for i := range s.Lines {
		s.Lines[i] = Line{P1: r.point(), P2: r.point()}
	}

	if rest := len(r.buf) - r.off; rest != 0 {
		return nil, &DecodeError{Format: FormatBinary, Offset: r.off, Err: fmt.Errorf("%d trailing bytes", rest)}
	}
	return s, nil
}

func (BinaryCodec) Encode(s *Scene) ([]byte, error) {
	if s == nil {
		s = &Scene{}
	}
	out := make([]byte, 0, 16+len(s.Points)*pointSize+len(s.Lines)*lineSize)
	out = binary.LittleEndian.AppendUint64(out, uint64(len(s.Points)))
	for _, p := range s.Points {
		out = appendPoint(out, p)
	}
	out = binary.LittleEndian.AppendUint64(out, uint64(len(s.Lines)))
	for _, l := range s.Lines {
		out = appendPoint(out, l.P1)
		out = appendPoint(out, l.P2)
	}
	return out, nil
}

func appendPoint(b []byte, p Point) []byte {
	b = binary.LittleEndian.AppendUint32(b, math.Float32bits(p.X))
	b = binary.LittleEndian.AppendUint32(b, math.Float32bits(p.Y))
	return binary.LittleEndian.AppendUint32(b, math.Float32bits(p.Z))
}

type binReader struct {
	buf []byte
	off int
}

// count reads a length prefix and checks that elem-sized records of that
// count fit in the rest of the buffer before anything is allocated.
func (r *binReader) count(elem int) (int, error) {
	if len(r.buf)-r.off < 8 {
		return 0, &DecodeError{Format: FormatBinary, Offset: r.off, Err: ErrTruncated}
	}
	n := binary.LittleEndian.Uint64(r.buf[r.off:])
	r.off += 8
	if avail := uint64(len(r.buf)-r.off) / uint64(elem); n > avail {
		return 0, &DecodeError{Format: FormatBinary, Offset: r.off, Err: fmt.Errorf("%w: %d records declared, room for %d", ErrTruncated, n, avail)}
	}
	return int(n), nil
}

// point must only be called after count has checked the bounds.
func (r *binReader) point() Point {
	b := r.buf[r.off : r.off+pointSize]
	r.off += pointSize
	return Point{
		X: math.Float32frombits(binary.LittleEndian.Uint32(b[0:])),
		Y: math.Float32frombits(binary.LittleEndian.Uint32(b[4:])),
		Z: math.Float32frombits(binary.LittleEndian.Uint32(b[8:])),
	}
}

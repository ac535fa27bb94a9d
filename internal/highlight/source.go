package highlight

import (
	"bufio"
	"errors"
	"io"
)

// DefaultBufferSize is the default line buffer capacity in bytes.
const DefaultBufferSize = 16 * 1024

// MinBufferSize is the smallest capacity bufio supports.
const MinBufferSize = 16

// Line is one chunk of input. Bytes holds at most one newline, at the end,
// and is only valid until the next call to Source.Next.
type Line struct {
	Bytes []byte
	// Truncated is set when the buffer filled up before a newline was seen.
	// The rest of the physical line arrives as the following Line.
	Truncated bool
}

// Source reads newline-delimited chunks of bounded size.
type Source struct {
	r    *bufio.Reader
	size int
}

// NewSource reads from r with a line buffer of size bytes. Sizes below
// MinBufferSize are raised to it.
func NewSource(r io.Reader, size int) *Source {
	if size < MinBufferSize {
		size = MinBufferSize
	}
	return &Source{r: bufio.NewReaderSize(r, size), size: size}
}

// Size returns the buffer capacity.
func (s *Source) Size() int {
	return s.size
}

// Next returns the next chunk, or io.EOF when input is exhausted. On a read
// error the bytes read before it are returned along with the error.
func (s *Source) Next() (Line, error) {
	b, err := s.r.ReadSlice('\n')
	switch {
	case err == nil:
		return Line{Bytes: b}, nil
	case errors.Is(err, bufio.ErrBufferFull):
		return Line{Bytes: b, Truncated: true}, nil
	case errors.Is(err, io.EOF):
		if len(b) > 0 {
			return Line{Bytes: b}, nil
		}
		return Line{}, io.EOF
	default:
		return Line{Bytes: b}, err
	}
}

package stringproc

import (
	"errors"
	"io"
)

// Source abstracts over polymorphic byte-buffer inputs. Next returns the next
// candidate value's raw bytes, or io.EOF once the sequence is exhausted. No
// framing or encoding is assumed beyond "each element is one candidate value".
type Source interface {
	Next() ([]byte, error)
}

// BytesSource wraps an in-memory slice of buffers as a Source. The buffers are
// not copied; callers must not mutate them while a process call is running.
func BytesSource(raw [][]byte) Source { return &bytesSource{raw: raw} }

// StringsSource wraps a slice of strings as a Source.
func StringsSource(vals []string) Source { return &stringsSource{vals: vals} }

type bytesSource struct {
	raw [][]byte
	i   int
}

func (s *bytesSource) Next() ([]byte, error) {
	if s.i >= len(s.raw) {
		return nil, io.EOF
	}
	b := s.raw[s.i]
	s.i++
	return b, nil
}

type stringsSource struct {
	vals []string
	i    int
}

func (s *stringsSource) Next() ([]byte, error) {
	if s.i >= len(s.vals) {
		return nil, io.EOF
	}
	b := []byte(s.vals[s.i])
	s.i++
	return b, nil
}

// drainSource materializes a Source into the ordered buffer sequence.
func drainSource(src Source) ([][]byte, error) {
	if src == nil {
		return nil, errors.New("nil source")
	}
	var raw [][]byte
	for {
		b, err := src.Next()
		if err == io.EOF {
			return raw, nil
		}
		if err != nil {
			return nil, err
		}
		raw = append(raw, b)
	}
}

package stringproc

import (
	"sync"
	"unicode/utf8"
)

// UTF8Driver checks byte content for well-formed UTF-8 via a pluggable SPI. The
// default implementation is based on unicode/utf8 and may be swapped with
// SetUTF8Driver, for example with a SIMD-accelerated checker.
type UTF8Driver interface {
	// Validate reports whether b is well-formed UTF-8. When it is not, offset
	// is the byte position of the first invalid sequence, or -1 if the driver
	// cannot tell. Drivers must scan b at most once on the valid path.
	Validate(b []byte) (ok bool, offset int64)
	Name() string
}

var (
	utf8DriverMu      sync.RWMutex
	currentUTF8Driver UTF8Driver = defaultUTF8Driver{}
)

// SetUTF8Driver replaces the global UTF-8 driver; nil values are ignored.
func SetUTF8Driver(d UTF8Driver) {
	if d == nil {
		return
	}
	utf8DriverMu.Lock()
	currentUTF8Driver = d
	utf8DriverMu.Unlock()
}

// UseDefaultUTF8Driver restores the default unicode/utf8-backed driver.
func UseDefaultUTF8Driver() {
	utf8DriverMu.Lock()
	currentUTF8Driver = defaultUTF8Driver{}
	utf8DriverMu.Unlock()
}

func getUTF8Driver() UTF8Driver {
	utf8DriverMu.RLock()
	d := currentUTF8Driver
	utf8DriverMu.RUnlock()
	return d
}

// defaultUTF8Driver wraps the unicode/utf8 implementation.
type defaultUTF8Driver struct{}

func (defaultUTF8Driver) Validate(b []byte) (bool, int64) {
	if utf8.Valid(b) {
		return true, 0
	}
	return false, firstInvalidOffset(b)
}

func (defaultUTF8Driver) Name() string { return "unicode/utf8" }

// firstInvalidOffset locates the byte at which b stops being well-formed
// UTF-8. Only reached on the failure path, so valid input is scanned once.
func firstInvalidOffset(b []byte) int64 {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			// A genuine U+FFFD in the input decodes with size 3.
			return int64(i)
		}
		i += size
	}
	return -1
}

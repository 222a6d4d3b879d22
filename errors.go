package stringproc

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidUTF8 = "invalid_utf8"
	CodeParseError  = "parse_error"
	CodeTruncated   = "truncated"
)

// Issue represents a single processing error.
type Issue struct {
	Ident   int    // Dictionary identifier of the offending unique entry (-1 when not applicable).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	Offset  int64 // Byte offset of the first invalid sequence within the entry (-1 when unknown).
	// InputFragment is an optional snippet of the offending bytes. Because it can
	// be misleading for binary data, it is best-effort.
	InputFragment string
}

// Issues is a collection of processing errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_utf8 at entry 3 (offset 2)
		if it.Ident >= 0 && it.Offset >= 0 {
			fmt.Fprintf(b, "%s at entry %d (offset %d)", it.Code, it.Ident, it.Offset)
		} else if it.Ident >= 0 {
			fmt.Fprintf(b, "%s at entry %d", it.Code, it.Ident)
		} else {
			b.WriteString(it.Code)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// singleIssue wraps one Issue into Issues for use as an error return.
func singleIssue(code, msg string) Issues {
	return Issues{Issue{Ident: -1, Code: code, Message: msg, Offset: -1}}
}

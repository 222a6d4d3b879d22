// Package json extracts candidate string values from a JSON-encoded telemetry
// envelope, in a stable document order, so the batch can be fed to the
// deduplicating pipeline. Attributes are ordered key/value pairs rather than
// maps to keep extraction deterministic.
package json

import (
	"io"

	j "github.com/goccy/go-json"

	stringproc "github.com/daviddahl/string-proc"
)

// Attr is one attribute key/value pair.
type Attr struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Scope names the instrumentation scope that produced a batch's records.
type Scope struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Record is a single telemetry record.
type Record struct {
	Severity   string `json:"severity"`
	Event      string `json:"event"`
	Attributes []Attr `json:"attributes"`
}

// Batch groups records sharing a resource and scope. Resource attributes and
// the schema URL repeat across batches, which is exactly the duplication the
// pipeline's dictionary absorbs.
type Batch struct {
	Resource  []Attr   `json:"resource"`
	Scope     *Scope   `json:"scope"`
	Records   []Record `json:"records"`
	SchemaURL string   `json:"schemaUrl"`
}

// Envelope is the top-level document.
type Envelope struct {
	Batches []Batch `json:"batches"`
}

// Extract flattens an envelope into the ordered candidate sequence: per batch,
// resource attributes (key then value), scope name and version, then per
// record severity, event and attributes, then the schema URL. Empty optional
// scalars are skipped; attribute values are emitted even when empty because
// the pair is explicit.
func Extract(env Envelope) [][]byte {
	var raw [][]byte
	emit := func(s string) { raw = append(raw, []byte(s)) }
	for _, b := range env.Batches {
		for _, a := range b.Resource {
			emit(a.Key)
			emit(a.Value)
		}
		if b.Scope != nil {
			if b.Scope.Name != "" {
				emit(b.Scope.Name)
			}
			if b.Scope.Version != "" {
				emit(b.Scope.Version)
			}
		}
		for _, rec := range b.Records {
			if rec.Severity != "" {
				emit(rec.Severity)
			}
			if rec.Event != "" {
				emit(rec.Event)
			}
			for _, a := range rec.Attributes {
				emit(a.Key)
				emit(a.Value)
			}
		}
		if b.SchemaURL != "" {
			emit(b.SchemaURL)
		}
	}
	return raw
}

// ExtractBytes decodes data as an Envelope and returns the ordered candidate
// sequence.
func ExtractBytes(data []byte) ([][]byte, error) {
	var env Envelope
	if err := j.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	return Extract(env), nil
}

// NewBytes wraps a JSON envelope as a stringproc.Source. A decode failure
// surfaces on the first Next call.
func NewBytes(data []byte) stringproc.Source {
	raw, err := ExtractBytes(data)
	return &source{raw: raw, err: err}
}

// NewReader wraps an io.Reader carrying a JSON envelope as a stringproc.Source.
func NewReader(r io.Reader) stringproc.Source {
	var env Envelope
	if err := j.NewDecoder(r).Decode(&env); err != nil {
		return &source{err: err}
	}
	return &source{raw: Extract(env)}
}

type source struct {
	raw [][]byte
	err error
	i   int
}

func (s *source) Next() ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.i >= len(s.raw) {
		return nil, io.EOF
	}
	b := s.raw[s.i]
	s.i++
	return b, nil
}

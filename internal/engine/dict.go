package engine

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

// Dictionary holds the unique byte contents observed in an input batch, in
// first-occurrence order, together with the per-position idents referring into
// them. For the batch ["a","b","a"] it holds Unique ["a","b"] and Positions
// [0,1,0].
type Dictionary struct {
	Unique    [][]byte
	Positions []int
}

// BuildDictionary deduplicates raw by exact byte content. Idents are dense,
// zero-based, and assigned in first-occurrence order, so the result is
// deterministic for a given input ordering. The buffers are referenced, not
// copied; ownership moves into the dictionary for the rest of the pipeline.
// This step performs no interpretation of the bytes and cannot fail.
func BuildDictionary(raw [][]byte, ev EventSink) Dictionary {
	d := Dictionary{Positions: make([]int, 0, len(raw))}
	// Buckets keyed by content hash avoid a string-conversion allocation per
	// lookup; exact equality is confirmed within the bucket.
	buckets := make(map[uint64][]int, len(raw))
	for pos, b := range raw {
		h := xxhash.Sum64(b)
		ident := -1
		for _, cand := range buckets[h] {
			if bytes.Equal(d.Unique[cand], b) {
				ident = cand
				break
			}
		}
		if ident >= 0 {
			d.Positions = append(d.Positions, ident)
			if ev != nil {
				ev(Event{Kind: EventDictDup, Pos: pos, Ident: ident, Size: len(b)})
			}
			continue
		}
		ident = len(d.Unique)
		buckets[h] = append(buckets[h], ident)
		d.Unique = append(d.Unique, b)
		d.Positions = append(d.Positions, ident)
		if ev != nil {
			ev(Event{Kind: EventDictNew, Pos: pos, Ident: ident, Size: len(b)})
		}
	}
	return d
}

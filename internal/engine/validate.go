package engine

// ValidateFunc reports whether b is well-formed text and, when it is not, the
// byte offset of the first invalid sequence (-1 when unknown).
type ValidateFunc func(b []byte) (ok bool, offset int64)

// InvalidEntry identifies a dictionary entry that failed validation.
type InvalidEntry struct {
	Ident  int
	Offset int64
}

// ValidateDictionary checks each unique content exactly once, in ident order.
// On success it returns one text per ident; the conversion relabels the bytes
// already scanned by valid, it never rescans them. On failure it returns nil
// texts so no partially validated result can leak to the assembler: with
// collect=false the first invalid entry aborts, with collect=true every
// invalid entry is reported but the call still fails as a whole.
func ValidateDictionary(d Dictionary, valid ValidateFunc, collect bool, ev EventSink) ([]string, []InvalidEntry) {
	texts := make([]string, len(d.Unique))
	var bad []InvalidEntry
	for ident, b := range d.Unique {
		ok, off := valid(b)
		if !ok {
			if ev != nil {
				ev(Event{Kind: EventValidateErr, Ident: ident, Size: len(b), Offset: off})
			}
			bad = append(bad, InvalidEntry{Ident: ident, Offset: off})
			if !collect {
				return nil, bad
			}
			continue
		}
		if ev != nil {
			ev(Event{Kind: EventValidateOK, Ident: ident, Size: len(b)})
		}
		texts[ident] = string(b)
	}
	if len(bad) > 0 {
		return nil, bad
	}
	return texts, nil
}

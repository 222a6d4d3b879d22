package engine

// Assemble reconstructs the output sequence in original input order by ident
// lookup: out[i] = texts[positions[i]]. Duplicated positions share the backing
// bytes of one validated text (string assignment copies a header, not data).
// Only reachable after ValidateDictionary succeeded for every entry; cannot
// fail.
func Assemble(texts []string, positions []int, ev EventSink) []string {
	out := make([]string, len(positions))
	for i, ident := range positions {
		out[i] = texts[ident]
		if ev != nil {
			ev(Event{Kind: EventAssemble, Pos: i, Ident: ident, Size: len(out[i])})
		}
	}
	return out
}

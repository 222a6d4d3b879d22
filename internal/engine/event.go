package engine

// EventKind enumerates the step events the pipeline can emit.
type EventKind int

const (
	EventDictNew     EventKind = iota // A buffer introduced a new dictionary entry.
	EventDictDup                      // A buffer matched an existing entry.
	EventValidateOK                   // A unique entry passed validation.
	EventValidateErr                  // A unique entry failed validation.
	EventAssemble                     // An output position was filled.
)

// Event describes one pipeline step. Pos is the input/output position for
// dictionary and assembly events; Ident is the dictionary identifier; Size is
// the entry length in bytes; Offset is only meaningful for EventValidateErr.
type Event struct {
	Kind   EventKind
	Pos    int
	Ident  int
	Size   int
	Offset int64
}

// EventSink receives step events. A nil sink costs nothing: emitting callers
// check before constructing the Event.
type EventSink func(Event)

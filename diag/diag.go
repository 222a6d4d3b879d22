// Package diag is the optional observability overlay for the processing
// pipeline: an append-only log of step records consumed by a caller-supplied
// sink. It never alters pipeline semantics, and a nil sink costs nothing on
// the happy path.
package diag

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Stage identifies the pipeline step that produced a record.
type Stage string

const (
	StageDict     Stage = "dict"
	StageValidate Stage = "validate"
	StageAssemble Stage = "assemble"
)

// Action qualifies what happened within a stage.
type Action string

const (
	ActionNew     Action = "new"     // New dictionary entry.
	ActionDup     Action = "dup"     // Duplicate of an earlier entry.
	ActionOK      Action = "ok"      // Entry passed validation.
	ActionInvalid Action = "invalid" // Entry failed validation.
	ActionEmit    Action = "emit"    // Output position filled.
)

// StepRecord is one observation emitted by the pipeline. Pos is the
// input/output position (dict and assemble stages), Ident the dictionary
// identifier, Size the entry length in bytes. Offset is only meaningful for
// ActionInvalid records.
type StepRecord struct {
	Run    string // Correlation id shared by all records of one process call.
	Stage  Stage
	Action Action
	Pos    int
	Ident  int
	Size   int
	Offset int64
}

// Sink consumes step records. Record is called inline from the pipeline, so
// implementations must be cheap and must not block.
type Sink interface {
	Record(StepRecord)
}

// NewRunID returns a correlation id for one processing call.
func NewRunID() string { return uuid.NewString() }

// Multi fans records out to every given sink in order.
func Multi(sinks ...Sink) Sink { return multiSink(sinks) }

type multiSink []Sink

func (m multiSink) Record(s StepRecord) {
	for _, snk := range m {
		snk.Record(s)
	}
}

// Records is an append-only in-memory sink.
type Records struct {
	steps []StepRecord
}

func (r *Records) Record(s StepRecord) { r.steps = append(r.steps, s) }

// Steps returns the recorded steps in emission order.
func (r *Records) Steps() []StepRecord { return r.steps }

// Stats derives work counters from the recorded steps.
func (r *Records) Stats() Stats {
	var st Stats
	for _, s := range r.steps {
		switch s.Stage {
		case StageDict:
			st.Inputs++
			if s.Action == ActionNew {
				st.Unique++
			}
		case StageValidate:
			st.Validated++
			st.BytesScanned += int64(s.Size)
		}
	}
	return st
}

// Stats reports the work one processing call performed.
type Stats struct {
	Inputs       int   // Buffers seen.
	Unique       int   // Distinct byte contents.
	Validated    int   // Validation invocations (== Unique on success).
	BytesScanned int64 // Bytes submitted to the validity check.
}

// DedupRatio reports the fraction of inputs that duplicated an earlier buffer.
func (s Stats) DedupRatio() float64 {
	if s.Inputs == 0 {
		return 0
	}
	return float64(s.Inputs-s.Unique) / float64(s.Inputs)
}

// NewZapSink logs each record at debug level on the given logger.
func NewZapSink(l *zap.Logger) Sink { return zapSink{l: l} }

type zapSink struct {
	l *zap.Logger
}

func (z zapSink) Record(s StepRecord) {
	z.l.Debug("step",
		zap.String("run", s.Run),
		zap.String("stage", string(s.Stage)),
		zap.String("action", string(s.Action)),
		zap.Int("pos", s.Pos),
		zap.Int("ident", s.Ident),
		zap.Int("size", s.Size),
		zap.Int64("offset", s.Offset),
	)
}

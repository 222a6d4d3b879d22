package stringproc

import (
	"context"

	"github.com/daviddahl/string-proc/diag"
	eng "github.com/daviddahl/string-proc/internal/engine"
)

// Process is the primary entry point. It deduplicates the raw buffers into a
// dictionary, validates each unique content exactly once, and reconstructs the
// output in the original input order.
//
// On failure no output is produced: the returned Issues identify the offending
// dictionary entries (fail-fast by default, every invalid entry with Collect).
// The ctx parameter follows the entry-point convention; every step is a bounded
// in-memory computation, so nothing blocks or suspends mid-call.
func Process(ctx context.Context, raw [][]byte, opts ...ProcessOpt) ([]string, error) {
	return run(ctx, raw, nil, normalizeOpt(opts))
}

// ProcessWithDiagnostics behaves exactly like Process and additionally emits
// one step record per pipeline event into sink. A nil sink degrades to the
// plain path with no overhead. The overlay never changes the functional result.
func ProcessWithDiagnostics(ctx context.Context, raw [][]byte, sink diag.Sink, opts ...ProcessOpt) ([]string, error) {
	return run(ctx, raw, sink, normalizeOpt(opts))
}

// ProcessFrom drains src and processes the collected buffers. The source is
// materialized before dictionary construction; inputs larger than memory are
// out of scope for this pipeline.
func ProcessFrom(ctx context.Context, src Source, opts ...ProcessOpt) ([]string, error) {
	raw, err := drainSource(src)
	if err != nil {
		return nil, Issues{Issue{Ident: -1, Code: CodeParseError, Message: "source: " + err.Error(), Cause: err, Offset: -1}}
	}
	return run(ctx, raw, nil, normalizeOpt(opts))
}

// ProcessFromWithDiagnostics is ProcessFrom with the step-record overlay.
func ProcessFromWithDiagnostics(ctx context.Context, src Source, sink diag.Sink, opts ...ProcessOpt) ([]string, error) {
	raw, err := drainSource(src)
	if err != nil {
		return nil, Issues{Issue{Ident: -1, Code: CodeParseError, Message: "source: " + err.Error(), Cause: err, Offset: -1}}
	}
	return run(ctx, raw, sink, normalizeOpt(opts))
}

// ---- helpers (opt normalization, pipeline run, event mapping) ----

func normalizeOpt(opts []ProcessOpt) ProcessOpt {
	var opt ProcessOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return opt
}

func run(_ context.Context, raw [][]byte, sink diag.Sink, opt ProcessOpt) ([]string, error) {
	if opt.MaxBytes > 0 {
		var total int64
		for _, b := range raw {
			total += int64(len(b))
		}
		if total > opt.MaxBytes {
			return nil, singleIssue(CodeTruncated, "max bytes exceeded")
		}
	}

	var ev eng.EventSink
	if sink != nil {
		runID := diag.NewRunID()
		ev = func(e eng.Event) { sink.Record(stepRecord(runID, e)) }
	}

	d := eng.BuildDictionary(raw, ev)
	texts, bad := eng.ValidateDictionary(d, getUTF8Driver().Validate, opt.OnInvalid == Collect, ev)
	if len(bad) > 0 {
		iss := make(Issues, 0, len(bad))
		for _, e := range bad {
			iss = append(iss, Issue{
				Ident:   e.Ident,
				Code:    CodeInvalidUTF8,
				Message: "invalid UTF-8 encoding",
				Offset:  e.Offset,
			})
		}
		return nil, iss
	}
	return eng.Assemble(texts, d.Positions, ev), nil
}

func stepRecord(runID string, e eng.Event) diag.StepRecord {
	r := diag.StepRecord{Run: runID, Pos: e.Pos, Ident: e.Ident, Size: e.Size, Offset: e.Offset}
	switch e.Kind {
	case eng.EventDictNew:
		r.Stage, r.Action = diag.StageDict, diag.ActionNew
	case eng.EventDictDup:
		r.Stage, r.Action = diag.StageDict, diag.ActionDup
	case eng.EventValidateOK:
		r.Stage, r.Action = diag.StageValidate, diag.ActionOK
	case eng.EventValidateErr:
		r.Stage, r.Action = diag.StageValidate, diag.ActionInvalid
	case eng.EventAssemble:
		r.Stage, r.Action = diag.StageAssemble, diag.ActionEmit
	}
	return r
}

package stringproc

// Package stringproc provides:
//
// - Deduplicating UTF-8 validation for ordered batches of candidate string bytes
//   (dictionary build -> bulk validate -> reassemble in input order)
// - A stable error model via Issues (dictionary ident, code, byte offset)
// - A pluggable UTF-8 validity driver (SetUTF8Driver) so an accelerated checker
//   can replace the portable default without touching pipeline semantics
// - An optional step-record overlay via diag.Sink that never changes results
//
// Design policy:
// - Keep only public APIs in the root package; put the dictionary/validation
//   mechanics under internal/.
// - Place input-envelope drivers under source/, diagnostics under diag/, and the
//   CLI under cmd/stringproc.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  out, err := stringproc.Process(ctx, raw)
//  out, err := stringproc.ProcessWithDiagnostics(ctx, raw, sink)
//  out, err := stringproc.ProcessFrom(ctx, jsonsrc.NewBytes(envelope))
//
// Validation work is bounded by the total size of the unique contents, not the
// total input size: each distinct byte content is scanned exactly once however
// often it repeats.

package stringproc

// FailureMode controls how invalid dictionary entries are reported.
type FailureMode int

const (
	FailFast FailureMode = iota // Stop at the first invalid unique entry.
	Collect                     // Report every invalid unique entry; still no partial output.
)

// ProcessOpt bundles processing options.
type ProcessOpt struct {
	// OnInvalid selects the failure mode. FailFast is the default; with Collect
	// the call still fails as a whole, it only reports more than one entry.
	OnInvalid FailureMode
	// MaxBytes caps the total input size across all buffers. Zero means no cap.
	MaxBytes int64
}

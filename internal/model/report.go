package model

// FileStatus describes what happened to a single file during a run.
type FileStatus string

const (
	// StatusUnchanged means every line of the file was emitted.
	StatusUnchanged FileStatus = "unchanged"
	// StatusFiltered means at least one line was removed.
	StatusFiltered FileStatus = "filtered"
	// StatusMalformed means the conditional structure was unbalanced.
	StatusMalformed FileStatus = "malformed"
	// StatusIOError means the file could not be read or written.
	StatusIOError FileStatus = "io-error"
)

// FileResult holds the filtering outcome for a single source file.
type FileResult struct {
	Source    Source
	Status    FileStatus
	LinesIn   int
	LinesKept int
	BytesIn   int
	BytesOut  int
	// Output is the filtered content. It is nil when Err is set.
	Output []byte
	Err    error
}

// Failed reports whether the file could not be processed.
func (r FileResult) Failed() bool {
	return r.Err != nil
}

// Removed returns how many lines were dropped.
func (r FileResult) Removed() int {
	return r.LinesIn - r.LinesKept
}

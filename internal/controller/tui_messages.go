package controller

import (
	m "github.com/mouse-blink/cpre/internal/model"
)

// resultsMsg delivers the finished run to the results model.
type resultsMsg struct {
	results []m.FileResult
	err     error
}

// List item types.
type fileItem struct {
	path   string
	in     int
	kept   int
	status m.FileStatus
	err    error
}

func (f fileItem) FilterValue() string {
	return f.path
}

func newFileItem(r m.FileResult) fileItem {
	return fileItem{
		path:   string(r.Source.Origin),
		in:     r.LinesIn,
		kept:   r.LinesKept,
		status: r.Status,
		err:    r.Err,
	}
}

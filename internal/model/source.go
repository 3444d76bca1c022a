// Package model holds the plain data types shared by the cpre layers.
package model

// Path represents a file system path.
type Path string

// Source represents a text file discovered under one of the input roots.
type Source struct {
	Origin Path
	// Root is the input argument the file was found under.
	Root Path
	Size int64
	// Err is set when the path could not be listed or stat'ed. The source is
	// reported as failed without being read.
	Err error
}

// SourceFilter narrows which files Get returns.
type SourceFilter struct {
	// Extensions limits discovery to files with one of these suffixes.
	// An empty list accepts every file.
	Extensions []string
	// Exclude holds regular expressions matched against the file path.
	Exclude []string
}

// Package model defines the data structures shared by the anonymization layers.
package model

// Path represents a file system path.
type Path string

// File represents a source code file.
type File struct {
	FullPath  Path
	ShortPath Path
}

// Source is a single unit of work for the anonymizer.
type Source struct {
	Origin *File
	// Explicit is set when the file was named directly rather than found by a walk.
	Explicit bool
}

// Name returns the path used for language detection and display.
func (s Source) Name() string {
	if s.Origin == nil {
		return ""
	}

	if s.Origin.ShortPath != "" {
		return string(s.Origin.ShortPath)
	}

	return string(s.Origin.FullPath)
}

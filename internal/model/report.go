package model

// Options selects what the anonymizer keeps verbatim.
type Options struct {
	PreserveStrings  bool
	PreserveComments bool
}

// DefaultOptions keeps literals and comments, matching the CLI defaults.
func DefaultOptions() Options {
	return Options{PreserveStrings: true, PreserveComments: true}
}

// Stats counts what a single anonymization pass touched.
type Stats struct {
	Identifiers   int // distinct identifiers renamed
	Occurrences   int // identifier tokens rewritten
	Literals      int // string literals masked
	Comments      int // comments extracted or stripped
	StrippedLines int // lines dropped because only comment text remained
}

// Result is the outcome of anonymizing one text.
type Result struct {
	Text    string
	Profile string
	Stats   Stats
}

// Output pairs a source with its anonymized result.
type Output struct {
	Source Source
	Result Result
	Err    error
}

// View is an anonymized file prepared for display next to its original text.
type View struct {
	Output
	Original string
	// Diff selects a unified diff instead of the anonymized text.
	Diff bool
}

package domain

// Document represents one corpus file held in the process-wide cache.
// Documents are immutable after loading; downstream components hold
// read-only references and never mutate them.
type Document struct {
	// ID is the unique identifier assigned at load time.
	ID string

	// Path is the resolved filesystem location.
	Path string

	// Name is the display name (base filename).
	Name string

	// Content is the full raw text of the file.
	Content string

	// Lines is Content split on line breaks. Both \n and \r\n
	// terminators are supported; Lines never contain a trailing \r.
	Lines []string
}

// Paragraph is a maximal run of non-blank lines within one document.
// Paragraphs never span a blank line. A document with no blank lines
// yields exactly one paragraph; an all-blank document yields none.
type Paragraph struct {
	// StartLine is the 1-based first line of the paragraph.
	StartLine int

	// EndLine is the 1-based last line, inclusive.
	EndLine int

	// Text is the joined lines with blank separators excluded.
	Text string
}

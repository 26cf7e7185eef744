package render

import "strings"

const (
	StartMarker = "<!-- HARGA_KRIPTO -->"
	EndMarker   = "<!-- /HARGA_KRIPTO -->"
)

// Section splits a document around the marker pair. Region is the text
// strictly between the markers.
type Section struct {
	Before string
	Region string
	After  string
	Found  bool
}

// ParseSection locates the first start marker and the nearest end marker
// after it. Without a complete pair the whole document ends up in Before.
func ParseSection(doc string) Section {
	start := strings.Index(doc, StartMarker)
	if start < 0 {
		return Section{Before: doc}
	}
	regionStart := start + len(StartMarker)
	end := strings.Index(doc[regionStart:], EndMarker)
	if end < 0 {
		return Section{Before: doc}
	}
	regionEnd := regionStart + end
	return Section{
		Before: doc[:start],
		Region: doc[regionStart:regionEnd],
		After:  doc[regionEnd+len(EndMarker):],
		Found:  true,
	}
}

// Splice replaces the region of doc with inner. A document without the
// markers gets the section appended after a blank line; an empty document
// becomes the section alone.
func Splice(doc, inner string) string {
	block := StartMarker + inner + EndMarker
	s := ParseSection(doc)
	switch {
	case s.Found:
		return s.Before + block + s.After
	case doc == "":
		return block
	default:
		return doc + "\n\n" + block
	}
}
